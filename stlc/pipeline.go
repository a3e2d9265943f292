// Package stlc runs source text through the whole interpreter:
// lexing, parsing, optional type checking and evaluation.
package stlc

import (
	"fmt"
	"github.com/cottand/stlc/eval"
	"github.com/cottand/stlc/frontend/ast"
	"github.com/cottand/stlc/frontend/lexer"
	"github.com/cottand/stlc/frontend/parser"
	"github.com/cottand/stlc/frontend/types"
	"github.com/cottand/stlc/internal/log"
	"github.com/pkg/errors"
	"strings"
)

var pipelineLogger = ast.TermLogger(log.DefaultLogger.With("section", "pipeline"))

// CheckMode decides whether Run type-checks a term before evaluating it
type CheckMode int

const (
	// CheckAuto type-checks when the source text contains ":" or "->".
	// This looks at the raw text rather than the parsed term.
	CheckAuto CheckMode = iota
	// CheckAnnotated type-checks when some node of the parsed term carries a type
	CheckAnnotated
	CheckAlways
	CheckNever
)

var checkModeNames = map[CheckMode]string{
	CheckAuto:      "auto",
	CheckAnnotated: "annotated",
	CheckAlways:    "always",
	CheckNever:     "never",
}

func (m CheckMode) String() string {
	if name, ok := checkModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("CheckMode(%d)", int(m))
}

// ParseCheckMode is the inverse of CheckMode.String
func ParseCheckMode(s string) (CheckMode, error) {
	for mode, name := range checkModeNames {
		if name == s {
			return mode, nil
		}
	}
	return CheckAuto, fmt.Errorf("unknown check mode '%s', expected one of auto, annotated, always, never", s)
}

type Settings struct {
	Check CheckMode
	// Context holds the types assumed for free variables. The zero value is the empty context.
	Context types.Context
}

type Result struct {
	// Term is the parsed term, before evaluation
	Term ast.Term
	// Evaluated is Term in normal form
	Evaluated ast.Term
	// Type is the type of Term, or nil when it was not type-checked
	Type ast.Type
	// Steps is the number of beta reductions evaluation took
	Steps int
}

func (r *Result) String() string {
	if r.Type == nil {
		return r.Evaluated.String()
	}
	return r.Evaluated.String() + " : " + r.Type.String()
}

// ShouldCheck reports whether a term parsed from source is type-checked under mode
func ShouldCheck(mode CheckMode, source string, term ast.Term) bool {
	switch mode {
	case CheckAnnotated:
		return ast.HasAnnotation(term)
	case CheckAlways:
		return true
	case CheckNever:
		return false
	default:
		return strings.Contains(source, ":") || strings.Contains(source, "->")
	}
}

// Parse lexes and parses source into a single term
func Parse(source string) (ast.Term, error) {
	tokens, err := lexer.Lex(source)
	if err != nil {
		return nil, errors.Wrap(err, "invalid source")
	}
	term, err := parser.Parse(tokens)
	if err != nil {
		return nil, errors.Wrap(err, "invalid source")
	}
	return term, nil
}

// Run parses source, type-checks it if settings say so, and evaluates it.
// A term that fails to type-check is not evaluated.
func Run(source string, settings Settings) (*Result, error) {
	term, err := Parse(source)
	if err != nil {
		return nil, err
	}
	result := &Result{Term: term}

	if ShouldCheck(settings.Check, source, term) {
		result.Type, err = types.Check(term, settings.Context)
		if err != nil {
			return nil, errors.Wrap(err, "ill-typed term")
		}
	}

	evaluator := eval.NewEvaluator()
	result.Evaluated = evaluator.Eval(term)
	result.Steps = evaluator.Steps()

	pipelineLogger.Debug("ran term", "source", source, "check", settings.Check, "result", result.Evaluated, "steps", result.Steps)
	return result, nil
}
