package eval

import (
	"github.com/cottand/stlc/frontend/ast"
	"github.com/cottand/stlc/internal/log"
	"log/slog"
)

// Evaluator reduces terms to normal form, reducing under binders as well.
//
// There is no step limit: a term with no normal form makes Eval recurse forever.
type Evaluator struct {
	steps int

	*slog.Logger
}

func NewEvaluator() *Evaluator {
	return &Evaluator{
		Logger: ast.TermLogger(log.DefaultLogger.With("section", "eval")),
	}
}

// Eval reduces term to normal form with a fresh Evaluator
func Eval(term ast.Term) ast.Term {
	return NewEvaluator().Eval(term)
}

// Steps returns the number of beta reductions performed so far
func (e *Evaluator) Steps() int {
	return e.steps
}

// Eval reduces term to normal form.
//
// For an application both sides are reduced first. If the function side is then an
// abstraction, the argument is substituted into its body and the result is reduced
// again; otherwise the application is stuck and is rebuilt from the reduced sides.
func (e *Evaluator) Eval(term ast.Term) ast.Term {
	switch term := term.(type) {
	case *ast.App:
		fn := e.Eval(term.Func)
		arg := e.Eval(term.Arg)

		abs, ok := fn.(*ast.Abs)
		if !ok {
			return &ast.App{Func: fn, Arg: arg}
		}
		e.steps++
		if captured := CaptureRisk(abs.Param, arg, abs.Body); len(captured) > 0 {
			e.Warn("substitution captures free variables", "param", abs.Param, "argument", arg, "body", abs.Body, "captured", captured)
		}
		reduced := Substitute(abs.Param, arg, abs.Body)
		e.Debug("beta reduction", "step", e.steps, "redex", term, "reduct", reduced)
		return e.Eval(reduced)

	case *ast.Abs:
		return &ast.Abs{Param: term.Param, ParamType: term.ParamType, Body: e.Eval(term.Body)}

	default:
		return term
	}
}
