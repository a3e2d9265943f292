package types

import (
	"github.com/cottand/stlc/frontend/ast"
	"github.com/cottand/stlc/frontend/stlcerr"
	"github.com/cottand/stlc/internal/log"
)

var checkLogger = ast.TermLogger(log.DefaultLogger.With("section", "frontend.types"))

// Check computes the type of term under ctx, following the syntax-directed rules
//
//	x:σ ∈ Γ                   Γ, x:σ ⊢ e : τ              Γ ⊢ e₁ : σ → τ   Γ ⊢ e₂ : σ
//	─────────  (Var)     ─────────────────────  (Abs)     ───────────────────────────  (App)
//	Γ ⊢ x : σ            Γ ⊢ λx:σ. e : σ → τ                    Γ ⊢ e₁ e₂ : τ
//
// A variable that is not bound in ctx is typed by its own annotation, if it has one.
// Types are compared structurally, with no subtyping.
func Check(term ast.Term, ctx Context) (ast.Type, error) {
	ty, err := check(term, ctx)
	if err != nil {
		checkLogger.Debug("type check failed", "term", term, "context", ctx.String(), "error", err)
		return nil, err
	}
	checkLogger.Debug("type checked", "term", term, "type", ty.String())
	return ty, nil
}

func check(term ast.Term, ctx Context) (ast.Type, error) {
	switch term := term.(type) {
	case *ast.Var:
		if ty, ok := ctx.Lookup(term.Name); ok {
			return ty, nil
		}
		if term.Annotation != nil {
			return term.Annotation, nil
		}
		return nil, stlcerr.New(stlcerr.NewUnboundVariable{Name: term.Name})

	case *ast.Abs:
		if term.ParamType == nil {
			return nil, stlcerr.New(stlcerr.NewMissingAnnotation{Param: term.Param})
		}
		bodyType, err := check(term.Body, ctx.Extend(term.Param, term.ParamType))
		if err != nil {
			return nil, err
		}
		return &ast.Arrow{From: term.ParamType, To: bodyType}, nil

	case *ast.App:
		funcType, err := check(term.Func, ctx)
		if err != nil {
			return nil, err
		}
		argType, err := check(term.Arg, ctx)
		if err != nil {
			return nil, err
		}
		arrow, ok := funcType.(*ast.Arrow)
		if !ok {
			return nil, stlcerr.New(stlcerr.NewNotAFunction{Type: funcType})
		}
		if !ast.TypesEqual(arrow.From, argType) {
			return nil, stlcerr.New(stlcerr.NewArgumentMismatch{Expected: arrow.From, Found: argType})
		}
		return arrow.To, nil

	default:
		panic("unexpected term type")
	}
}
