package eval

import (
	"github.com/cottand/stlc/frontend/ast"
	"github.com/hashicorp/go-set/v3"
	"slices"
)

// Substitute replaces the free occurrences of name in term with value.
//
// Substitution stops at an abstraction that rebinds name, but it does not
// rename other binders: a free variable of value that shares its name with a
// binder inside term is captured by that binder. CaptureRisk reports when
// that happens.
func Substitute(name string, value, term ast.Term) ast.Term {
	switch term := term.(type) {
	case *ast.Var:
		if term.Name == name {
			return value
		}
		return term

	case *ast.Abs:
		if term.Param == name {
			return term
		}
		return &ast.Abs{
			Param:     term.Param,
			ParamType: term.ParamType,
			Body:      Substitute(name, value, term.Body),
		}

	case *ast.App:
		return &ast.App{
			Func: Substitute(name, value, term.Func),
			Arg:  Substitute(name, value, term.Arg),
		}

	default:
		return term
	}
}

// CaptureRisk returns, sorted, the free variables of value that Substitute(name, value, term)
// would place under a binder of the same name inside term
func CaptureRisk(name string, value, term ast.Term) []string {
	free := ast.FreeVars(value)
	if free.Empty() {
		return nil
	}
	captured := set.New[string](0)
	captureWalker(name, free, term, set.New[string](0), captured)
	if captured.Empty() {
		return nil
	}
	names := captured.Slice()
	slices.Sort(names)
	return names
}

// captureWalker walks term as Substitute would, with binders holding the parameters passed on the way
func captureWalker(name string, free *set.Set[string], term ast.Term, binders, captured *set.Set[string]) {
	switch term := term.(type) {
	case *ast.Var:
		if term.Name != name {
			return
		}
		for binder := range binders.Items() {
			if free.Contains(binder) {
				captured.Insert(binder)
			}
		}
	case *ast.Abs:
		if term.Param == name {
			return
		}
		inserted := binders.Insert(term.Param)
		captureWalker(name, free, term.Body, binders, captured)
		if inserted {
			binders.Remove(term.Param)
		}
	case *ast.App:
		captureWalker(name, free, term.Func, binders, captured)
		captureWalker(name, free, term.Arg, binders, captured)
	}
}
