package ast

import (
	"github.com/hashicorp/go-set/v3"
)

// FreeVars returns the names occurring free in t
func FreeVars(t Term) *set.Set[string] {
	free := set.New[string](0)
	freeVarsWalker(t, set.New[string](0), free)
	return free
}

func freeVarsWalker(t Term, bound, free *set.Set[string]) {
	switch t := t.(type) {
	case *Var:
		if !bound.Contains(t.Name) {
			free.Insert(t.Name)
		}
	case *Abs:
		if bound.Contains(t.Param) {
			freeVarsWalker(t.Body, bound, free)
			return
		}
		bound.Insert(t.Param)
		freeVarsWalker(t.Body, bound, free)
		bound.Remove(t.Param)
	case *App:
		freeVarsWalker(t.Func, bound, free)
		freeVarsWalker(t.Arg, bound, free)
	}
}

// Binders returns the parameter names of every abstraction in t
func Binders(t Term) *set.Set[string] {
	binders := set.New[string](0)
	var walk func(Term)
	walk = func(t Term) {
		switch t := t.(type) {
		case *Abs:
			binders.Insert(t.Param)
			walk(t.Body)
		case *App:
			walk(t.Func)
			walk(t.Arg)
		}
	}
	walk(t)
	return binders
}
