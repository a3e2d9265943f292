package ast

// Term is the interface for all lambda terms.
//
// Terms are never mutated once built: evaluation and substitution
// return new trees, so sub-terms may be shared between trees.
type Term interface {
	String() string
	termNode()
}

// Var is a variable occurrence.
// Annotation is nil unless the source spelled x:T, and is only
// consulted by the type checker when the variable is not bound in the context.
type Var struct {
	Name       string
	Annotation Type
}

// Abs is the abstraction λParam:ParamType.Body.
// A nil ParamType makes the abstraction untyped: it evaluates normally but never type-checks.
type Abs struct {
	Param     string
	ParamType Type
	Body      Term
}

// App is the application of Func to Arg.
type App struct {
	Func Term
	Arg  Term
}

func (*Var) termNode() {}
func (*Abs) termNode() {}
func (*App) termNode() {}

func (t *Var) String() string { return TermString(t) }
func (t *Abs) String() string { return TermString(t) }
func (t *App) String() string { return TermString(t) }

// Apply left-folds args onto f: Apply(f, a, b) is App(App(f, a), b)
func Apply(f Term, args ...Term) Term {
	for _, arg := range args {
		f = &App{Func: f, Arg: arg}
	}
	return f
}

// TermsEqual reports whether a and b are structurally identical,
// including binder names and annotations (no alpha-equivalence).
func TermsEqual(a, b Term) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch a := a.(type) {
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Name == b.Name && TypesEqual(a.Annotation, b.Annotation)
	case *Abs:
		b, ok := b.(*Abs)
		return ok && a.Param == b.Param && TypesEqual(a.ParamType, b.ParamType) && TermsEqual(a.Body, b.Body)
	case *App:
		b, ok := b.(*App)
		return ok && TermsEqual(a.Func, b.Func) && TermsEqual(a.Arg, b.Arg)
	default:
		return false
	}
}

// HasAnnotation reports whether any node of t carries a type
func HasAnnotation(t Term) bool {
	switch t := t.(type) {
	case *Var:
		return t.Annotation != nil
	case *Abs:
		return t.ParamType != nil || HasAnnotation(t.Body)
	case *App:
		return HasAnnotation(t.Func) || HasAnnotation(t.Arg)
	default:
		return false
	}
}
