package ast

// Type is the interface for all type nodes.
//
// Types form a tree: an Arrow exclusively owns its two operands.
type Type interface {
	String() string
	typeNode()
}

// Named is any capitalised type name other than Bool and Nat.
type Named struct {
	Name string
}

func (*Named) typeNode()        {}
func (t *Named) String() string { return t.Name }

// Base is one of the type names the lexer special-cases.
// There are no terms of these types, they are only usable in annotations.
type Base int

const (
	Bool Base = iota + 1
	Nat
)

func (Base) typeNode() {}
func (t Base) String() string {
	switch t {
	case Bool:
		return "Bool"
	case Nat:
		return "Nat"
	default:
		return "Base(?)"
	}
}

// Arrow is the function type From -> To
type Arrow struct {
	From Type
	To   Type
}

func (*Arrow) typeNode() {}
func (t *Arrow) String() string {
	return "(" + t.From.String() + " -> " + t.To.String() + ")"
}

// NamedType returns the Type spelled by name, as produced by a Type token
func NamedType(name string) Type {
	switch name {
	case "Bool":
		return Bool
	case "Nat":
		return Nat
	default:
		return &Named{Name: name}
	}
}

// Fn builds the right-associative arrow chain params[0] -> params[1] -> ... -> result
func Fn(result Type, params ...Type) Type {
	for i := len(params) - 1; i >= 0; i-- {
		result = &Arrow{From: params[i], To: result}
	}
	return result
}

// TypesEqual reports whether a and b are structurally the same type.
// Two nil types are equal; nil is never equal to a non-nil type.
func TypesEqual(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch a := a.(type) {
	case *Named:
		b, ok := b.(*Named)
		return ok && a.Name == b.Name
	case Base:
		b, ok := b.(Base)
		return ok && a == b
	case *Arrow:
		b, ok := b.(*Arrow)
		return ok && TypesEqual(a.From, b.From) && TypesEqual(a.To, b.To)
	default:
		return false
	}
}
