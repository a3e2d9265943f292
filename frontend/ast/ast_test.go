package ast

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestTermString(t *testing.T) {
	y := &Named{Name: "Y"}
	cases := map[string]Term{
		"x":                 &Var{Name: "x"},
		"x:Y":               &Var{Name: "x", Annotation: y},
		"λx.(x)":            &Abs{Param: "x", Body: &Var{Name: "x"}},
		"λx:Y.(x)":          &Abs{Param: "x", ParamType: y, Body: &Var{Name: "x"}},
		"λx:(Y -> Y).(x)":   &Abs{Param: "x", ParamType: &Arrow{From: y, To: y}, Body: &Var{Name: "x"}},
		"(f) (a)":           &App{Func: &Var{Name: "f"}, Arg: &Var{Name: "a"}},
		"((f) (a)) (b)":     Apply(&Var{Name: "f"}, &Var{Name: "a"}, &Var{Name: "b"}),
		"λx:Bool.((x) (x))": &Abs{Param: "x", ParamType: Bool, Body: &App{Func: &Var{Name: "x"}, Arg: &Var{Name: "x"}}},
	}
	for expected, term := range cases {
		t.Run(expected, func(t *testing.T) {
			assert.Equal(t, expected, term.String())
		})
	}
}

func TestTypeString(t *testing.T) {
	a := &Named{Name: "A"}
	assert.Equal(t, "Nat", Nat.String())
	assert.Equal(t, "Bool", Bool.String())
	assert.Equal(t, "(A -> (A -> Nat))", Fn(Nat, a, a).String())
	assert.Equal(t, "((A -> A) -> A)", Fn(a, Fn(a, a)).String())
}

func TestNamedType(t *testing.T) {
	assert.Equal(t, Bool, NamedType("Bool"))
	assert.Equal(t, Nat, NamedType("Nat"))
	assert.Equal(t, &Named{Name: "Nats"}, NamedType("Nats"))
}

func TestTypesEqual(t *testing.T) {
	a := &Named{Name: "A"}
	b := &Named{Name: "B"}

	assert.True(t, TypesEqual(Fn(a, b), &Arrow{From: &Named{Name: "B"}, To: &Named{Name: "A"}}))
	assert.True(t, TypesEqual(nil, nil))
	assert.False(t, TypesEqual(a, nil))
	assert.False(t, TypesEqual(a, b))
	assert.False(t, TypesEqual(Bool, Nat))
	assert.False(t, TypesEqual(&Named{Name: "Bool"}, Bool))
	// arrows are not associative
	assert.False(t, TypesEqual(Fn(a, a, a), Fn(a, Fn(a, a))))
}

func TestTermsEqual(t *testing.T) {
	id := func(param string, ty Type) Term { return &Abs{Param: param, ParamType: ty, Body: &Var{Name: param}} }

	assert.True(t, TermsEqual(id("x", Nat), id("x", Nat)))
	assert.False(t, TermsEqual(id("x", Nat), id("x", Bool)))
	assert.False(t, TermsEqual(id("x", nil), id("y", nil)), "equality is not up to alpha-renaming")
	assert.False(t, TermsEqual(&Var{Name: "x"}, &Var{Name: "x", Annotation: Nat}))
}

func TestFreeVars(t *testing.T) {
	// λx. x y (λy. y z)
	term := &Abs{Param: "x", Body: Apply(
		&Var{Name: "x"},
		&Var{Name: "y"},
		&Abs{Param: "y", Body: Apply(&Var{Name: "y"}, &Var{Name: "z"})},
	)}

	free := FreeVars(term)
	assert.ElementsMatch(t, []string{"y", "z"}, free.Slice())

	assert.ElementsMatch(t, []string{"x", "y"}, Binders(term).Slice())
}

func TestFreeVarsNestedShadowing(t *testing.T) {
	// λx. λx. x stays closed after the inner binder goes out of scope
	term := &Abs{Param: "x", Body: Apply(&Abs{Param: "x", Body: &Var{Name: "x"}}, &Var{Name: "x"})}
	assert.Equal(t, 0, FreeVars(term).Size())
}

func TestHasAnnotation(t *testing.T) {
	assert.False(t, HasAnnotation(&Abs{Param: "x", Body: &Var{Name: "x"}}))
	assert.True(t, HasAnnotation(&App{Func: &Var{Name: "f"}, Arg: &Var{Name: "a", Annotation: Nat}}))
	assert.True(t, HasAnnotation(&Abs{Param: "x", ParamType: Nat, Body: &Var{Name: "x"}}))
}
