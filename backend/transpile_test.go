package backend

import (
	"github.com/cottand/stlc/frontend/ast"
	"github.com/cottand/stlc/frontend/parser"
	"github.com/cottand/stlc/frontend/stlcerr"
	"github.com/cottand/stlc/frontend/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/traefik/yaegi/interp"
	"log/slog"
	"testing"
)

func transpile(t *testing.T, input string, ctx types.Context) string {
	term, err := parser.ParseString(input)
	require.NoError(t, err)

	tp := NewTranspiler(ctx)
	f, err := tp.TranspileTerm("main", term)
	require.NoError(t, err)
	assert.Equal(t, "main", f.Name.Name)

	src, err := Source(f)
	require.NoError(t, err)
	return src
}

func evalSource(t *testing.T, src string) *interp.Interpreter {
	i := interp.New(interp.Options{})
	_, err := i.Eval(src)
	if err != nil {
		slog.Warn("had errors while evaluating", "err", err.Error(), "body", src)
	}
	require.NoError(t, err)
	return i
}

func TestTranspileIdentity(t *testing.T) {
	src := transpile(t, "λx:Nat. x", types.EmptyContext())

	assert.Contains(t, src, "type Nat uint")
	assert.Contains(t, src, "var Term func(Nat) Nat = func(x Nat) Nat")

	i := evalSource(t, src)
	assert.Contains(t, i.Globals(), "Term")

	res, err := i.Eval("uint(Term(3))")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), res.Uint())
}

func TestTranspileConst(t *testing.T) {
	src := transpile(t, "λx:Nat. λy:Bool. x", types.EmptyContext())
	assert.Contains(t, src, "type Bool bool")

	i := evalSource(t, src)
	res, err := i.Eval("uint(Term(7)(true))")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), res.Uint())
}

func TestTranspileApplication(t *testing.T) {
	src := transpile(t, "(λf:Nat -> Nat. λn:Nat. f (f n)) (λm:Nat. m)", types.EmptyContext())

	i := evalSource(t, src)
	res, err := i.Eval("uint(Term(5))")
	require.NoError(t, err)
	assert.Equal(t, uint64(5), res.Uint())
}

func TestTranspileNamedTypes(t *testing.T) {
	src := transpile(t, "λa:A. λf:A -> B. f a", types.EmptyContext())

	assert.Contains(t, src, "type A any")
	assert.Contains(t, src, "type B any")
	evalSource(t, src)
}

func TestTranspileFreeVariables(t *testing.T) {
	ctx := types.NewContext(map[string]ast.Type{"g": ast.Fn(ast.Nat, ast.Nat)})
	term, err := parser.ParseString("λn:Nat. g (f:Nat -> Nat n)")
	require.NoError(t, err)

	tp := NewTranspiler(ctx)
	f, err := tp.TranspileTerm("main", term)
	require.NoError(t, err)
	assert.Equal(t, []string{"f", "g"}, tp.FreeVarNames())

	src, err := Source(f)
	require.NoError(t, err)
	assert.Contains(t, src, "g func(Nat) Nat")
	assert.Contains(t, src, "f func(Nat) Nat")

	// the free functions are nil, so the term is compiled but not called
	i := evalSource(t, src)
	assert.Contains(t, i.Globals(), "Term")
}

func TestTranspileMangledNames(t *testing.T) {
	src := transpile(t, "λfunc:Nat. λlen:Nat. func", types.EmptyContext())

	assert.Contains(t, src, "func_ Nat")
	assert.Contains(t, src, "len_ Nat")
	evalSource(t, src)
}

func TestTranspileRejectsIllTyped(t *testing.T) {
	cases := map[string]any{
		"λx. x":         stlcerr.NewMissingAnnotation{},
		"x":             stlcerr.NewUnboundVariable{},
		"(λx:A. x) y:B": stlcerr.NewArgumentMismatch{},
	}
	for input, expected := range cases {
		t.Run(input, func(t *testing.T) {
			term, err := parser.ParseString(input)
			require.NoError(t, err)

			_, err = NewTranspiler(types.EmptyContext()).TranspileTerm("main", term)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "only well-typed terms")
			assert.IsType(t, expected, errors.Cause(err))
		})
	}
}

func TestTranspileRejectsConflictingFreeVariables(t *testing.T) {
	term, err := parser.ParseString("(λa:A. λb:B. a) x:A x:B")
	require.NoError(t, err)

	_, err = NewTranspiler(types.EmptyContext()).TranspileTerm("main", term)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "free variable 'x'")
}

func TestTranspileRejectsResultNameClash(t *testing.T) {
	term, err := parser.ParseString("λx:Term. x")
	require.NoError(t, err)

	_, err = NewTranspiler(types.EmptyContext()).TranspileTerm("main", term)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "result name")
}
