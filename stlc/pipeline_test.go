package stlc_test

import (
	"github.com/cottand/stlc/frontend/ast"
	"github.com/cottand/stlc/frontend/stlcerr"
	"github.com/cottand/stlc/frontend/types"
	"github.com/cottand/stlc/stlc"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestRunDisplay(t *testing.T) {
	cases := map[string]string{
		"x":                "x",
		"λx. x":            "λx.(x)",
		"λx:Y. x":          "λx:Y.(x) : (Y -> Y)",
		"λx:Y -> Y. x":     "λx:(Y -> Y).(x) : ((Y -> Y) -> (Y -> Y))",
		"(λx. x) y":        "y",
		"(λx:A. x) y:A":    "y:A : A",
		"x:Y":              "x:Y : Y",
		"(λx. λy. x) a b":  "a",
	}

	for input, expected := range cases {
		t.Run(input, func(t *testing.T) {
			res, err := stlc.Run(input, stlc.Settings{})
			require.NoError(t, err)
			assert.Equal(t, expected, res.String())
		})
	}
}

func TestRunTypeErrorsStopEvaluation(t *testing.T) {
	// the colon makes the heuristic check the term, and y has no type
	res, err := stlc.Run("(λx:A. x) y", stlc.Settings{})
	assert.Nil(t, res)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ill-typed term")
	assert.IsType(t, stlcerr.NewUnboundVariable{}, errors.Cause(err))

	_, err = stlc.Run("(λx:A. x) y:B", stlc.Settings{})
	assert.IsType(t, stlcerr.NewArgumentMismatch{}, errors.Cause(err))
}

func TestRunSyntaxErrors(t *testing.T) {
	_, err := stlc.Run("λx. x -", stlc.Settings{})
	assert.IsType(t, stlcerr.NewLex{}, errors.Cause(err))

	_, err = stlc.Run("λx x", stlc.Settings{})
	assert.IsType(t, stlcerr.NewParse{}, errors.Cause(err))

	_, err = stlc.Run("x )", stlc.Settings{})
	assert.IsType(t, stlcerr.NewParse{}, errors.Cause(err))
}

func TestRunCheckModes(t *testing.T) {
	// "(λx. x) y" has no annotations and would fail to type-check
	untyped := "(λx. x) y"

	res, err := stlc.Run(untyped, stlc.Settings{Check: stlc.CheckAuto})
	require.NoError(t, err)
	assert.Nil(t, res.Type)

	res, err = stlc.Run(untyped, stlc.Settings{Check: stlc.CheckAnnotated})
	require.NoError(t, err)
	assert.Nil(t, res.Type)

	_, err = stlc.Run(untyped, stlc.Settings{Check: stlc.CheckAlways})
	assert.IsType(t, stlcerr.NewMissingAnnotation{}, errors.Cause(err))

	res, err = stlc.Run("(λx:A. x) y", stlc.Settings{Check: stlc.CheckNever})
	require.NoError(t, err)
	assert.Nil(t, res.Type)
	assert.Equal(t, "y", res.Evaluated.String())
}

func TestShouldCheckHeuristic(t *testing.T) {
	term, err := stlc.Parse("λx. x")
	require.NoError(t, err)

	// the heuristic reads the raw text: the arrow of an untyped source still triggers it
	assert.True(t, stlc.ShouldCheck(stlc.CheckAuto, "λx. x  ->", term))
	assert.False(t, stlc.ShouldCheck(stlc.CheckAuto, "λx. x", term))
	assert.False(t, stlc.ShouldCheck(stlc.CheckAnnotated, "λx. x  ->", term))
}

func TestRunWithContext(t *testing.T) {
	ctx := types.NewContext(map[string]ast.Type{"y": &ast.Named{Name: "A"}})

	res, err := stlc.Run("(λx:A. x) y", stlc.Settings{Context: ctx})
	require.NoError(t, err)
	assert.Equal(t, "A", res.Type.String())
	assert.Equal(t, "y", res.Evaluated.String())
	assert.Equal(t, 1, res.Steps)
	assert.Equal(t, "(λx:A.(x)) (y)", res.Term.String())
}

func TestCheckModeNames(t *testing.T) {
	for _, mode := range []stlc.CheckMode{stlc.CheckAuto, stlc.CheckAnnotated, stlc.CheckAlways, stlc.CheckNever} {
		parsed, err := stlc.ParseCheckMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, parsed)
	}
	_, err := stlc.ParseCheckMode("sometimes")
	assert.Error(t, err)
}
