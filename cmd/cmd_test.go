package cmd

import (
	"bytes"
	"github.com/cottand/stlc/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func resetFlags() {
	defaults := commonFlags{logLevel: int(slog.LevelError)}
	evalFlags, checkFlags, buildFlags = defaults, defaults, defaults
	evalCheckMode = "auto"
	evalShowSteps = false
	buildOutPath = ""
	buildPkgName = "main"
	buildVarName = backend.DefaultResultName
}

func execute(t *testing.T, stdin string, args ...string) (stdout string, stderr string, err error) {
	t.Helper()
	resetFlags()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	RootCmd.SetArgs(args)
	RootCmd.SetOut(out)
	RootCmd.SetErr(errOut)
	RootCmd.SetIn(strings.NewReader(stdin))
	err = RootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestEvalArgs(t *testing.T) {
	stdout, _, err := execute(t, "", "eval", "(λx:A. x)", "y:A")
	require.NoError(t, err)
	assert.Equal(t, "y:A : A\n", stdout)
}

func TestEvalStdinKeepsGoing(t *testing.T) {
	stdin := `
# identity
λx. x
(λx:A. x) y
(λx. λy. x) a b
`
	stdout, stderr, err := execute(t, stdin, "eval", "--steps")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 terms failed")

	assert.Equal(t, "λx.(x) (0 steps)\na (2 steps)\n", stdout)
	assert.Contains(t, stderr, "(E003) variable 'y'")
}

func TestEvalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terms.stlc")
	require.NoError(t, os.WriteFile(path, []byte("λx:Nat. x\n\n(λf. f f) g\n"), 0o644))

	stdout, _, err := execute(t, "", "eval", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "λx:Nat.(x) : (Nat -> Nat)\n(g) (g)\n", stdout)
}

func TestEvalCheckModeAndAssumptions(t *testing.T) {
	stdout, _, err := execute(t, "", "eval", "--check", "never", "(λx:A. x) y")
	require.NoError(t, err)
	assert.Equal(t, "y\n", stdout)

	stdout, _, err = execute(t, "", "eval", "--assume", "y=A -> A", "(λx:A -> A. x) y")
	require.NoError(t, err)
	assert.Equal(t, "y : (A -> A)\n", stdout)

	_, _, err = execute(t, "", "eval", "--check", "sometimes", "x")
	assert.ErrorContains(t, err, "unknown check mode")
}

func TestBadAssumptions(t *testing.T) {
	for _, assumption := range []string{"y", "Y=A", "y=a", "y=A ->", "x y=A"} {
		t.Run(assumption, func(t *testing.T) {
			_, _, err := execute(t, "", "check", "--assume", assumption, "y")
			assert.ErrorContains(t, err, "assumption")
		})
	}
}

func TestCheck(t *testing.T) {
	stdout, stderr, err := execute(t, "λx:Y. x\nλx. x\n", "check")
	require.Error(t, err)
	assert.Equal(t, "λx:Y.(x) : (Y -> Y)\n", stdout)
	assert.Contains(t, stderr, "(E004)")
	assert.Contains(t, err.Error(), "1 of 2 terms failed")
}

func TestBuild(t *testing.T) {
	stdout, _, err := execute(t, "", "build", "--var", "Identity", "λx:Nat. x")
	require.NoError(t, err)
	assert.Contains(t, stdout, "package main")
	assert.Contains(t, stdout, "var Identity func(Nat) Nat")

	out := filepath.Join(t.TempDir(), "gen", "term.go")
	_, _, err = execute(t, "", "build", "--package", "gen", "-o", out, "λx:A. x")
	require.NoError(t, err)
	written, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(written), "package gen")

	_, _, err = execute(t, "", "build", "λx. x")
	assert.ErrorContains(t, err, "only well-typed terms")

	_, _, err = execute(t, "a\nb\n", "build")
	assert.ErrorContains(t, err, "exactly one term")
}
