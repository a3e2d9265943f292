package backend

import (
	"github.com/cottand/stlc/frontend/ast"
	"go/token"
	gotypes "go/types"
)

const goVersion = "1.23.3"

// baseToGoType maps the base types to the Go types underlying their declarations
var baseToGoType = map[ast.Base]string{
	ast.Bool: "bool",
	ast.Nat:  "uint",
}

// goIdent returns a Go identifier for the term variable name.
// Names that would clash with Go keywords or predeclared identifiers get a trailing underscore.
func goIdent(name string) string {
	if token.IsKeyword(name) || gotypes.Universe.Lookup(name) != nil {
		return name + "_"
	}
	return name
}
