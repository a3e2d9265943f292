package types

import (
	"github.com/benbjohnson/immutable"
	"github.com/cottand/stlc/frontend/ast"
	"slices"
	"strings"
)

// Context is the typing context Γ, mapping free variable names to their assumed types.
//
// A Context is a value backed by a persistent map: Extend returns a new Context
// and never changes the receiver, so a context can be shared freely between
// sibling sub-derivations and goroutines.
type Context struct {
	bindings *immutable.Map[string, ast.Type]
}

// EmptyContext returns the context with no bindings
func EmptyContext() Context {
	return Context{bindings: immutable.NewMap[string, ast.Type](immutable.NewHasher(""))}
}

// NewContext returns a context holding every binding in assumptions
func NewContext(assumptions map[string]ast.Type) Context {
	builder := immutable.NewMapBuilder[string, ast.Type](immutable.NewHasher(""))
	for name, ty := range assumptions {
		builder.Set(name, ty)
	}
	return Context{bindings: builder.Map()}
}

func (ctx Context) underlying() *immutable.Map[string, ast.Type] {
	if ctx.bindings == nil {
		return EmptyContext().bindings
	}
	return ctx.bindings
}

// Extend returns ctx with name bound to ty, replacing any previous binding of name
func (ctx Context) Extend(name string, ty ast.Type) Context {
	return Context{bindings: ctx.underlying().Set(name, ty)}
}

// Lookup returns the type bound to name, if any
func (ctx Context) Lookup(name string) (ast.Type, bool) {
	return ctx.underlying().Get(name)
}

func (ctx Context) Len() int {
	return ctx.underlying().Len()
}

// Names returns the bound names, sorted
func (ctx Context) Names() []string {
	names := make([]string, 0, ctx.Len())
	itr := ctx.underlying().Iterator()
	for !itr.Done() {
		name, _, _ := itr.Next()
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// String renders ctx as x:A, y:(A -> B)
func (ctx Context) String() string {
	sb := strings.Builder{}
	for i, name := range ctx.Names() {
		if i > 0 {
			sb.WriteString(", ")
		}
		ty, _ := ctx.Lookup(name)
		sb.WriteString(name)
		sb.WriteString(":")
		sb.WriteString(ty.String())
	}
	return sb.String()
}
