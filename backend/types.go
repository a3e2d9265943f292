package backend

import (
	"fmt"
	"github.com/cottand/stlc/frontend/ast"
	goast "go/ast"
	"go/token"
	"slices"
)

func (tp *Transpiler) transpileType(t ast.Type) (goast.Expr, error) {
	switch t := t.(type) {
	case *ast.Named:
		tp.namedTypes.Insert(t.Name)
		return goast.NewIdent(t.Name), nil
	case ast.Base:
		tp.namedTypes.Insert(t.String())
		return goast.NewIdent(t.String()), nil
	case *ast.Arrow:
		from, err := tp.transpileType(t.From)
		if err != nil {
			return nil, err
		}
		to, err := tp.transpileType(t.To)
		if err != nil {
			return nil, err
		}
		return &goast.FuncType{
			Params:  &goast.FieldList{List: []*goast.Field{{Type: from}}},
			Results: &goast.FieldList{List: []*goast.Field{{Type: to}}},
		}, nil
	default:
		return nil, fmt.Errorf("cannot transpile type %v", t)
	}
}

// typeDeclarations declares every type name used so far.
// Named types have no values, so they become empty interfaces; Bool and Nat get their Go counterparts.
func (tp *Transpiler) typeDeclarations() []goast.Decl {
	names := tp.namedTypes.Slice()
	slices.Sort(names)

	var decls []goast.Decl
	for _, name := range names {
		underlying := "any"
		if base, ok := ast.NamedType(name).(ast.Base); ok {
			underlying = baseToGoType[base]
		}
		decls = append(decls, &goast.GenDecl{
			Tok: token.TYPE,
			Specs: []goast.Spec{&goast.TypeSpec{
				Name: goast.NewIdent(name),
				Type: goast.NewIdent(underlying),
			}},
		})
	}
	return decls
}
