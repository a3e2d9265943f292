package backend

import (
	"bytes"
	"fmt"
	"github.com/cottand/stlc/frontend/ast"
	"github.com/cottand/stlc/frontend/types"
	"github.com/cottand/stlc/internal/log"
	"github.com/hashicorp/go-set/v3"
	"github.com/pkg/errors"
	goast "go/ast"
	"go/format"
	"go/token"
	"log/slog"
	"slices"
)

// DefaultResultName is the name of the package-level variable the transpiled term is bound to
const DefaultResultName = "Term"

// Transpiler turns well-typed terms into Go source files.
//
// Every type name becomes a Go type declaration, arrows become func types,
// abstractions become func literals and applications become calls.
// Free variables become package-level variables holding the zero value of their type.
type Transpiler struct {
	ctx        types.Context
	ResultName string

	namedTypes *set.Set[string]
	// freeVars maps free variable names to their types, in order of appearance
	freeVars     map[string]ast.Type
	freeVarOrder []string

	*slog.Logger
}

// NewTranspiler returns a Transpiler that types free variables with ctx
func NewTranspiler(ctx types.Context) *Transpiler {
	return &Transpiler{
		ctx:        ctx,
		ResultName: DefaultResultName,
		Logger:     ast.TermLogger(log.DefaultLogger.With("section", "backend")),
	}
}

func (tp *Transpiler) reset() {
	tp.namedTypes = set.New[string](0)
	tp.freeVars = make(map[string]ast.Type)
	tp.freeVarOrder = nil
}

// TranspileTerm type-checks term and returns a Go file in package pkgName which binds it to ResultName
func (tp *Transpiler) TranspileTerm(pkgName string, term ast.Term) (*goast.File, error) {
	tp.reset()

	ty, err := types.Check(term, tp.ctx)
	if err != nil {
		return nil, errors.Wrap(err, "only well-typed terms can be transpiled")
	}
	if err := tp.collectFreeVars(term, tp.ctx); err != nil {
		return nil, err
	}

	expr, err := tp.transpileExpr(term, tp.ctx)
	if err != nil {
		return nil, err
	}
	resultType, err := tp.transpileType(ty)
	if err != nil {
		return nil, err
	}
	if _, ok := tp.freeVars[tp.ResultName]; ok || tp.namedTypes.Contains(tp.ResultName) {
		return nil, fmt.Errorf("result name '%s' is already used by the term", tp.ResultName)
	}

	var freeVarSpecs []goast.Spec
	for _, name := range tp.freeVarOrder {
		goType, err := tp.transpileType(tp.freeVars[name])
		if err != nil {
			return nil, err
		}
		freeVarSpecs = append(freeVarSpecs, &goast.ValueSpec{
			Names: []*goast.Ident{goast.NewIdent(goIdent(name))},
			Type:  goType,
		})
	}

	// built last, once every type of the term has been visited
	decls := tp.typeDeclarations()
	if len(freeVarSpecs) > 0 {
		decls = append(decls, &goast.GenDecl{Tok: token.VAR, Specs: freeVarSpecs})
	}
	decls = append(decls, &goast.GenDecl{
		Tok: token.VAR,
		Specs: []goast.Spec{&goast.ValueSpec{
			Names:  []*goast.Ident{goast.NewIdent(tp.ResultName)},
			Type:   resultType,
			Values: []goast.Expr{expr},
		}},
	})

	tp.Debug("transpiled term", "term", term, "type", ty.String(), "freeVars", tp.freeVarOrder)
	return &goast.File{
		Name:      goast.NewIdent(pkgName),
		GoVersion: goVersion,
		Decls:     decls,
	}, nil
}

// collectFreeVars records the type of every variable that is not bound by an enclosing abstraction.
// Occurrences of the same free variable must agree on their type.
func (tp *Transpiler) collectFreeVars(term ast.Term, ctx types.Context) error {
	bound := set.New[string](0)
	var walk func(ast.Term) error
	walk = func(term ast.Term) error {
		switch term := term.(type) {
		case *ast.Var:
			if bound.Contains(term.Name) {
				return nil
			}
			ty, err := types.Check(term, ctx)
			if err != nil {
				return err
			}
			existing, seen := tp.freeVars[term.Name]
			if seen && !ast.TypesEqual(existing, ty) {
				return fmt.Errorf("free variable '%s' is used both as '%v' and as '%v'", term.Name, existing, ty)
			}
			if !seen {
				tp.freeVars[term.Name] = ty
				tp.freeVarOrder = append(tp.freeVarOrder, term.Name)
			}
		case *ast.Abs:
			inserted := bound.Insert(term.Param)
			err := walk(term.Body)
			if inserted {
				bound.Remove(term.Param)
			}
			return err
		case *ast.App:
			if err := walk(term.Func); err != nil {
				return err
			}
			return walk(term.Arg)
		}
		return nil
	}
	return walk(term)
}

func (tp *Transpiler) transpileExpr(term ast.Term, ctx types.Context) (goast.Expr, error) {
	switch term := term.(type) {
	case *ast.Var:
		return goast.NewIdent(goIdent(term.Name)), nil

	case *ast.Abs:
		bodyCtx := ctx.Extend(term.Param, term.ParamType)
		bodyType, err := types.Check(term.Body, bodyCtx)
		if err != nil {
			return nil, err
		}
		paramType, err := tp.transpileType(term.ParamType)
		if err != nil {
			return nil, err
		}
		resultType, err := tp.transpileType(bodyType)
		if err != nil {
			return nil, err
		}
		body, err := tp.transpileExpr(term.Body, bodyCtx)
		if err != nil {
			return nil, err
		}
		return &goast.FuncLit{
			Type: &goast.FuncType{
				Params: &goast.FieldList{List: []*goast.Field{{
					Names: []*goast.Ident{goast.NewIdent(goIdent(term.Param))},
					Type:  paramType,
				}}},
				Results: &goast.FieldList{List: []*goast.Field{{Type: resultType}}},
			},
			Body: &goast.BlockStmt{List: []goast.Stmt{
				&goast.ReturnStmt{Results: []goast.Expr{body}},
			}},
		}, nil

	case *ast.App:
		fn, err := tp.transpileExpr(term.Func, ctx)
		if err != nil {
			return nil, err
		}
		arg, err := tp.transpileExpr(term.Arg, ctx)
		if err != nil {
			return nil, err
		}
		if _, isLit := fn.(*goast.FuncLit); isLit {
			fn = &goast.ParenExpr{X: fn}
		}
		return &goast.CallExpr{Fun: fn, Args: []goast.Expr{arg}}, nil

	default:
		return nil, fmt.Errorf("cannot transpile term %v", term)
	}
}

// Source formats file as Go source code
func Source(file *goast.File) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := format.Node(buf, token.NewFileSet(), file); err != nil {
		return "", errors.Wrap(err, "could not format transpiled file")
	}
	return buf.String(), nil
}

// FreeVarNames returns the free variables of the last transpiled term, sorted
func (tp *Transpiler) FreeVarNames() []string {
	names := slices.Clone(tp.freeVarOrder)
	slices.Sort(names)
	return names
}
