package lexer

import (
	"fmt"
	"github.com/cottand/stlc/frontend/ast"
)

type Kind int

const (
	EOF Kind = iota
	Lambda
	Dot
	Colon
	Arrow
	LParen
	RParen
	Var
	Type
)

var kindNames = map[Kind]string{
	EOF:    "end of input",
	Lambda: "'λ'",
	Dot:    "'.'",
	Colon:  "':'",
	Arrow:  "'->'",
	LParen: "'('",
	RParen: "')'",
	Var:    "variable",
	Type:   "type name",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a single lexeme. Text is only set for Var and Type tokens.
type Token struct {
	ast.Range
	Kind Kind
	Text string
}

// Is reports whether t has the same kind and text as other, ignoring positions
func (t Token) Is(other Token) bool {
	return t.Kind == other.Kind && t.Text == other.Text
}

func (t Token) String() string {
	switch t.Kind {
	case Var, Type:
		return fmt.Sprintf("%v '%s'", t.Kind, t.Text)
	default:
		return t.Kind.String()
	}
}
