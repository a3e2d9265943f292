package ast

import (
	"strings"
)

// TermString renders t in the round-trippable display syntax:
//
//	x    x:T    λx.(body)    λx:T.(body)    (f) (a)
func TermString(t Term) string {
	sb := &strings.Builder{}
	showTermWalker(sb, t)
	return sb.String()
}

func showTermWalker(sb *strings.Builder, t Term) {
	switch t := t.(type) {
	case nil:
		sb.WriteString("nil")
	case *Var:
		sb.WriteString(t.Name)
		if t.Annotation != nil {
			sb.WriteString(":")
			sb.WriteString(t.Annotation.String())
		}
	case *Abs:
		sb.WriteString("λ")
		sb.WriteString(t.Param)
		if t.ParamType != nil {
			sb.WriteString(":")
			sb.WriteString(t.ParamType.String())
		}
		sb.WriteString(".(")
		showTermWalker(sb, t.Body)
		sb.WriteString(")")
	case *App:
		sb.WriteString("(")
		showTermWalker(sb, t.Func)
		sb.WriteString(") (")
		showTermWalker(sb, t.Arg)
		sb.WriteString(")")
	}
}
