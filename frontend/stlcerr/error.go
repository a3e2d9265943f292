package stlcerr

import (
	"fmt"
	"github.com/cottand/stlc/frontend/ast"
	"runtime/debug"
	"strings"
)

// enableDebugErrorPrinting makes FormatWithCode include the frame that created the error
var enableDebugErrorPrinting = false

type ErrCode int

const (
	None ErrCode = iota
	Lex
	Parse
	UnboundVariable
	MissingAnnotation
	ArgumentMismatch
	NotAFunction
)

type StlcError interface {
	Error() string
	Code() ErrCode
	ast.Positioner

	withStack([]byte) StlcError
	getStack() []byte
}

func FormatWithCode(e StlcError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		lines := strings.Split(string(e.getStack()), "\n")
		if len(lines) > 6 {
			return fmt.Sprintf("%s:(E%03d) %s", strings.TrimSpace(lines[6]), e.Code(), e.Error())
		}
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

// FormatWithSource is FormatWithCode followed by the source line with the error range underlined
func FormatWithSource(e StlcError, source string) string {
	formatted := FormatWithCode(e)
	start, end := int(e.Pos()), int(e.End())
	if start < 0 || start > len(source) || (start == 0 && end == 0) {
		return formatted
	}
	if end <= start {
		end = start + 1
	}
	col := len([]rune(source[:start]))
	width := len([]rune(source[start:min(end, len(source))]))
	return fmt.Sprintf("%s\n  %s\n  %s%s", formatted, source, strings.Repeat(" ", col), strings.Repeat("^", max(width, 1)))
}

func New[E StlcError](err E) StlcError {
	return err.withStack(debug.Stack())
}

// NewLex is returned by the lexer when the input has no valid tokenisation
type NewLex struct {
	ast.Range
	Message string
	stack   []byte
}

func (e NewLex) Error() string    { return fmt.Sprintf("lex error at %v: %s", e.Range, e.Message) }
func (e NewLex) Code() ErrCode    { return Lex }
func (e NewLex) getStack() []byte { return e.stack }
func (e NewLex) withStack(stack []byte) StlcError {
	e.stack = stack
	return e
}

// NewParse is returned by the parser when a token does not fit the grammar
type NewParse struct {
	ast.Range
	Expected string
	Found    string
	stack    []byte
}

func (e NewParse) Error() string {
	return fmt.Sprintf("parse error at %v: expected %s, but found %s", e.Range, e.Expected, e.Found)
}
func (e NewParse) Code() ErrCode    { return Parse }
func (e NewParse) getStack() []byte { return e.stack }
func (e NewParse) withStack(stack []byte) StlcError {
	e.stack = stack
	return e
}

// NewUnboundVariable means a variable is neither in the context nor annotated
type NewUnboundVariable struct {
	ast.Range
	Name  string
	stack []byte
}

func (e NewUnboundVariable) Error() string {
	return fmt.Sprintf("variable '%s' is not bound and has no type annotation", e.Name)
}
func (e NewUnboundVariable) Code() ErrCode    { return UnboundVariable }
func (e NewUnboundVariable) getStack() []byte { return e.stack }
func (e NewUnboundVariable) withStack(stack []byte) StlcError {
	e.stack = stack
	return e
}

// NewMissingAnnotation means an abstraction has no parameter type
type NewMissingAnnotation struct {
	ast.Range
	Param string
	stack []byte
}

func (e NewMissingAnnotation) Error() string {
	return fmt.Sprintf("cannot type abstraction over '%s' without a parameter type annotation", e.Param)
}
func (e NewMissingAnnotation) Code() ErrCode    { return MissingAnnotation }
func (e NewMissingAnnotation) getStack() []byte { return e.stack }
func (e NewMissingAnnotation) withStack(stack []byte) StlcError {
	e.stack = stack
	return e
}

// NewArgumentMismatch means a function was applied to an argument of the wrong type
type NewArgumentMismatch struct {
	ast.Range
	Expected ast.Type
	Found    ast.Type
	stack    []byte
}

func (e NewArgumentMismatch) Error() string {
	return fmt.Sprintf("type mismatch: expected argument of type '%v', but found '%v'", e.Expected, e.Found)
}
func (e NewArgumentMismatch) Code() ErrCode    { return ArgumentMismatch }
func (e NewArgumentMismatch) getStack() []byte { return e.stack }
func (e NewArgumentMismatch) withStack(stack []byte) StlcError {
	e.stack = stack
	return e
}

// NewNotAFunction means a term of non-arrow type was applied
type NewNotAFunction struct {
	ast.Range
	Type  ast.Type
	stack []byte
}

func (e NewNotAFunction) Error() string {
	return fmt.Sprintf("cannot apply a term of type '%v': it is not a function", e.Type)
}
func (e NewNotAFunction) Code() ErrCode    { return NotAFunction }
func (e NewNotAFunction) getStack() []byte { return e.stack }
func (e NewNotAFunction) withStack(stack []byte) StlcError {
	e.stack = stack
	return e
}
