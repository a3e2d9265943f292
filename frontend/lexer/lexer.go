package lexer

import (
	"fmt"
	"github.com/cottand/stlc/frontend/ast"
	"github.com/cottand/stlc/frontend/stlcerr"
	"github.com/cottand/stlc/internal/log"
	"go/token"
	"unicode"
	"unicode/utf8"
)

var lexerLogger = log.DefaultLogger.With("section", "frontend.lexer")

type lexer struct {
	input  string
	pos    int
	tokens []Token
}

// Lex consumes the whole of input and returns its tokens in order.
// Whitespace is skipped; it fails on the first character that starts no token.
func Lex(input string) ([]Token, error) {
	l := &lexer{input: input}
	for {
		l.skipWhitespace()
		if l.pos >= len(l.input) {
			break
		}
		if err := l.next(); err != nil {
			lexerLogger.Debug("lexing failed", "input", input, "error", err)
			return nil, err
		}
	}
	lexerLogger.Debug("lexed", "input", input, "tokens", len(l.tokens))
	return l.tokens, nil
}

func (l *lexer) peekRune() (rune, int) {
	return utf8.DecodeRuneInString(l.input[l.pos:])
}

func (l *lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		r, size := l.peekRune()
		if !unicode.IsSpace(r) {
			return
		}
		l.pos += size
	}
}

func (l *lexer) emit(kind Kind, start int, text string) {
	l.tokens = append(l.tokens, Token{
		Range: ast.Range{PosStart: token.Pos(start), PosEnd: token.Pos(l.pos)},
		Kind:  kind,
		Text:  text,
	})
}

func (l *lexer) next() error {
	start := l.pos
	r, size := l.peekRune()
	l.pos += size

	switch {
	case r == 'λ' || r == '\\':
		l.emit(Lambda, start, "")
	case r == '.':
		l.emit(Dot, start, "")
	case r == ':':
		l.emit(Colon, start, "")
	case r == '(':
		l.emit(LParen, start, "")
	case r == ')':
		l.emit(RParen, start, "")
	case r == '-':
		if l.pos < len(l.input) && l.input[l.pos] == '>' {
			l.pos++
			l.emit(Arrow, start, "")
			return nil
		}
		return stlcerr.New(stlcerr.NewLex{
			Range:   ast.Range{PosStart: token.Pos(start), PosEnd: token.Pos(l.pos)},
			Message: "expected '>' after '-'",
		})
	case unicode.IsLetter(r):
		for l.pos < len(l.input) {
			next, nextSize := l.peekRune()
			if !unicode.IsLetter(next) && !unicode.IsDigit(next) {
				break
			}
			l.pos += nextSize
		}
		ident := l.input[start:l.pos]
		if isTypeName(ident) {
			l.emit(Type, start, ident)
		} else {
			l.emit(Var, start, ident)
		}
	default:
		return stlcerr.New(stlcerr.NewLex{
			Range:   ast.Range{PosStart: token.Pos(start), PosEnd: token.Pos(l.pos)},
			Message: fmt.Sprintf("unrecognized character %q", r),
		})
	}
	return nil
}

func isTypeName(ident string) bool {
	if ident == "Bool" || ident == "Nat" {
		return true
	}
	first, _ := utf8.DecodeRuneInString(ident)
	return unicode.IsUpper(first)
}
