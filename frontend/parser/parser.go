package parser

import (
	"github.com/cottand/stlc/frontend/ast"
	"github.com/cottand/stlc/frontend/lexer"
	"github.com/cottand/stlc/frontend/stlcerr"
	"github.com/cottand/stlc/internal/log"
	"log/slog"
)

// Parser is a recursive-descent parser over a token slice with a single token of lookahead.
//
//	term        = application
//	application = atom { atom }
//	atom        = var [ ":" type ] | abstraction | "(" term ")"
//	abstraction = "λ" var [ ":" type ] "." term
//	type        = simpleType [ "->" type ]
//	simpleType  = typeName | "(" type ")"
type Parser struct {
	tokens   []lexer.Token
	position int

	*slog.Logger
}

func NewParser(tokens []lexer.Token) *Parser {
	return &Parser{
		tokens: tokens,
		Logger: log.DefaultLogger.With("section", "frontend.parser"),
	}
}

// Parse parses tokens as a single term, and fails if any tokens are left over
func Parse(tokens []lexer.Token) (ast.Term, error) {
	p := NewParser(tokens)
	term, err := p.ParseTerm()
	if err != nil {
		return nil, err
	}
	if rest := p.Remaining(); len(rest) > 0 {
		return nil, p.errorf(rest[0], "end of input")
	}
	return term, nil
}

// ParseType parses tokens as a single type, and fails if any tokens are left over
func ParseType(tokens []lexer.Token) (ast.Type, error) {
	p := NewParser(tokens)
	ty, err := p.ParseType()
	if err != nil {
		return nil, err
	}
	if rest := p.Remaining(); len(rest) > 0 {
		return nil, p.errorf(rest[0], "end of input")
	}
	return ty, nil
}

// ParseString lexes and parses input
func ParseString(input string) (ast.Term, error) {
	tokens, err := lexer.Lex(input)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// Remaining returns the tokens that have not been consumed yet
func (p *Parser) Remaining() []lexer.Token {
	return p.tokens[p.position:]
}

// peek returns the lookahead token, which has Kind lexer.EOF once all tokens are consumed
func (p *Parser) peek() lexer.Token {
	if p.position >= len(p.tokens) {
		return p.eof()
	}
	return p.tokens[p.position]
}

func (p *Parser) eof() lexer.Token {
	eof := lexer.Token{Kind: lexer.EOF}
	if len(p.tokens) > 0 {
		end := p.tokens[len(p.tokens)-1].End()
		eof.Range = ast.Range{PosStart: end, PosEnd: end}
	}
	return eof
}

func (p *Parser) advance() lexer.Token {
	tok := p.peek()
	if p.position < len(p.tokens) {
		p.position++
	}
	return tok
}

func (p *Parser) expect(kind lexer.Kind) (lexer.Token, error) {
	tok := p.advance()
	if tok.Kind != kind {
		return tok, p.errorf(tok, kind.String())
	}
	return tok, nil
}

func (p *Parser) errorf(found lexer.Token, expected string) error {
	p.Debug("parse error", "expected", expected, "found", found, "position", p.position)
	return stlcerr.New(stlcerr.NewParse{
		Range:    found.Range,
		Expected: expected,
		Found:    found.String(),
	})
}

// ParseTerm parses the longest term at the current position.
// Tokens after it are left for the caller, see Remaining.
func (p *Parser) ParseTerm() (ast.Term, error) {
	return p.parseApplication()
}

func startsAtom(kind lexer.Kind) bool {
	return kind == lexer.Var || kind == lexer.LParen || kind == lexer.Lambda
}

func (p *Parser) parseApplication() (ast.Term, error) {
	term, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for startsAtom(p.peek().Kind) {
		arg, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		term = &ast.App{Func: term, Arg: arg}
	}
	return term, nil
}

func (p *Parser) parseAtom() (ast.Term, error) {
	switch tok := p.peek(); tok.Kind {
	case lexer.Var:
		p.advance()
		annotation, err := p.parseOptionalAnnotation()
		if err != nil {
			return nil, err
		}
		return &ast.Var{Name: tok.Text, Annotation: annotation}, nil

	case lexer.Lambda:
		return p.parseAbstraction()

	case lexer.LParen:
		p.advance()
		term, err := p.ParseTerm()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RParen); err != nil {
			return nil, err
		}
		return term, nil

	default:
		return nil, p.errorf(tok, "a term")
	}
}

// parseOptionalAnnotation parses ": type" if the lookahead is a colon, and returns nil otherwise
func (p *Parser) parseOptionalAnnotation() (ast.Type, error) {
	if p.peek().Kind != lexer.Colon {
		return nil, nil
	}
	p.advance()
	return p.ParseType()
}

func (p *Parser) parseAbstraction() (ast.Term, error) {
	if _, err := p.expect(lexer.Lambda); err != nil {
		return nil, err
	}
	param, err := p.expect(lexer.Var)
	if err != nil {
		return nil, err
	}
	paramType, err := p.parseOptionalAnnotation()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.Dot); err != nil {
		return nil, err
	}
	body, err := p.ParseTerm()
	if err != nil {
		return nil, err
	}
	return &ast.Abs{Param: param.Text, ParamType: paramType, Body: body}, nil
}

// ParseType parses a type at the current position. Arrows associate to the right.
func (p *Parser) ParseType() (ast.Type, error) {
	ty, err := p.parseSimpleType()
	if err != nil {
		return nil, err
	}
	if p.peek().Kind == lexer.Arrow {
		p.advance()
		result, err := p.ParseType()
		if err != nil {
			return nil, err
		}
		return &ast.Arrow{From: ty, To: result}, nil
	}
	return ty, nil
}

func (p *Parser) parseSimpleType() (ast.Type, error) {
	switch tok := p.advance(); tok.Kind {
	case lexer.Type:
		return ast.NamedType(tok.Text), nil
	case lexer.LParen:
		ty, err := p.ParseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RParen); err != nil {
			return nil, err
		}
		return ty, nil
	default:
		return nil, p.errorf(tok, "a type")
	}
}
