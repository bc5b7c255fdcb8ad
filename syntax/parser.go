// Copyright (c) 2024 John Millikin <john@john-millikin.com>
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

package syntax

import "fmt"

// ParseOption configures Parse. The schema language has no per-file
// knobs today (no imports, no dialects), but the functional-options
// shape is kept so a future option (for example, a stricter casing
// mode) can be added without breaking callers.
type ParseOption func(*parseOptions)

type parseOptions struct{}

// Parse converts schema source into an AST program, or returns the
// first lexical or syntactic Error encountered. Parse never produces
// a partial program.
func Parse(src []byte, opts ...ParseOption) (*Program, error) {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}

	tokens, err := NewTokens(src)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens}
	if err := p.advance(); err != nil {
		return nil, err
	}

	return p.parseProgram()
}

type parser struct {
	tokens *Tokens
	tok    Token
}

// advance fetches the next non-whitespace token into p.tok.
func (p *parser) advance() error {
	for {
		var tok Token
		if err := p.tokens.Next(&tok); err != nil {
			return err
		}
		if tok.Kind != T_SPACE {
			p.tok = tok
			return nil
		}
	}
}

func (p *parser) text() string {
	return string(p.tokens.Text(p.tok))
}

// isKeyword reports whether the current token is an identifier whose
// text matches one of the schema language's reserved words.
func (p *parser) isKeyword(word string) bool {
	return p.tok.Kind == T_IDENT && p.text() == word
}

func (p *parser) expectKind(kind TokenKind) (Token, error) {
	if p.tok.Kind != kind {
		return Token{}, errExpectedToken(p.tok.Span, kind, p.tok.Kind)
	}
	tok := p.tok
	if err := p.advance(); err != nil {
		return Token{}, err
	}
	return tok, nil
}

func (p *parser) expectKeyword(word string) (Token, error) {
	if !p.isKeyword(word) {
		return Token{}, errExpectedKeyword(p.tok.Span, word)
	}
	tok := p.tok
	if err := p.advance(); err != nil {
		return Token{}, err
	}
	return tok, nil
}

func (p *parser) parseProgram() (*Program, error) {
	prog := &Program{}
	for p.tok.Kind != T_EOF {
		res, err := p.parseResource()
		if err != nil {
			return nil, err
		}
		prog.Resources = append(prog.Resources, res)
	}
	return prog, nil
}

// resource := "resource" PascalIdent "{" field* "}"
func (p *parser) parseResource() (*Resource, error) {
	start := p.tok.Span
	if _, err := p.expectKeyword("resource"); err != nil {
		return nil, errExpectedDeclaration(start)
	}

	nameTok, err := p.expectKind(T_IDENT)
	if err != nil {
		return nil, err
	}
	name := string(p.tokens.Text(nameTok))

	if _, err := p.expectKind(T_OPEN_CURL); err != nil {
		return nil, err
	}

	var fields []*Field
	for p.tok.Kind != T_CLOSE_CURL {
		field, err := p.parseField(len(fields))
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	closeTok, err := p.expectKind(T_CLOSE_CURL)
	if err != nil {
		return nil, err
	}

	return &Resource{
		Name:   name,
		Fields: fields,
		Span:   NewSpan(start.Start(), closeTok.Span.End()-start.Start()),
	}, nil
}

// field := attribute* type ident
// attribute := "nullable" | "optional" | "default" "(" literal ")"
func (p *parser) parseField(index int) (*Field, error) {
	start := p.tok.Span

	var nullable, optional bool
	var haveNullable, haveOptional, haveDefault bool
	var def *Literal

	for {
		switch {
		case p.isKeyword("nullable"):
			if haveNullable {
				return nil, errDuplicateAttribute(p.tok.Span, "nullable")
			}
			haveNullable = true
			nullable = true
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		case p.isKeyword("optional"):
			if haveOptional {
				return nil, errDuplicateAttribute(p.tok.Span, "optional")
			}
			haveOptional = true
			optional = true
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		case p.isKeyword("default"):
			if haveDefault {
				return nil, errDuplicateAttribute(p.tok.Span, "default")
			}
			haveDefault = true
			if err := p.advance(); err != nil {
				return nil, err
			}
			if _, err := p.expectKind(T_OPEN_PAREN); err != nil {
				return nil, err
			}
			lit, err := p.parseLiteral()
			if err != nil {
				return nil, err
			}
			def = lit
			if _, err := p.expectKind(T_CLOSE_PAREN); err != nil {
				return nil, err
			}
			continue
		}
		break
	}

	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}

	nameTok, err := p.expectKind(T_IDENT)
	if err != nil {
		return nil, err
	}
	name := string(p.tokens.Text(nameTok))

	return &Field{
		Name:     name,
		Type:     typ,
		Nullable: nullable,
		Optional: optional,
		Default:  def,
		Index:    index,
		Span:     NewSpan(start.Start(), nameTok.Span.End()-start.Start()),
	}, nil
}

// type := "string" | "number" | "bool" | "list" type | Ident
func (p *parser) parseType() (*Type, error) {
	start := p.tok.Span
	switch {
	case p.isKeyword(PrimitiveString), p.isKeyword(PrimitiveNumber), p.isKeyword(PrimitiveBool):
		name := p.text()
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Type{Kind: TypePrimitive, Name: name, Span: start}, nil
	case p.isKeyword("list"):
		if err := p.advance(); err != nil {
			return nil, err
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &Type{
			Kind: TypeList,
			Elem: elem,
			Span: NewSpan(start.Start(), elem.Span.End()-start.Start()),
		}, nil
	case p.tok.Kind == T_IDENT:
		name := p.text()
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Type{Kind: TypeNamed, Name: name, Span: start}, nil
	default:
		return nil, errExpectedType(start)
	}
}

// literal := integer | "true" | "false" | stringLiteral
func (p *parser) parseLiteral() (*Literal, error) {
	span := p.tok.Span
	switch {
	case p.tok.Kind == T_INT_LIT:
		text := p.text()
		n, err := parseInt64(text)
		if err != nil {
			return nil, errIntLitInvalid(span)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Literal{Kind: LiteralInt, Int: n, Span: span}, nil
	case p.isKeyword("true"):
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Literal{Kind: LiteralBool, Bool: true, Span: span}, nil
	case p.isKeyword("false"):
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Literal{Kind: LiteralBool, Bool: false, Span: span}, nil
	case p.tok.Kind == T_TEXT_LIT:
		text := p.text()
		unescaped, err := unescapeTextLit(text)
		if err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Literal{Kind: LiteralString, String: unescaped, Span: span}, nil
	default:
		return nil, errExpectedLiteral(span)
	}
}

func parseInt64(text string) (int64, error) {
	var n int64
	if _, err := fmt.Sscanf(text, "%d", &n); err != nil {
		return 0, err
	}
	return n, nil
}

// unescapeTextLit strips the surrounding quotes and resolves the
// backslash escapes accepted by nextTextLit.
func unescapeTextLit(text string) (string, error) {
	inner := text[1 : len(text)-1]
	out := make([]byte, 0, len(inner))
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c == '\\' && i+1 < len(inner) {
			i++
			switch inner[i] {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case '"':
				out = append(out, '"')
			case '\\':
				out = append(out, '\\')
			default:
				out = append(out, inner[i])
			}
			continue
		}
		out = append(out, c)
	}
	return string(out), nil
}
