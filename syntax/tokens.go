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

import (
	"unicode/utf8"
)

// maxSrcLen bounds schema source size so token offsets fit in uint32
// without a separate overflow check at every lex step.
const maxSrcLen = 1 << 30

// TokenKind classifies a lexeme. Keyword recognition happens in the
// parser by comparing an IDENT token's text; the lexer only needs to
// know the lexeme's shape.
type TokenKind uint8

const (
	T_EOF TokenKind = iota
	T_SPACE
	T_IDENT
	T_INT_LIT
	T_TEXT_LIT
	T_OPEN_CURL
	T_CLOSE_CURL
	T_OPEN_PAREN
	T_CLOSE_PAREN
)

func (k TokenKind) String() string {
	switch k {
	case T_EOF:
		return "end of input"
	case T_SPACE:
		return "whitespace"
	case T_IDENT:
		return "identifier"
	case T_INT_LIT:
		return "integer literal"
	case T_TEXT_LIT:
		return "string literal"
	case T_OPEN_CURL:
		return "'{'"
	case T_CLOSE_CURL:
		return "'}'"
	case T_OPEN_PAREN:
		return "'('"
	case T_CLOSE_PAREN:
		return "')'"
	default:
		return "unknown token"
	}
}

// Token is a tagged lexeme: its kind and source span. The lexeme text
// itself is recovered from the source buffer via the span, keeping
// the token value small and copyable.
type Token struct {
	Kind TokenKind
	Span Span
}

// Tokens is a cursor over a source buffer producing one Token per
// Next call. It is total over valid UTF-8 input: every byte is either
// consumed by some token or reported through a lexical Error.
type Tokens struct {
	src    []byte
	offset uint32
}

func NewTokens(src []byte) (*Tokens, error) {
	if len(src) > maxSrcLen {
		return nil, errSourceTooLong(uint32(len(src)))
	}
	if !utf8.Valid(src) {
		return nil, errInvalidUTF8(0)
	}
	return &Tokens{src: src}, nil
}

// Next writes the next token into tok, or returns a lexical Error.
// Once the end of input is reached, Next repeatedly yields T_EOF.
func (t *Tokens) Next(tok *Token) error {
	if int(t.offset) >= len(t.src) {
		*tok = Token{Kind: T_EOF, Span: NewSpan(t.offset, 0)}
		return nil
	}

	start := t.offset
	c := t.src[start]

	switch {
	case c == ' ' || c == '\t' || c == '\n' || c == '\r':
		return t.nextSpace(tok, start)
	case c == '{':
		t.offset++
		*tok = Token{Kind: T_OPEN_CURL, Span: NewSpan(start, 1)}
		return nil
	case c == '}':
		t.offset++
		*tok = Token{Kind: T_CLOSE_CURL, Span: NewSpan(start, 1)}
		return nil
	case c == '(':
		t.offset++
		*tok = Token{Kind: T_OPEN_PAREN, Span: NewSpan(start, 1)}
		return nil
	case c == ')':
		t.offset++
		*tok = Token{Kind: T_CLOSE_PAREN, Span: NewSpan(start, 1)}
		return nil
	case c == '-' || (c >= '0' && c <= '9'):
		return t.nextIntLit(tok, start)
	case c == '"':
		return t.nextTextLit(tok, start)
	case isIdentStart(c):
		return t.nextIdent(tok, start)
	default:
		r, _ := utf8.DecodeRune(t.src[start:])
		return errUnexpectedCharacter(start, r)
	}
}

func (t *Tokens) nextSpace(tok *Token, start uint32) error {
	offset := start
	for int(offset) < len(t.src) {
		c := t.src[offset]
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			break
		}
		offset++
	}
	t.offset = offset
	*tok = Token{Kind: T_SPACE, Span: NewSpan(start, offset-start)}
	return nil
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func (t *Tokens) nextIdent(tok *Token, start uint32) error {
	offset := start + 1
	for int(offset) < len(t.src) && isIdentCont(t.src[offset]) {
		offset++
	}
	t.offset = offset
	*tok = Token{Kind: T_IDENT, Span: NewSpan(start, offset-start)}
	return nil
}

func (t *Tokens) nextIntLit(tok *Token, start uint32) error {
	offset := start
	if t.src[offset] == '-' {
		offset++
	}
	digitsStart := offset
	for int(offset) < len(t.src) && t.src[offset] >= '0' && t.src[offset] <= '9' {
		offset++
	}
	if offset == digitsStart {
		// Lone '-' with no following digit: not a valid integer
		// literal, and not any other token either.
		r, _ := utf8.DecodeRune(t.src[start:])
		return errUnexpectedCharacter(start, r)
	}
	t.offset = offset
	*tok = Token{Kind: T_INT_LIT, Span: NewSpan(start, offset-start)}
	return nil
}

func (t *Tokens) nextTextLit(tok *Token, start uint32) error {
	offset := start + 1
	for {
		if int(offset) >= len(t.src) {
			return errTextLitUnterminated(NewSpan(start, offset-start))
		}
		c := t.src[offset]
		if c == '"' {
			offset++
			t.offset = offset
			*tok = Token{Kind: T_TEXT_LIT, Span: NewSpan(start, offset-start)}
			return nil
		}
		if c == '\n' {
			return errTextLitContainsNewline(NewSpan(start, offset-start+1))
		}
		if c == '\\' && int(offset+1) < len(t.src) {
			offset += 2
			continue
		}
		offset++
	}
}

// Text returns the literal source bytes spanned by tok.
func (t *Tokens) Text(tok Token) []byte {
	return t.src[tok.Span.Start():tok.Span.End()]
}
