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

package syntax_test

import (
	"testing"

	"go.rsc-lang.dev/rsc/internal/testutil"
	"go.rsc-lang.dev/rsc/syntax"
)

func lexAll(t *testing.T, src string) []syntax.Token {
	t.Helper()
	tokens, err := syntax.NewTokens([]byte(src))
	testutil.AssertNoError(t, err)

	var out []syntax.Token
	for {
		var tok syntax.Token
		err := tokens.Next(&tok)
		testutil.AssertNoError(t, err)
		out = append(out, tok)
		if tok.Kind == syntax.T_EOF {
			return out
		}
	}
}

func TestLexResourceDecl(t *testing.T) {
	toks := lexAll(t, `resource User { string name }`)
	var kinds []syntax.TokenKind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	testutil.ExpectSliceEq(t, []syntax.TokenKind{
		syntax.T_IDENT, syntax.T_SPACE,
		syntax.T_IDENT, syntax.T_SPACE,
		syntax.T_OPEN_CURL, syntax.T_SPACE,
		syntax.T_IDENT, syntax.T_SPACE,
		syntax.T_IDENT, syntax.T_SPACE,
		syntax.T_CLOSE_CURL,
		syntax.T_EOF,
	}, kinds)
}

func TestLexIntLit(t *testing.T) {
	toks := lexAll(t, `-42`)
	testutil.ExpectEq(t, syntax.T_INT_LIT, toks[0].Kind)
	testutil.ExpectEq(t, uint32(3), toks[0].Span.Len())
}

func TestLexTextLit(t *testing.T) {
	toks := lexAll(t, `"hello\n"`)
	testutil.ExpectEq(t, syntax.T_TEXT_LIT, toks[0].Kind)
}

func TestLexUnterminatedTextLit(t *testing.T) {
	_, err := syntax.Parse([]byte(`resource X { default("oops` + "\n" + `) string y }`))
	testutil.AssertError(t, err)
}

func TestLexUnexpectedCharacter(t *testing.T) {
	tokens, err := syntax.NewTokens([]byte(`#`))
	testutil.AssertNoError(t, err)
	var tok syntax.Token
	err = tokens.Next(&tok)
	testutil.AssertError(t, err)
}
