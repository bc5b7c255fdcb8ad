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

package ir

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"go.rsc-lang.dev/rsc/syntax"
)

// pascalCaser computes the Unicode-correct title case of an
// identifier's leading rune, used to confirm a resource name starts
// with an uppercase letter without hand-rolling ASCII-only casing
// rules.
var pascalCaser = cases.Title(language.Und, cases.NoLower)

func isPascalCase(name string) bool {
	if name == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(name)
	return pascalCaser.String(string(first)) == string(first) && unicode.IsUpper(first)
}

// Validate performs the structural checks of §4.3: resource names are
// PascalCase and pairwise distinct, and field names are pairwise
// distinct within each resource. It fails fast, reporting the first
// violation in declaration order.
func Validate(prog *syntax.Program) error {
	seenResource := make(map[string]bool, len(prog.Resources))
	for _, res := range prog.Resources {
		if !isPascalCase(res.Name) {
			return errNotPascalCase(res)
		}
		if seenResource[res.Name] {
			return errDuplicateResourceName(res)
		}
		seenResource[res.Name] = true

		seenField := make(map[string]bool, len(res.Fields))
		for _, field := range res.Fields {
			if seenField[field.Name] {
				return errDuplicateFieldName(res, field)
			}
			seenField[field.Name] = true
		}
	}
	return nil
}
