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
	"fmt"
	"strings"

	"go.rsc-lang.dev/rsc/syntax"
)

// Error ranges continue the partitioning started in package syntax:
// 3000s naming (validator), 4000s resolution (resolver), 5000s cyclic
// (cycle detector).
type Error struct {
	code    uint32
	message string
	span    syntax.Span
}

func (e *Error) Error() string     { return fmt.Sprintf("E%d: %s", e.code, e.message) }
func (e *Error) Code() uint32      { return e.code }
func (e *Error) Message() string   { return e.message }
func (e *Error) Span() syntax.Span { return e.span }

func errNotPascalCase(res *syntax.Resource) error {
	return &Error{
		code:    3000,
		message: fmt.Sprintf("resource name %q is not PascalCase", res.Name),
		span:    res.Span,
	}
}

func errDuplicateResourceName(res *syntax.Resource) error {
	return &Error{
		code:    3001,
		message: fmt.Sprintf("duplicate resource name %q", res.Name),
		span:    res.Span,
	}
}

func errDuplicateFieldName(res *syntax.Resource, field *syntax.Field) error {
	return &Error{
		code:    3002,
		message: fmt.Sprintf("duplicate field name %q in resource %q", field.Name, res.Name),
		span:    field.Span,
	}
}

func errUndefinedType(res *syntax.Resource, field *syntax.Field, name string) error {
	return &Error{
		code:    4000,
		message: fmt.Sprintf("undefined type: %s (field %q of resource %q)", name, field.Name, res.Name),
		span:    field.Type.Span,
	}
}

func errInvalidPrimitive(span syntax.Span, name string) error {
	return &Error{
		code:    4001,
		message: fmt.Sprintf("invalid primitive type name: %s", name),
		span:    span,
	}
}

func errCycle(path []string) error {
	return &Error{
		code:    5000,
		message: fmt.Sprintf("dependency cycle: %s", strings.Join(path, " → ")),
	}
}
