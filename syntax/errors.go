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

// Error is a compile error carrying a numeric code, a human-readable
// message, and the source span where the fault was found. Code ranges
// are partitioned by compiler phase: 1000s lexical, 2000s syntactic.
// Later phases (ir, codec) define their own ranges in the same shape.
type Error struct {
	code    uint32
	message string
	span    Span
}

func (e *Error) Error() string {
	return fmt.Sprintf("E%d: %s", e.code, e.message)
}

func (e *Error) Code() uint32   { return e.code }
func (e *Error) Message() string { return e.message }
func (e *Error) Span() Span     { return e.span }

func errSourceTooLong(length uint32) error {
	return &Error{
		code:    1000,
		message: fmt.Sprintf("source is too long (%d bytes)", length),
	}
}

func errInvalidUTF8(offset uint32) error {
	return &Error{
		code:    1001,
		message: "source is not valid UTF-8",
		span:    NewSpan(offset, 0),
	}
}

func errUnexpectedCharacter(offset uint32, r rune) error {
	return &Error{
		code:    1002,
		message: fmt.Sprintf("unexpected character %q", r),
		span:    NewSpan(offset, 1),
	}
}

func errTextLitUnterminated(span Span) error {
	return &Error{
		code:    1003,
		message: "unterminated string literal",
		span:    span,
	}
}

func errTextLitContainsNewline(span Span) error {
	return &Error{
		code:    1004,
		message: "string literal contains a newline",
		span:    span,
	}
}

func errExpectedToken(span Span, want TokenKind, gotKind TokenKind) error {
	return &Error{
		code:    2000,
		message: fmt.Sprintf("expected %s, got %s", want, gotKind),
		span:    span,
	}
}

func errExpectedKeyword(span Span, want string) error {
	return &Error{
		code:    2001,
		message: fmt.Sprintf("expected keyword %q", want),
		span:    span,
	}
}

func errExpectedDeclaration(span Span) error {
	return &Error{
		code:    2002,
		message: "expected a 'resource' declaration",
		span:    span,
	}
}

func errExpectedType(span Span) error {
	return &Error{
		code:    2003,
		message: "expected a type (string, number, bool, list, or a resource name)",
		span:    span,
	}
}

func errExpectedLiteral(span Span) error {
	return &Error{
		code:    2004,
		message: "expected a literal value (integer, true, false, or a string)",
		span:    span,
	}
}

func errDuplicateAttribute(span Span, name string) error {
	return &Error{
		code:    2005,
		message: fmt.Sprintf("duplicate %q attribute on field", name),
		span:    span,
	}
}

func errIntLitInvalid(span Span) error {
	return &Error{
		code:    2006,
		message: "integer literal out of range",
		span:    span,
	}
}
