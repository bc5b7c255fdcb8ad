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

package codec

import "fmt"

// Error is a runtime encoding error: value shape did not match the
// expected IR type. Code range 6000s continues the partitioning from
// package syntax/ir.
type Error struct {
	code    uint32
	message string
}

func (e *Error) Error() string   { return fmt.Sprintf("E%d: %s", e.code, e.message) }
func (e *Error) Code() uint32    { return e.code }
func (e *Error) Message() string { return e.message }

func errKindMismatch(wantKind, fieldName string) error {
	return &Error{
		code:    6000,
		message: fmt.Sprintf("value does not match expected type %s (field %q)", wantKind, fieldName),
	}
}

func errFieldCountMismatch(resourceName string, want, got int) error {
	return &Error{
		code:    6001,
		message: fmt.Sprintf("resource %q expects %d fields, got %d", resourceName, want, got),
	}
}

func errListElementMismatch(fieldName string) error {
	return &Error{
		code:    6002,
		message: fmt.Sprintf("list element does not match declared element type (field %q)", fieldName),
	}
}

func errAbsentNotAllowed(fieldName string) error {
	return &Error{
		code:    6003,
		message: fmt.Sprintf("field %q is Absent but is not optional", fieldName),
	}
}

func errNullNotAllowed(fieldName string) error {
	return &Error{
		code:    6004,
		message: fmt.Sprintf("field %q is Null but is not nullable", fieldName),
	}
}
