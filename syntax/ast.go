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

// TypeKind distinguishes the three AST type variants.
type TypeKind uint8

const (
	TypePrimitive TypeKind = iota
	TypeNamed
	TypeList
)

// Primitive names recognized by the type grammar.
const (
	PrimitiveString = "string"
	PrimitiveNumber = "number"
	PrimitiveBool   = "bool"
)

// Type is an AST type: Primitive(name), Named(identifier), or
// List(Type). Construction is bottom-up so no ownership cycles are
// possible.
type Type struct {
	Kind TypeKind
	Name string // set when Kind == TypePrimitive || Kind == TypeNamed
	Elem *Type  // set when Kind == TypeList
	Span Span
}

// LiteralKind distinguishes the literal value variants used by
// default(...) attributes.
type LiteralKind uint8

const (
	LiteralInt LiteralKind = iota
	LiteralBool
	LiteralString
)

type Literal struct {
	Kind   LiteralKind
	Int    int64
	Bool   bool
	String string
	Span   Span
}

// Field is an ordered, named, typed slot of a Resource.
type Field struct {
	Name     string
	Type     *Type
	Nullable bool
	Optional bool
	Default  *Literal // nil unless a default(...) attribute was present
	Index    int      // zero-based position within the enclosing resource
	Span     Span
}

// Resource is a named, ordered collection of fields.
type Resource struct {
	Name   string
	Fields []*Field
	Span   Span
}

// Program is the ordered top-level list of resource declarations.
// Declaration order is significant: it fixes ResourceRef indices.
type Program struct {
	Resources []*Resource
}
