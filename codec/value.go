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

// Package codec implements the specification-level binary wire format:
// a value domain independent of source code, and an encoder that maps
// (Value, ir.Type) pairs to bytes under the rules fixed by the schema
// compiler's IR.
package codec

// Kind tags a runtime Value's variant.
type Kind uint8

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindList
	KindResource
	KindNull
	KindAbsent
)

// Value is the runtime value domain the codec encodes and decodes.
// Null and Absent are sentinels, not general values: they only ever
// appear where a field's nullable/optional attribute permits them.
type Value struct {
	Kind     Kind
	Str      string
	Num      int64
	Bool     bool
	List     []Value
	Resource []FieldValue
}

// FieldValue pairs a resource field's name with its value and the
// field's optional/nullable attributes. The decoder fills in all four.
// The encoder matches fields by position, not by Name, and decides
// whether Absent or Null is permitted from the ir.Field it encodes
// against, not from these flags.
type FieldValue struct {
	Name     string
	Value    Value
	Optional bool
	Nullable bool
}

func String(s string) Value          { return Value{Kind: KindString, Str: s} }
func Number(n int64) Value           { return Value{Kind: KindNumber, Num: n} }
func Bool(b bool) Value              { return Value{Kind: KindBool, Bool: b} }
func List(items ...Value) Value      { return Value{Kind: KindList, List: items} }
func Resource(fields ...FieldValue) Value {
	return Value{Kind: KindResource, Resource: fields}
}
func Null() Value   { return Value{Kind: KindNull} }
func Absent() Value { return Value{Kind: KindAbsent} }
