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

// Package ir defines the resolved, index-based representation that
// the codec and code generator consume, plus the validator, resolver,
// and cycle detector that produce it from a syntax.Program.
package ir

import "go.rsc-lang.dev/rsc/syntax"

// Kind distinguishes the three IR type variants.
type Kind uint8

const (
	KindPrimitive Kind = iota
	KindResourceRef
	KindList
)

// Type is an IR type: Primitive(name), ResourceRef(index), or
// List(Type). Every ResourceRef index is guaranteed, by construction,
// to be a valid position in the owning Program's Resources slice.
type Type struct {
	Kind Kind
	Name string // set when Kind == KindPrimitive
	Ref  int    // set when Kind == KindResourceRef
	Elem *Type  // set when Kind == KindList
}

// Field is the resolved counterpart of syntax.Field: same shape, but
// with an IR Type in place of the AST type.
type Field struct {
	Name     string
	Type     *Type
	Nullable bool
	Optional bool
	Default  *syntax.Literal
	Index    int
}

// Resource is structurally parallel to syntax.Resource.
type Resource struct {
	Name   string
	Fields []*Field
}

// Program holds the full resolved schema. Resource order is identical
// to the AST's declaration order, so ResourceRef(i) always names the
// i-th declared resource.
type Program struct {
	Resources []*Resource
}

// ResourceByIndex returns the resource at the given declaration index.
// It panics if index is out of range, which the resolver's invariant
// guarantees never happens for a ResourceRef produced by this package.
func (p *Program) ResourceByIndex(index int) *Resource {
	return p.Resources[index]
}

// ResourceIndexByName returns the declaration index of the named
// resource, or -1 if no resource with that name exists.
func (p *Program) ResourceIndexByName(name string) int {
	for i, res := range p.Resources {
		if res.Name == name {
			return i
		}
	}
	return -1
}
