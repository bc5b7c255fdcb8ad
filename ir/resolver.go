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

import "go.rsc-lang.dev/rsc/syntax"

// Resolve turns a validated AST program into an IR program by
// replacing every named-type reference with its resource's
// declaration index. It assumes Validate has already accepted prog;
// it does not re-detect naming violations, only undefined names.
func Resolve(prog *syntax.Program) (*Program, error) {
	index := make(map[string]int, len(prog.Resources))
	for i, res := range prog.Resources {
		// Duplicate names are impossible here given Validate's
		// guarantee; keep first-wins as a defensive fallback rather
		// than asserting, since resolution has no reason to fail on
		// state the validator already rejected.
		if _, exists := index[res.Name]; !exists {
			index[res.Name] = i
		}
	}

	out := &Program{Resources: make([]*Resource, len(prog.Resources))}
	for i, res := range prog.Resources {
		irRes := &Resource{Name: res.Name, Fields: make([]*Field, len(res.Fields))}
		for j, field := range res.Fields {
			irType, err := resolveType(res, field, field.Type, index)
			if err != nil {
				return nil, err
			}
			irRes.Fields[j] = &Field{
				Name:     field.Name,
				Type:     irType,
				Nullable: field.Nullable,
				Optional: field.Optional,
				Default:  field.Default,
				Index:    field.Index,
			}
		}
		out.Resources[i] = irRes
	}
	return out, nil
}

func resolveType(res *syntax.Resource, field *syntax.Field, t *syntax.Type, index map[string]int) (*Type, error) {
	switch t.Kind {
	case syntax.TypePrimitive:
		switch t.Name {
		case syntax.PrimitiveString, syntax.PrimitiveNumber, syntax.PrimitiveBool:
			return &Type{Kind: KindPrimitive, Name: t.Name}, nil
		default:
			return nil, errInvalidPrimitive(t.Span, t.Name)
		}
	case syntax.TypeNamed:
		resIndex, ok := index[t.Name]
		if !ok {
			return nil, errUndefinedType(res, field, t.Name)
		}
		return &Type{Kind: KindResourceRef, Ref: resIndex}, nil
	case syntax.TypeList:
		elem, err := resolveType(res, field, t.Elem, index)
		if err != nil {
			return nil, err
		}
		return &Type{Kind: KindList, Elem: elem}, nil
	default:
		return nil, errInvalidPrimitive(t.Span, t.Name)
	}
}
