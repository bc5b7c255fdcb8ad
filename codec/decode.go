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

import (
	"encoding/binary"
	"fmt"

	"go.rsc-lang.dev/rsc/ir"
)

// DecodeResource is the inverse of EncodeResource: it reads the field
// encodings of the resource at resIndex, in declared order, from the
// front of data and returns the decoded value plus the number of
// bytes consumed.
func DecodeResource(data []byte, resIndex int, prog *ir.Program) (Value, int, error) {
	res := prog.ResourceByIndex(resIndex)
	var offset int
	fields := make([]FieldValue, len(res.Fields))
	for i, field := range res.Fields {
		fv, n, err := DecodeField(data[offset:], field, prog)
		if err != nil {
			return Value{}, 0, err
		}
		fields[i] = fv
		offset += n
	}
	return Value{Kind: KindResource, Resource: fields}, offset, nil
}

// DecodeField is the inverse of EncodeField.
func DecodeField(data []byte, field *ir.Field, prog *ir.Program) (FieldValue, int, error) {
	offset := 0

	if field.Optional {
		if len(data) < 1 {
			return FieldValue{}, 0, fmt.Errorf("truncated input decoding optional prefix for field %q", field.Name)
		}
		present := data[0]
		offset++
		if present == 0x00 {
			return FieldValue{Name: field.Name, Value: Absent(), Optional: true, Nullable: field.Nullable}, offset, nil
		}
	}

	if field.Nullable {
		if len(data) < offset+1 {
			return FieldValue{}, 0, fmt.Errorf("truncated input decoding nullable prefix for field %q", field.Name)
		}
		present := data[offset]
		offset++
		if present == 0x00 {
			return FieldValue{Name: field.Name, Value: Null(), Optional: field.Optional, Nullable: true}, offset, nil
		}
	}

	value, n, err := DecodeValue(data[offset:], field.Type, prog)
	if err != nil {
		return FieldValue{}, 0, err
	}
	offset += n
	return FieldValue{Name: field.Name, Value: value, Optional: field.Optional, Nullable: field.Nullable}, offset, nil
}

// DecodeValue is the inverse of EncodeValue.
func DecodeValue(data []byte, t *ir.Type, prog *ir.Program) (Value, int, error) {
	switch t.Kind {
	case ir.KindPrimitive:
		return decodePrimitive(data, t.Name)
	case ir.KindList:
		if len(data) < 4 {
			return Value{}, 0, fmt.Errorf("truncated input decoding list length")
		}
		count := binary.LittleEndian.Uint32(data[:4])
		offset := 4
		items := make([]Value, count)
		for i := uint32(0); i < count; i++ {
			elem, n, err := DecodeValue(data[offset:], t.Elem, prog)
			if err != nil {
				return Value{}, 0, err
			}
			items[i] = elem
			offset += n
		}
		return Value{Kind: KindList, List: items}, offset, nil
	case ir.KindResourceRef:
		return DecodeResource(data, t.Ref, prog)
	default:
		return Value{}, 0, fmt.Errorf("unknown IR type kind %d", t.Kind)
	}
}

func decodePrimitive(data []byte, name string) (Value, int, error) {
	switch name {
	case "string":
		if len(data) < 4 {
			return Value{}, 0, fmt.Errorf("truncated input decoding string length")
		}
		length := binary.LittleEndian.Uint32(data[:4])
		if uint32(len(data)-4) < length {
			return Value{}, 0, fmt.Errorf("truncated input decoding string bytes")
		}
		return Value{Kind: KindString, Str: string(data[4 : 4+length])}, int(4 + length), nil
	case "number":
		if len(data) < 8 {
			return Value{}, 0, fmt.Errorf("truncated input decoding number")
		}
		return Value{Kind: KindNumber, Num: int64(binary.LittleEndian.Uint64(data[:8]))}, 8, nil
	case "bool":
		if len(data) < 1 {
			return Value{}, 0, fmt.Errorf("truncated input decoding bool")
		}
		return Value{Kind: KindBool, Bool: data[0] != 0x00}, 1, nil
	default:
		return Value{}, 0, fmt.Errorf("unknown primitive type name %q", name)
	}
}
