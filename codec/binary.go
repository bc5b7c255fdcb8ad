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
	"bytes"
	"encoding/binary"
	"fmt"

	"go.rsc-lang.dev/rsc/ir"
)

// EncodeResource encodes value (which must be a Resource value) as
// the resource at resIndex in prog: the concatenation of its field
// encodings in declared order, with no length prefix and no trailer.
func EncodeResource(value Value, resIndex int, prog *ir.Program) ([]byte, error) {
	res := prog.ResourceByIndex(resIndex)
	if value.Kind != KindResource {
		return nil, errKindMismatch("resource", res.Name)
	}
	if len(value.Resource) != len(res.Fields) {
		return nil, errFieldCountMismatch(res.Name, len(res.Fields), len(value.Resource))
	}

	var buf bytes.Buffer
	for i, field := range res.Fields {
		fv := value.Resource[i]
		encoded, err := EncodeField(fv, field, prog)
		if err != nil {
			return nil, err
		}
		buf.Write(encoded)
	}
	return buf.Bytes(), nil
}

// EncodeField applies the optional/nullable framing of §4.6 around
// EncodeValue. The optional prefix, if present, comes first; the
// nullable prefix, if present, comes next; the value bytes follow
// only once both prefixes (as applicable) indicate presence.
func EncodeField(fv FieldValue, field *ir.Field, prog *ir.Program) ([]byte, error) {
	var buf bytes.Buffer

	if field.Optional {
		if fv.Value.Kind == KindAbsent {
			buf.WriteByte(0x00)
			return buf.Bytes(), nil
		}
		buf.WriteByte(0x01)
	} else if fv.Value.Kind == KindAbsent {
		return nil, errAbsentNotAllowed(field.Name)
	}

	if field.Nullable {
		if fv.Value.Kind == KindNull {
			buf.WriteByte(0x00)
			return buf.Bytes(), nil
		}
		buf.WriteByte(0x01)
	} else if fv.Value.Kind == KindNull {
		return nil, errNullNotAllowed(field.Name)
	}

	encoded, err := EncodeValue(fv.Value, field.Type, prog, field.Name)
	if err != nil {
		return nil, err
	}
	buf.Write(encoded)
	return buf.Bytes(), nil
}

// EncodeValue encodes value per the wire table in §4.6. fieldName is
// carried through only for error messages.
func EncodeValue(value Value, t *ir.Type, prog *ir.Program, fieldName string) ([]byte, error) {
	switch t.Kind {
	case ir.KindPrimitive:
		return encodePrimitive(value, t.Name, fieldName)
	case ir.KindList:
		if value.Kind != KindList {
			return nil, errKindMismatch("list", fieldName)
		}
		var buf bytes.Buffer
		var count [4]byte
		binary.LittleEndian.PutUint32(count[:], uint32(len(value.List)))
		buf.Write(count[:])
		for _, elem := range value.List {
			encoded, err := EncodeValue(elem, t.Elem, prog, fieldName)
			if err != nil {
				return nil, errListElementMismatch(fieldName)
			}
			buf.Write(encoded)
		}
		return buf.Bytes(), nil
	case ir.KindResourceRef:
		return EncodeResource(value, t.Ref, prog)
	default:
		return nil, fmt.Errorf("unknown IR type kind %d", t.Kind)
	}
}

func encodePrimitive(value Value, name, fieldName string) ([]byte, error) {
	switch name {
	case "string":
		if value.Kind != KindString {
			return nil, errKindMismatch("string", fieldName)
		}
		var buf bytes.Buffer
		var length [4]byte
		binary.LittleEndian.PutUint32(length[:], uint32(len(value.Str)))
		buf.Write(length[:])
		buf.WriteString(value.Str)
		return buf.Bytes(), nil
	case "number":
		if value.Kind != KindNumber {
			return nil, errKindMismatch("number", fieldName)
		}
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(value.Num))
		return buf[:], nil
	case "bool":
		if value.Kind != KindBool {
			return nil, errKindMismatch("bool", fieldName)
		}
		if value.Bool {
			return []byte{0x01}, nil
		}
		return []byte{0x00}, nil
	default:
		return nil, fmt.Errorf("unknown primitive type name %q", name)
	}
}
