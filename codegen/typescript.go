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

// Package codegen walks a validated, cycle-free ir.Program and emits
// source for the two generated artifacts required by §4.7: a
// TypeScript client decoder and a Rust server builder/encoder. Both
// generators share nothing but the IR; each is free to choose its own
// naming and layout, matched to how a library of this size would
// actually be templated by hand in its target language.
package codegen

import (
	"fmt"
	"strings"

	"go.rsc-lang.dev/rsc/ir"
)

const tsHeader = "// Code generated by the rsc schema compiler. DO NOT EDIT.\n\n"

const tsBinaryReader = `class BinaryReader {
  private view: DataView;
  private pos: number;

  constructor(buf: Uint8Array) {
    this.view = new DataView(buf.buffer, buf.byteOffset, buf.byteLength);
    this.pos = 0;
  }

  readString(): string {
    const len = this.view.getUint32(this.pos, true);
    this.pos += 4;
    const bytes = new Uint8Array(this.view.buffer, this.view.byteOffset + this.pos, len);
    this.pos += len;
    return new TextDecoder().decode(bytes);
  }

  readNumber(): number {
    const lo = this.view.getUint32(this.pos, true);
    const hi = this.view.getInt32(this.pos + 4, true);
    this.pos += 8;
    return hi * 4294967296 + lo;
  }

  readBool(): boolean {
    const v = this.view.getUint8(this.pos);
    this.pos += 1;
    return v !== 0;
  }

  readLength(): number {
    const v = this.view.getUint32(this.pos, true);
    this.pos += 4;
    return v;
  }

  readByte(): number {
    const v = this.view.getUint8(this.pos);
    this.pos += 1;
    return v;
  }
}

`

// GenerateTypeScriptClient emits the client decoder artifact: one
// interface, one free decode function, and one decoder class per IR
// resource, in declaration order, sharing the BinaryReader helper
// above. The free decode function takes the reader directly (rather
// than a class method reading `this.reader`) so that a resource
// nested inside another decodes from the same cursor instead of
// re-reading from the start of the buffer.
func GenerateTypeScriptClient(prog *ir.Program) string {
	var out strings.Builder
	out.WriteString(tsHeader)
	out.WriteString(tsBinaryReader)

	for _, res := range prog.Resources {
		writeTSInterface(&out, res, prog)
		writeTSDecodeFunc(&out, res, prog)
		writeTSDecoder(&out, res, prog)
	}
	return out.String()
}

func writeTSInterface(out *strings.Builder, res *ir.Resource, prog *ir.Program) {
	fmt.Fprintf(out, "export interface %s {\n", res.Name)
	for _, field := range res.Fields {
		fmt.Fprintf(out, "  %s: %s;\n", field.Name, tsFieldType(field, prog))
	}
	out.WriteString("}\n\n")
}

// writeTSDecodeFunc emits a free function that reads exactly one
// instance of res, in field-declaration order, off reader. It is the
// single place nested ResourceRef decoding calls back into.
func writeTSDecodeFunc(out *strings.Builder, res *ir.Resource, prog *ir.Program) {
	fmt.Fprintf(out, "function decode%s(reader: BinaryReader): %s {\n", res.Name, res.Name)
	for _, field := range res.Fields {
		writeTSFieldDecode(out, field, prog)
	}
	out.WriteString("  return {\n")
	for _, field := range res.Fields {
		fmt.Fprintf(out, "    %s: %s,\n", field.Name, field.Name)
	}
	out.WriteString("  };\n")
	out.WriteString("}\n\n")
}

func writeTSDecoder(out *strings.Builder, res *ir.Resource, prog *ir.Program) {
	fmt.Fprintf(out, "export class %sDecoder {\n", res.Name)
	out.WriteString("  private value: " + res.Name + ";\n\n")
	out.WriteString("  constructor(buf: Uint8Array) {\n")
	fmt.Fprintf(out, "    this.value = decode%s(new BinaryReader(buf));\n", res.Name)
	out.WriteString("  }\n\n")

	for _, field := range res.Fields {
		fmt.Fprintf(out, "  get %s(): %s {\n", field.Name, tsFieldType(field, prog))
		fmt.Fprintf(out, "    return this.value.%s;\n", field.Name)
		out.WriteString("  }\n\n")
	}

	fmt.Fprintf(out, "  toJSON(): %s {\n", res.Name)
	out.WriteString("    return this.value;\n")
	out.WriteString("  }\n")
	out.WriteString("}\n\n")
}

// writeTSFieldDecode emits the statements that bind a local variable
// named after field, applying the optional/nullable framing outside
// the base type per the wire table before delegating to tsTypeRead.
func writeTSFieldDecode(out *strings.Builder, field *ir.Field, prog *ir.Program) {
	fieldType := tsFieldType(field, prog)
	fmt.Fprintf(out, "  let %s: %s;\n", field.Name, fieldType)

	closeBraces := 0
	if field.Optional {
		fmt.Fprintf(out, "  if (reader.readByte() === 0) {\n    %s = undefined;\n  } else {\n", field.Name)
		closeBraces++
	}
	if field.Nullable {
		fmt.Fprintf(out, "  if (reader.readByte() === 0) {\n    %s = null;\n  } else {\n", field.Name)
		closeBraces++
	}
	fmt.Fprintf(out, "  %s = %s;\n", field.Name, tsTypeRead(field.Type, prog))
	for i := 0; i < closeBraces; i++ {
		out.WriteString("  }\n")
	}
}

func tsTypeRead(t *ir.Type, prog *ir.Program) string {
	switch t.Kind {
	case ir.KindPrimitive:
		switch t.Name {
		case "string":
			return "reader.readString()"
		case "number":
			return "reader.readNumber()"
		case "bool":
			return "reader.readBool()"
		}
	case ir.KindList:
		return fmt.Sprintf("(() => { const n = reader.readLength(); const out: %s[] = []; for (let i = 0; i < n; i++) { out.push(%s); } return out; })()",
			tsTypeName(t.Elem, prog), tsTypeRead(t.Elem, prog))
	case ir.KindResourceRef:
		return fmt.Sprintf("decode%s(reader)", prog.ResourceByIndex(t.Ref).Name)
	}
	return "undefined"
}

func tsFieldType(field *ir.Field, prog *ir.Program) string {
	base := tsTypeName(field.Type, prog)
	if field.Optional {
		base += " | undefined"
	}
	if field.Nullable {
		base += " | null"
	}
	return base
}

func tsTypeName(t *ir.Type, prog *ir.Program) string {
	switch t.Kind {
	case ir.KindPrimitive:
		switch t.Name {
		case "string":
			return "string"
		case "number":
			return "number"
		case "bool":
			return "boolean"
		}
	case ir.KindList:
		return tsTypeName(t.Elem, prog) + "[]"
	case ir.KindResourceRef:
		return prog.ResourceByIndex(t.Ref).Name
	}
	return "unknown"
}
