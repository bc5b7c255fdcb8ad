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

package codegen

import (
	"fmt"
	"strings"

	"go.rsc-lang.dev/rsc/ir"
)

const rustHeader = "// Code generated by the rsc schema compiler. DO NOT EDIT.\n\n"

// GenerateRustServer emits the server builder/encoder artifact: one
// struct, a zero constructor, fluent setters, and an encode method
// per IR resource, in declaration order. The encoding performed by
// encode() must stay bit-identical to the §4.6 wire form; see
// codec.EncodeResource for the reference implementation both share.
func GenerateRustServer(prog *ir.Program) string {
	var out strings.Builder
	out.WriteString(rustHeader)

	for _, res := range prog.Resources {
		writeRustStruct(&out, res, prog)
	}
	return out.String()
}

func writeRustStruct(out *strings.Builder, res *ir.Resource, prog *ir.Program) {
	fmt.Fprintf(out, "#[derive(Clone, Debug, Default)]\npub struct %s {\n", res.Name)
	for _, field := range res.Fields {
		fmt.Fprintf(out, "    %s: %s,\n", field.Name, rustFieldType(field, prog))
	}
	out.WriteString("}\n\n")

	fmt.Fprintf(out, "impl %s {\n", res.Name)
	out.WriteString("    pub fn new() -> Self {\n        Self::default()\n    }\n\n")

	for _, field := range res.Fields {
		fieldType := rustFieldType(field, prog)
		fmt.Fprintf(out, "    pub fn %s(mut self, value: %s) -> Self {\n", field.Name, fieldType)
		fmt.Fprintf(out, "        self.%s = value;\n        self\n    }\n\n", field.Name)
	}

	out.WriteString("    pub fn encode(&self) -> Vec<u8> {\n        let mut buf: Vec<u8> = Vec::new();\n")
	for _, field := range res.Fields {
		writeRustFieldEncode(out, field, prog)
	}
	out.WriteString("        buf\n    }\n")
	out.WriteString("}\n\n")
}

func writeRustFieldEncode(out *strings.Builder, field *ir.Field, prog *ir.Program) {
	access := "self." + field.Name
	if field.Optional {
		fmt.Fprintf(out, "        match &%s {\n", access)
		out.WriteString("            None => { buf.push(0x00); }\n")
		out.WriteString("            Some(v) => {\n                buf.push(0x01);\n")
		writeRustValueEncode(out, "v", field.Type, prog, field.Nullable, "                ")
		out.WriteString("            }\n        }\n")
		return
	}
	writeRustValueEncode(out, "(&"+access+")", field.Type, prog, field.Nullable, "        ")
}

func writeRustValueEncode(out *strings.Builder, expr string, t *ir.Type, prog *ir.Program, nullable bool, indent string) {
	if nullable {
		fmt.Fprintf(out, "%smatch %s {\n", indent, expr)
		fmt.Fprintf(out, "%s    None => { buf.push(0x00); }\n", indent)
		fmt.Fprintf(out, "%s    Some(v) => {\n%s        buf.push(0x01);\n", indent, indent)
		writeRustTypeEncode(out, "v", t, prog, indent+"        ")
		fmt.Fprintf(out, "%s    }\n%s}\n", indent, indent)
		return
	}
	writeRustTypeEncode(out, expr, t, prog, indent)
}

func writeRustTypeEncode(out *strings.Builder, expr string, t *ir.Type, prog *ir.Program, indent string) {
	switch t.Kind {
	case ir.KindPrimitive:
		switch t.Name {
		case "string":
			fmt.Fprintf(out, "%sbuf.extend_from_slice(&(%s.len() as u32).to_le_bytes());\n", indent, expr)
			fmt.Fprintf(out, "%sbuf.extend_from_slice(%s.as_bytes());\n", indent, expr)
		case "number":
			fmt.Fprintf(out, "%sbuf.extend_from_slice(&(%s).to_le_bytes());\n", indent, expr)
		case "bool":
			fmt.Fprintf(out, "%sbuf.push(if *%s { 0x01 } else { 0x00 });\n", indent, expr)
		}
	case ir.KindList:
		fmt.Fprintf(out, "%sbuf.extend_from_slice(&(%s.len() as u32).to_le_bytes());\n", indent, expr)
		fmt.Fprintf(out, "%sfor item in %s.iter() {\n", indent, expr)
		writeRustTypeEncode(out, "item", t.Elem, prog, indent+"    ")
		fmt.Fprintf(out, "%s}\n", indent)
	case ir.KindResourceRef:
		fmt.Fprintf(out, "%sbuf.extend_from_slice(&%s.encode());\n", indent, expr)
	}
}

func rustFieldType(field *ir.Field, prog *ir.Program) string {
	base := rustTypeName(field.Type, prog)
	if field.Nullable {
		base = "Option<" + base + ">"
	}
	if field.Optional {
		base = "Option<" + base + ">"
	}
	return base
}

func rustTypeName(t *ir.Type, prog *ir.Program) string {
	switch t.Kind {
	case ir.KindPrimitive:
		switch t.Name {
		case "string":
			return "String"
		case "number":
			return "i64"
		case "bool":
			return "bool"
		}
	case ir.KindList:
		return "Vec<" + rustTypeName(t.Elem, prog) + ">"
	case ir.KindResourceRef:
		return prog.ResourceByIndex(t.Ref).Name
	}
	return "()"
}
