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

package codegen_test

import (
	"strings"
	"testing"

	"go.rsc-lang.dev/rsc/codegen"
	"go.rsc-lang.dev/rsc/internal/testutil"
	"go.rsc-lang.dev/rsc/ir"
	"go.rsc-lang.dev/rsc/syntax"
)

func compileToIR(t *testing.T, src string) *ir.Program {
	t.Helper()
	prog, err := syntax.Parse([]byte(src))
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, ir.Validate(prog))
	irProg, err := ir.Resolve(prog)
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, ir.DetectCycles(irProg))
	return irProg
}

func TestGenerateTypeScriptClientFieldOrder(t *testing.T) {
	irProg := compileToIR(t, `resource User {
		string name
		string email
		optional number age
		bool active
	}`)

	ts := codegen.GenerateTypeScriptClient(irProg)
	testutil.ExpectTrue(t, strings.HasPrefix(ts, "// Code generated"))
	testutil.ExpectTrue(t, strings.Contains(ts, "export interface User {"))
	testutil.ExpectTrue(t, strings.Contains(ts, "export class UserDecoder {"))

	nameIdx := strings.Index(ts, "name: string")
	emailIdx := strings.Index(ts, "email: string")
	ageIdx := strings.Index(ts, "age: number")
	activeIdx := strings.Index(ts, "active: boolean")
	testutil.ExpectTrue(t, nameIdx >= 0 && nameIdx < emailIdx)
	testutil.ExpectTrue(t, emailIdx < ageIdx)
	testutil.ExpectTrue(t, ageIdx < activeIdx)
}

func TestGenerateRustServerFieldOrder(t *testing.T) {
	irProg := compileToIR(t, `resource User {
		string name
		string email
		optional number age
		bool active
	}`)

	rs := codegen.GenerateRustServer(irProg)
	testutil.ExpectTrue(t, strings.Contains(rs, "pub struct User {"))
	testutil.ExpectTrue(t, strings.Contains(rs, "name: String,"))
	testutil.ExpectTrue(t, strings.Contains(rs, "age: Option<i64>,"))
	testutil.ExpectTrue(t, strings.Contains(rs, "pub fn encode(&self) -> Vec<u8> {"))
}

func TestGenerateResourceRefMapping(t *testing.T) {
	irProg := compileToIR(t, `resource User { string name } resource Users { list User users }`)

	ts := codegen.GenerateTypeScriptClient(irProg)
	testutil.ExpectTrue(t, strings.Contains(ts, "users: User[];"))

	rs := codegen.GenerateRustServer(irProg)
	testutil.ExpectTrue(t, strings.Contains(rs, "users: Vec<User>,"))
}
