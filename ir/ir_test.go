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

package ir_test

import (
	"testing"

	"go.rsc-lang.dev/rsc/internal/testutil"
	"go.rsc-lang.dev/rsc/ir"
	"go.rsc-lang.dev/rsc/syntax"
)

func mustParse(t *testing.T, src string) *syntax.Program {
	t.Helper()
	prog, err := syntax.Parse([]byte(src))
	testutil.AssertNoError(t, err)
	return prog
}

func TestValidateRejectsLowercaseResourceName(t *testing.T) {
	prog := mustParse(t, `resource user { string name }`)
	err := ir.Validate(prog)
	testutil.AssertError(t, err)
}

func TestValidateRejectsDuplicateResourceName(t *testing.T) {
	prog := mustParse(t, `resource A { string x } resource A { string y }`)
	err := ir.Validate(prog)
	testutil.AssertError(t, err)
}

func TestValidateRejectsDuplicateFieldName(t *testing.T) {
	prog := mustParse(t, `resource A { string x string x }`)
	err := ir.Validate(prog)
	testutil.AssertError(t, err)
}

func TestResolveUndefinedType(t *testing.T) {
	prog := mustParse(t, `resource X { Unknown y }`)
	testutil.AssertNoError(t, ir.Validate(prog))
	_, err := ir.Resolve(prog)
	testutil.AssertError(t, err)
	testutil.ExpectMatch(t, "Unknown", err.Error())
}

func TestResolveListOfNamed(t *testing.T) {
	prog := mustParse(t, `resource User { string name } resource Users { list User users }`)
	testutil.AssertNoError(t, ir.Validate(prog))
	irProg, err := ir.Resolve(prog)
	testutil.AssertNoError(t, err)

	field := irProg.Resources[1].Fields[0]
	testutil.ExpectEq(t, ir.KindList, field.Type.Kind)
	testutil.ExpectEq(t, ir.KindResourceRef, field.Type.Elem.Kind)
	testutil.ExpectEq(t, 0, field.Type.Elem.Ref)
	testutil.ExpectEq(t, "User", irProg.ResourceByIndex(0).Name)
	testutil.ExpectEq(t, 0, irProg.ResourceIndexByName("User"))
	testutil.ExpectEq(t, -1, irProg.ResourceIndexByName("Nope"))
}

func compileToIR(t *testing.T, src string) *ir.Program {
	t.Helper()
	prog := mustParse(t, src)
	testutil.AssertNoError(t, ir.Validate(prog))
	irProg, err := ir.Resolve(prog)
	testutil.AssertNoError(t, err)
	return irProg
}

func TestDetectCyclesAccepsDAG(t *testing.T) {
	irProg := compileToIR(t, `resource User { string name } resource Users { list User users }`)
	testutil.AssertNoError(t, ir.DetectCycles(irProg))
}

func TestDetectCyclesSelfCycle(t *testing.T) {
	irProg := compileToIR(t, `resource TreeNode { string value list TreeNode children }`)
	err := ir.DetectCycles(irProg)
	testutil.AssertError(t, err)
	testutil.ExpectMatch(t, `TreeNode → TreeNode`, err.Error())
}

func TestDetectCyclesMutualCycle(t *testing.T) {
	irProg := compileToIR(t, `resource A { B b } resource B { A a }`)
	err := ir.DetectCycles(irProg)
	testutil.AssertError(t, err)
	testutil.ExpectMatch(t, `A → B → A`, err.Error())
}
