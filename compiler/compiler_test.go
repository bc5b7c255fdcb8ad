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

package compiler_test

import (
	"strings"
	"testing"

	"go.rsc-lang.dev/rsc/compiler"
	"go.rsc-lang.dev/rsc/internal/testutil"
)

func TestCompileSimpleAccept(t *testing.T) {
	result, err := compiler.Compile([]byte(
		`resource User { string name string email optional number age bool active }`,
	))
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 1, len(result.IR.Resources))
	testutil.ExpectEq(t, 4, len(result.IR.Resources[0].Fields))
	testutil.ExpectTrue(t, result.IR.Resources[0].Fields[2].Optional)
	testutil.ExpectTrue(t, strings.Contains(result.ClientSource, "export interface User"))
	testutil.ExpectTrue(t, strings.Contains(result.ServerSource, "pub struct User"))
	testutil.ExpectTrue(t, result.ID.String() != "")
}

func TestCompileUndefinedType(t *testing.T) {
	_, err := compiler.Compile([]byte(`resource X { Unknown y }`))
	testutil.AssertError(t, err)
	testutil.ExpectMatch(t, "Unknown", err.Error())
}

func TestCompileSelfCycle(t *testing.T) {
	_, err := compiler.Compile([]byte(
		`resource TreeNode { string value list TreeNode children }`,
	))
	testutil.AssertError(t, err)
	testutil.ExpectMatch(t, `TreeNode → TreeNode`, err.Error())
}

func TestCompileMutualCycle(t *testing.T) {
	_, err := compiler.Compile([]byte(`resource A { B b } resource B { A a }`))
	testutil.AssertError(t, err)
	testutil.ExpectMatch(t, `A → B → A`, err.Error())
}

func TestCompileWithoutClient(t *testing.T) {
	result, err := compiler.Compile([]byte(`resource X { string y }`), compiler.WithoutClient())
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "", result.ClientSource)
	testutil.ExpectTrue(t, result.ServerSource != "")
}
