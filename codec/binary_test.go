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

package codec_test

import (
	"testing"

	"go.rsc-lang.dev/rsc/codec"
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

func TestEncodeListOfNamed(t *testing.T) {
	irProg := compileToIR(t, `resource User { string name } resource Users { list User users }`)

	usersValue := codec.Resource(codec.FieldValue{
		Name: "users",
		Value: codec.List(
			codec.Resource(codec.FieldValue{Name: "name", Value: codec.String("A")}),
			codec.Resource(codec.FieldValue{Name: "name", Value: codec.String("B")}),
		),
	})

	got, err := codec.EncodeResource(usersValue, irProg.ResourceIndexByName("Users"), irProg)
	testutil.AssertNoError(t, err)

	want := []byte{
		0x02, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00, 0x41,
		0x01, 0x00, 0x00, 0x00, 0x42,
	}
	testutil.ExpectBytesEq(t, want, got)
}

func TestEncodeWireRoundTripScenario(t *testing.T) {
	irProg := compileToIR(t, `resource User {
		string name
		string email
		optional number age
		bool active
	}`)

	value := codec.Resource(
		codec.FieldValue{Name: "name", Value: codec.String("Alice")},
		codec.FieldValue{Name: "email", Value: codec.String("alice@example.com")},
		codec.FieldValue{Name: "age", Value: codec.Number(30), Optional: true},
		codec.FieldValue{Name: "active", Value: codec.Bool(true)},
	)

	got, err := codec.EncodeResource(value, irProg.ResourceIndexByName("User"), irProg)
	testutil.AssertNoError(t, err)

	want := []byte{
		0x05, 0x00, 0x00, 0x00, 0x41, 0x6C, 0x69, 0x63, 0x65,
		0x11, 0x00, 0x00, 0x00, 0x61, 0x6C, 0x69, 0x63, 0x65, 0x40,
		0x65, 0x78, 0x61, 0x6D, 0x70, 0x6C, 0x65, 0x2E, 0x63, 0x6F, 0x6D,
		0x01,
		0x1E, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x01,
	}
	testutil.ExpectBytesEq(t, want, got)

	decoded, n, err := codec.DecodeResource(got, irProg.ResourceIndexByName("User"), irProg)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, len(got), n)
	testutil.ExpectEq(t, "Alice", decoded.Resource[0].Value.Str)
	testutil.ExpectEq(t, "alice@example.com", decoded.Resource[1].Value.Str)
	testutil.ExpectEq(t, int64(30), decoded.Resource[2].Value.Num)
	testutil.ExpectTrue(t, decoded.Resource[3].Value.Bool)
}

func TestEncodeEmptyListAndString(t *testing.T) {
	irProg := compileToIR(t, `resource X { list number ns string s }`)
	value := codec.Resource(
		codec.FieldValue{Name: "ns", Value: codec.List()},
		codec.FieldValue{Name: "s", Value: codec.String("")},
	)
	got, err := codec.EncodeResource(value, 0, irProg)
	testutil.AssertNoError(t, err)
	testutil.ExpectBytesEq(t, []byte{0, 0, 0, 0, 0, 0, 0, 0}, got)
}

func TestEncodeZeroFieldResource(t *testing.T) {
	irProg := compileToIR(t, `resource Empty { }`)
	got, err := codec.EncodeResource(codec.Resource(), 0, irProg)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 0, len(got))
}

func TestEncodeOptionalNullableFraming(t *testing.T) {
	irProg := compileToIR(t, `resource X { optional nullable number n }`)

	absent, err := codec.EncodeResource(codec.Resource(codec.FieldValue{
		Name: "n", Value: codec.Absent(), Optional: true, Nullable: true,
	}), 0, irProg)
	testutil.AssertNoError(t, err)
	testutil.ExpectBytesEq(t, []byte{0x00}, absent)

	presentNull, err := codec.EncodeResource(codec.Resource(codec.FieldValue{
		Name: "n", Value: codec.Null(), Optional: true, Nullable: true,
	}), 0, irProg)
	testutil.AssertNoError(t, err)
	testutil.ExpectBytesEq(t, []byte{0x01, 0x00}, presentNull)
}

func TestEncodeAbsentOnNonOptionalRejected(t *testing.T) {
	irProg := compileToIR(t, `resource X { number n }`)
	_, err := codec.EncodeResource(codec.Resource(codec.FieldValue{
		Name: "n", Value: codec.Absent(),
	}), 0, irProg)
	testutil.AssertError(t, err)
}
