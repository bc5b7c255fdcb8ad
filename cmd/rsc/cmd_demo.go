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

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"go.rsc-lang.dev/rsc/compiler"
)

// cmdDemo compiles a handful of built-in schemas to exercise a local
// build end to end: one that accepts, and two that are expected to be
// rejected for a cyclic dependency. Informational only, per §6's
// allowance for additional out-of-scope subcommands.
type cmdDemo struct{}

func (*cmdDemo) help() *commandHelp {
	return &commandHelp{
		usage:   "demo",
		summary: "Compile a few built-in example schemas",
	}
}

func (*cmdDemo) flags(*pflag.FlagSet) {}

var demoSchemas = []struct {
	name       string
	src        string
	expectFail bool
}{
	{
		name: "multi-resource",
		src: `resource User { string name string email optional number age bool active }
resource Names { list string values }
resource Users { list User users }
resource Settings { bool enabled optional number retries }
resource Notification { string title nullable string body User recipient }`,
	},
	{
		name:       "self-cycle",
		src:        `resource TreeNode { string value list TreeNode children }`,
		expectFail: true,
	},
	{
		name:       "mutual-cycle",
		src:        `resource A { string name B reference } resource B { string title A parent }`,
		expectFail: true,
	},
}

func (*cmdDemo) run(context.Context, []string) int {
	failed := false
	for _, demo := range demoSchemas {
		_, err := compiler.Compile([]byte(demo.src))
		switch {
		case err != nil && demo.expectFail:
			fmt.Printf("[ok]   %s: rejected as expected (%v)\n", demo.name, err)
		case err != nil:
			fmt.Printf("[FAIL] %s: unexpected error: %v\n", demo.name, err)
			failed = true
		case demo.expectFail:
			fmt.Printf("[FAIL] %s: expected rejection but compiled\n", demo.name)
			failed = true
		default:
			fmt.Printf("[ok]   %s: compiled\n", demo.name)
		}
	}
	if failed {
		fmt.Fprintln(os.Stderr, "one or more demo schemas behaved unexpectedly")
		return 1
	}
	return 0
}
