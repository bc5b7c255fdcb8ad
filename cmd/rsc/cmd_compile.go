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
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"go.rsc-lang.dev/rsc/compiler"
)

// cmdCompile implements the command-line contract of §6: read one
// schema file, write client.ts and server.rs into an output
// directory, exit non-zero on any compile error.
type cmdCompile struct {
	outDir string
}

func (*cmdCompile) help() *commandHelp {
	return &commandHelp{
		usage:   "compile SCHEMA",
		summary: "Compile a schema file and write generated sources",
	}
}

func (cmd *cmdCompile) flags(flags *pflag.FlagSet) {
	flags.StringVarP(&cmd.outDir, "output", "o", "", "output directory for generated sources")
}

func (cmd *cmdCompile) run(_ context.Context, argv []string) int {
	errColor := color.New(color.FgRed, color.Bold)
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		errColor.DisableColor()
	}

	if len(argv) < 1 {
		fmt.Fprintln(os.Stderr, "usage: rsc compile SCHEMA --output DIR")
		return 1
	}
	if cmd.outDir == "" {
		fmt.Fprintln(os.Stderr, "No output directory specified (set --output=)")
		return 1
	}

	schemaPath := argv[0]
	src, err := os.ReadFile(schemaPath)
	if err != nil {
		errColor.Fprintln(os.Stderr, err)
		return 1
	}

	result, err := compiler.Compile(src)
	if err != nil {
		errColor.Fprintln(os.Stderr, err)
		return 1
	}

	if err := os.MkdirAll(cmd.outDir, 0o755); err != nil {
		errColor.Fprintln(os.Stderr, err)
		return 1
	}
	if err := os.WriteFile(filepath.Join(cmd.outDir, "client.ts"), []byte(result.ClientSource), 0o644); err != nil {
		errColor.Fprintln(os.Stderr, err)
		return 1
	}
	if err := os.WriteFile(filepath.Join(cmd.outDir, "server.rs"), []byte(result.ServerSource), 0o644); err != nil {
		errColor.Fprintln(os.Stderr, err)
		return 1
	}

	fmt.Printf("compiled %d resource(s); run %s\n", len(result.IR.Resources), result.ID)
	return 0
}
