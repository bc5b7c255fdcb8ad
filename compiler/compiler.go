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

// Package compiler exposes the two programmatic entry points of §6:
// Parse (re-exported from package syntax for convenience) and
// Compile, which drives the full pipeline from source text to IR plus
// generated client/server sources.
package compiler

import (
	"github.com/google/uuid"

	"go.rsc-lang.dev/rsc/codegen"
	"go.rsc-lang.dev/rsc/ir"
	"go.rsc-lang.dev/rsc/syntax"
)

// Parse converts schema source into an AST program; it is syntax.Parse
// re-exported so both entry points are reachable from this package.
func Parse(src []byte, opts ...syntax.ParseOption) (*syntax.Program, error) {
	return syntax.Parse(src, opts...)
}

// CompileOption configures Compile. The available options let a
// caller skip either generated artifact; further options can be added
// without changing the function signature.
type CompileOption func(*compileOptions)

type compileOptions struct {
	skipClient bool
	skipServer bool
}

// WithoutClient skips generating the TypeScript client artifact.
func WithoutClient() CompileOption {
	return func(o *compileOptions) { o.skipClient = true }
}

// WithoutServer skips generating the Rust server artifact.
func WithoutServer() CompileOption {
	return func(o *compileOptions) { o.skipServer = true }
}

// CompileResult is the successful outcome of Compile. ID is a
// per-invocation identifier a caller can use to correlate a compile
// run's generated files and log lines across a scripted pipeline.
type CompileResult struct {
	ID           uuid.UUID
	IR           *ir.Program
	ClientSource string
	ServerSource string
}

// Compile runs the full pipeline — parse, validate, resolve, detect
// cycles, generate — short-circuiting on the first error from any
// phase. It never returns a partial IR or partial output.
func Compile(src []byte, opts ...CompileOption) (*CompileResult, error) {
	var o compileOptions
	for _, opt := range opts {
		opt(&o)
	}

	prog, err := syntax.Parse(src)
	if err != nil {
		return nil, err
	}

	if err := ir.Validate(prog); err != nil {
		return nil, err
	}

	irProg, err := ir.Resolve(prog)
	if err != nil {
		return nil, err
	}

	if err := ir.DetectCycles(irProg); err != nil {
		return nil, err
	}

	result := &CompileResult{ID: uuid.New(), IR: irProg}
	if !o.skipClient {
		result.ClientSource = codegen.GenerateTypeScriptClient(irProg)
	}
	if !o.skipServer {
		result.ServerSource = codegen.GenerateRustServer(irProg)
	}
	return result, nil
}
