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

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// command mirrors the small interface a compiler CLI subcommand needs:
// help text, flag registration, and a run function returning a process
// exit code.
type command interface {
	help() *commandHelp
	flags(flags *pflag.FlagSet)
	run(ctx context.Context, argv []string) int
}

type commandHelp struct {
	usage   string
	summary string
}

func main() {
	ctx := context.Background()

	rootCmd := &cobra.Command{
		Use: "rsc [options] COMMAND",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(os.Stderr, rootCmd.UsageString())
		os.Exit(1)
		return nil
	}

	commands := []command{
		&cmdCompile{},
		&cmdDemo{},
	}
	for _, cmd := range commands {
		h := cmd.help()
		cobraCmd := &cobra.Command{
			Use:   h.usage,
			Short: h.summary,
			RunE: func(_ *cobra.Command, args []string) error {
				os.Exit(cmd.run(ctx, args))
				return nil
			},
		}
		rootCmd.AddCommand(cobraCmd)
		cmd.flags(cobraCmd.Flags())
	}

	if _, err := rootCmd.ExecuteC(); err != nil {
		os.Exit(1)
	}
}
