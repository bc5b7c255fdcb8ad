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

package ir

// color marks a node's DFS state for cycle detection.
type color uint8

const (
	white color = iota // unvisited
	gray               // on-stack
	black              // done
)

// DetectCycles builds the inter-resource dependency graph on prog and
// rejects the first cycle found. Edges run i→j when resource i has a
// field whose type mentions ResourceRef(j), including inside nested
// List constructors; a resource may contribute more than one edge to
// the same target, and those duplicates are preserved in traversal
// order even though they do not change reachability.
func DetectCycles(prog *Program) error {
	n := len(prog.Resources)
	adj := make([][]int, n)
	for i, res := range prog.Resources {
		for _, field := range res.Fields {
			collectRefs(field.Type, &adj[i])
		}
	}

	colors := make([]color, n)
	var stack []int

	var visit func(i int) error
	visit = func(i int) error {
		colors[i] = gray
		stack = append(stack, i)
		for _, j := range adj[i] {
			switch colors[j] {
			case white:
				if err := visit(j); err != nil {
					return err
				}
			case gray:
				return errCycle(cyclePath(prog, stack, j))
			case black:
				// already fully explored, no cycle through it
			}
		}
		stack = stack[:len(stack)-1]
		colors[i] = black
		return nil
	}

	for i := 0; i < n; i++ {
		if colors[i] == white {
			if err := visit(i); err != nil {
				return err
			}
		}
	}
	return nil
}

// collectRefs appends every ResourceRef mentioned inside t, including
// through nested List constructors, in source order.
func collectRefs(t *Type, out *[]int) {
	switch t.Kind {
	case KindResourceRef:
		*out = append(*out, t.Ref)
	case KindList:
		collectRefs(t.Elem, out)
	}
}

// cyclePath renders the path from where entry first appears on the
// stack, through to the end of the stack, back to entry.
func cyclePath(prog *Program, stack []int, entry int) []string {
	start := 0
	for i, v := range stack {
		if v == entry {
			start = i
			break
		}
	}
	path := make([]string, 0, len(stack)-start+1)
	for _, i := range stack[start:] {
		path = append(path, prog.Resources[i].Name)
	}
	path = append(path, prog.Resources[entry].Name)
	return path
}
