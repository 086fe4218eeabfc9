// Package composite: pre-order traversal and rendering.
//
// Walk is the algorithmic heart: depth-first, pre-order (a node is visited
// strictly before any of its descendants), children in insertion order with
// one sibling's whole subtree finished before the next sibling starts.
// Render and ShowDetails are thin clients of Walk.
package composite

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// walker encapsulates state during one traversal.
type walker struct {
	opts  Options   // resolved traversal options
	visit VisitFunc // pre-order callback, may be nil
}

// Walk performs a depth-first pre-order traversal of the tree rooted at root,
// invoking visit on every node with its depth (root = 0). Siblings are
// visited in insertion order. An error returned by visit aborts the
// traversal and is returned unchanged.
//
// Only WithMaxDepth among the options affects Walk; rendering options are
// consumed by Render. Returns ErrNilComponent if root is nil.
// Complexity: Time O(N), Memory O(D) for recursion (N nodes, D depth).
func Walk(root Component, visit VisitFunc, opts ...Option) error {
	// 1. Validate input
	if root == nil {
		return ErrNilComponent
	}

	// 2. Apply options
	wopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&wopts)
	}

	w := &walker{opts: wopts, visit: visit}

	// 3. Traverse from the root
	return w.traverse(root, 0)
}

// traverse visits node c at the given depth, then recurses into its children.
func (w *walker) traverse(c Component, depth int) error {
	// 1. Depth limit: stop below the cut-off
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 2. Pre-order callback
	if w.visit != nil {
		if err := w.visit(c, depth); err != nil {
			return err
		}
	}

	// 3. Children in insertion order, each subtree fully before the next
	var child Component
	for _, child = range c.Children() {
		if err := w.traverse(child, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// Render writes the detail listing of the tree rooted at root to w: one line
// per node, pre-order, each line formatted as <indent(depth)><name> with
// IndentWidth spaces per level (root unindented) and no blank lines.
//
// The OnVisit hook, if set, runs before each node's line is written; an
// error from the hook aborts rendering mid-output.
// Complexity: Time O(N·D) worst case for indentation, Memory O(D).
func Render(w io.Writer, root Component, opts ...Option) error {
	// Resolve options once so Render and Walk agree on MaxDepth.
	ropts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&ropts)
	}

	line := func(c Component, depth int) error {
		if ropts.OnVisit != nil {
			if err := ropts.OnVisit(c, depth); err != nil {
				return fmt.Errorf("composite: OnVisit hook for %q: %w", c.Name(), err)
			}
		}
		indent := strings.Repeat(" ", depth*ropts.IndentWidth)
		if _, err := fmt.Fprintf(w, "%s%s\n", indent, c.Name()); err != nil {
			return fmt.Errorf("composite: write %q: %w", c.Name(), err)
		}

		return nil
	}

	return Walk(root, line, opts...)
}

// ShowDetails prints the detail listing of the tree rooted at root to
// standard output. It is the console convenience over Render.
func ShowDetails(root Component, opts ...Option) error {
	return Render(os.Stdout, root, opts...)
}
