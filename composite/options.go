// Package composite: functional options for Walk, Render and ShowDetails.
package composite

// DefaultIndentWidth is the number of spaces per depth level used by Render
// when no WithIndentWidth option is given. The root is never indented.
const DefaultIndentWidth = 4

// VisitFunc is the pre-order callback invoked by Walk for every node.
// depth is the number of container levels between the node and the root
// (root = 0). Returning an error aborts the traversal with that error.
type VisitFunc func(c Component, depth int) error

// Option configures optional behavior of Walk, Render and ShowDetails.
type Option func(*Options)

// Options holds configurable parameters for traversal and rendering.
// Complexity remains O(N) when hooks are O(1).
type Options struct {
	// IndentWidth is the number of spaces per depth level in rendered output.
	// Default is DefaultIndentWidth.
	IndentWidth int

	// MaxDepth, if non-negative, limits traversal to the given depth.
	// A depth of 0 visits only the root. Default is -1 (no limit).
	MaxDepth int

	// OnVisit, if non-nil, is invoked on each node before its line is
	// rendered and before its children are visited (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit VisitFunc
}

// DefaultOptions returns an Options struct with:
//   - IndentWidth = DefaultIndentWidth (4 spaces per level)
//   - No depth limit (MaxDepth = -1)
//   - No pre-order hook
func DefaultOptions() Options {
	return Options{
		IndentWidth: DefaultIndentWidth,
		MaxDepth:    -1,
		OnVisit:     nil,
	}
}

// WithIndentWidth returns an Option that sets the number of spaces per depth
// level in rendered output. Negative widths are ignored (default retained);
// zero is legal and produces unindented output.
func WithIndentWidth(width int) Option {
	return func(o *Options) {
		if width >= 0 {
			o.IndentWidth = width
		}
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 renders only the root.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
// The hook runs before each node's own output line is written.
func WithOnVisit(fn VisitFunc) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}
