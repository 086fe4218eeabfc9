// Package composite: Component interface and the two shipped node kinds.
//
// This file declares Component, Leaf, Folder, sentinel errors, and the
// NewLeaf / NewFolder constructors. Traversal and rendering live in walk.go;
// functional options live in options.go.
package composite

import "errors"

// Sentinel errors for composite tree operations.
var (
	// ErrNilComponent indicates a nil Component was passed where a node is required.
	ErrNilComponent = errors.New("composite: nil component")

	// ErrCycle indicates an Add that would make a folder its own ancestor.
	ErrCycle = errors.New("composite: component would become its own ancestor")

	// ErrChildNotFound indicates a Remove target that is not a direct child.
	ErrChildNotFound = errors.New("composite: child not found")
)

// Component is the capability shared by every node in the tree.
//
// Name is the node's display identity and must be stable for the node's
// lifetime. Children returns the ordered child components; a terminal node
// returns nil. New node kinds may be added by implementing this interface.
type Component interface {
	// Name returns the stored name. Pure, no side effects.
	Name() string

	// Children returns the node's children in insertion order.
	// Implementations must return nil (or empty) for terminal nodes.
	Children() []Component
}

// Leaf is a terminal item with a name and no children.
//
// The zero value is usable but unnamed; prefer NewLeaf.
type Leaf struct {
	name string
}

// NewLeaf creates a Leaf with the given name.
// Names are accepted as given: empty and duplicate names are legal.
// Complexity: O(1).
func NewLeaf(name string) *Leaf {
	return &Leaf{name: name}
}

// Name returns the leaf's name.
func (l *Leaf) Name() string { return l.name }

// Children always returns nil: a Leaf never has children.
func (l *Leaf) Children() []Component { return nil }

// Folder is an internal node holding an ordered sequence of child Components.
//
// Insertion order is significant and preserved. The same child may appear
// under several folders (shared subtrees are legal); a folder may not be
// inserted into itself or into any of its descendants.
type Folder struct {
	name     string
	children []Component
}

// NewFolder creates a Folder with the given name and no children.
// Complexity: O(1).
func NewFolder(name string) *Folder {
	return &Folder{name: name}
}

// Name returns the folder's name.
func (f *Folder) Name() string { return f.name }

// Children returns a copy of the folder's child sequence in insertion order.
// Mutate the tree through Add and Remove only.
// Complexity: O(K) where K is the number of children.
func (f *Folder) Children() []Component {
	if len(f.children) == 0 {
		return nil
	}
	out := make([]Component, len(f.children))
	copy(out, f.children)

	return out
}

// Len returns the number of direct children.
// Complexity: O(1).
func (f *Folder) Len() int { return len(f.children) }

// Add appends child to the end of the folder's child sequence.
// Duplicates are allowed; insertion order is preserved.
//
// Returns ErrNilComponent if child is nil, and ErrCycle if child is the
// folder itself or a component whose subtree already contains the folder.
// The cycle guard keeps every reachable structure acyclic, so Walk and
// Render always terminate.
// Complexity: O(S) where S is the size of child's subtree.
func (f *Folder) Add(child Component) error {
	// 1. Validate input
	if child == nil {
		return ErrNilComponent
	}

	// 2. Reject self-insertion and ancestor insertion
	if contains(child, f) {
		return ErrCycle
	}

	// 3. Append preserving insertion order
	f.children = append(f.children, child)

	return nil
}

// Remove drops the first occurrence of child from the folder's child
// sequence, preserving the order of the remaining children.
// Returns ErrNilComponent if child is nil, ErrChildNotFound if child is not
// a direct child of this folder.
// Complexity: O(K).
func (f *Folder) Remove(child Component) error {
	if child == nil {
		return ErrNilComponent
	}
	var i int
	var c Component
	for i, c = range f.children {
		if c == child {
			f.children = append(f.children[:i], f.children[i+1:]...)

			return nil
		}
	}

	return ErrChildNotFound
}

// contains reports whether target is c itself or a node of c's subtree.
// The existing structure is acyclic (Add enforces it), so recursion terminates.
func contains(c, target Component) bool {
	if c == target {
		return true
	}
	for _, child := range c.Children() {
		if contains(child, target) {
			return true
		}
	}

	return false
}
