// Package composite implements the Composite pattern: a recursive part-whole
// tree in which terminal items (Leaf) and containers (Folder) are addressed
// through one shared Component interface, so client code never needs to
// distinguish them.
//
// What:
//
//   - Component: the capability both node kinds expose (Name + Children)
//   - Leaf: a childless node representing a terminal item (e.g. a file)
//   - Folder: a node holding an ordered sequence of child Components;
//     Add appends, Remove drops the first occurrence
//   - Walk: depth-first pre-order traversal (parent before children,
//     siblings in insertion order), with hooks and depth limiting
//   - Render / ShowDetails: the classic "print the tree" client, one line
//     per node, indented proportionally to depth (4 spaces per level by
//     default, root unindented)
//
// Why:
//   - Model hierarchies (file trees, menus, org charts, scene graphs) where
//     a group and a single item must be interchangeable
//   - Keep the traversal algorithm in one place instead of re-implementing
//     it per node kind
//
// Key Types & Constants:
//
//   - Component, Leaf, Folder
//   - Option: functional options for traversal and rendering
//   - VisitFunc: pre-order callback receiving (Component, depth)
//   - DefaultIndentWidth = 4
//
// Complexity:
//
//   - Add:    O(S) where S is the size of the inserted subtree (cycle guard)
//   - Remove: O(K) where K is the number of children
//   - Walk / Render: Time O(N), Memory O(D) recursion (N nodes, D depth)
//
// Errors:
//
//   - ErrNilComponent  nil root or nil child
//   - ErrCycle         Add would make a component its own ancestor
//   - ErrChildNotFound Remove target is not a direct child
//   - hook errors      propagated from OnVisit
//
// Structural sharing is permitted: the same Component may be added to
// several folders (a DAG of shared subtrees renders once per occurrence).
// Cycles are rejected at Add time, so traversal always terminates.
package composite
