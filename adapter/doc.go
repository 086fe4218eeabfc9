// Package adapter implements the Adapter pattern: it makes a
// billy.Filesystem — an interface the composite package knows nothing
// about — usable wherever a composite.Component tree is expected.
//
// What:
//
//   - DirNode: the adapter proper. It holds the adaptee (a billy.Filesystem
//     and a directory path) and implements composite.Component, listing the
//     directory lazily on every Children call.
//   - Mirror: an eager converter that walks the filesystem once and builds a
//     plain composite.Folder/Leaf tree detached from the filesystem.
//
// Entries are presented in lexical name order so renders are deterministic
// regardless of the underlying filesystem's listing order.
//
// Constraint: composite.Component.Children cannot fail, so a DirNode whose
// directory turns unreadable between calls presents itself as empty. Use
// Mirror when read failures must surface as errors.
//
// Errors:
//
//   - ErrNilFilesystem  nil adaptee
//   - ErrNotDir         the root path does not name a directory
//   - wrapped Stat/ReadDir errors from the filesystem (Mirror and NewTree)
package adapter
