package adapter

import (
	"errors"
	"fmt"
	"os"
	"path"
	"sort"

	billy "github.com/go-git/go-billy/v5"

	"github.com/katalvlaran/gopatterns/composite"
)

// Sentinel errors for filesystem adaptation.
var (
	// ErrNilFilesystem indicates a nil billy.Filesystem adaptee.
	ErrNilFilesystem = errors.New("adapter: nil filesystem")

	// ErrNotDir indicates that the root path names a file, not a directory.
	ErrNotDir = errors.New("adapter: path is not a directory")
)

// DirNode adapts one filesystem directory to composite.Component.
// It keeps a reference to the adaptee and lists children on demand, so the
// composite view always reflects the current filesystem contents.
type DirNode struct {
	fs   billy.Filesystem
	path string
	name string
}

// NewTree returns the adapter for the directory at root within fs.
// Returns ErrNilFilesystem for a nil adaptee, ErrNotDir when root names a
// plain file, and wraps the Stat error when root cannot be inspected.
func NewTree(fs billy.Filesystem, root string) (*DirNode, error) {
	// 1. Validate the adaptee
	if fs == nil {
		return nil, ErrNilFilesystem
	}

	// 2. The root must exist and be a directory
	info, err := fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("adapter: stat %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrNotDir, root)
	}

	return &DirNode{fs: fs, path: root, name: path.Base(root)}, nil
}

// Name returns the directory's base name.
func (n *DirNode) Name() string { return n.name }

// Children lists the directory in lexical name order: subdirectories become
// nested DirNodes, files become composite leaves. An unreadable directory
// presents itself as empty, since Component.Children has no error channel.
// Complexity: O(K log K) for K entries.
func (n *DirNode) Children() []composite.Component {
	infos, err := n.fs.ReadDir(n.path)
	if err != nil {
		return nil
	}
	sortEntries(infos)

	out := make([]composite.Component, 0, len(infos))
	var info os.FileInfo
	for _, info = range infos {
		if info.IsDir() {
			out = append(out, &DirNode{
				fs:   n.fs,
				path: n.fs.Join(n.path, info.Name()),
				name: info.Name(),
			})
			continue
		}
		out = append(out, composite.NewLeaf(info.Name()))
	}

	return out
}

// Mirror walks the directory at root within fs once and builds a detached
// composite tree: folders for directories, leaves for files, children in
// lexical name order. Unlike DirNode it propagates read failures.
// Complexity: O(N log K) for N entries with fan-out K.
func Mirror(fs billy.Filesystem, root string) (*composite.Folder, error) {
	node, err := NewTree(fs, root)
	if err != nil {
		return nil, err
	}

	return mirrorDir(fs, node.path, node.name)
}

// mirrorDir recursively copies one directory into a composite.Folder.
func mirrorDir(fs billy.Filesystem, dir, name string) (*composite.Folder, error) {
	infos, err := fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("adapter: read %q: %w", dir, err)
	}
	sortEntries(infos)

	folder := composite.NewFolder(name)
	var info os.FileInfo
	for _, info = range infos {
		var child composite.Component
		if info.IsDir() {
			sub, err := mirrorDir(fs, fs.Join(dir, info.Name()), info.Name())
			if err != nil {
				return nil, err
			}
			child = sub
		} else {
			child = composite.NewLeaf(info.Name())
		}
		if err = folder.Add(child); err != nil {
			return nil, fmt.Errorf("adapter: add %q: %w", info.Name(), err)
		}
	}

	return folder, nil
}

// sortEntries orders directory entries by name for deterministic renders.
func sortEntries(infos []os.FileInfo) {
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name() < infos[j].Name() })
}
