package composite_test

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gopatterns/composite"
)

// buildDocTree builds the canonical documentation tree:
//
//	main_folder
//	├── document.txt
//	├── report.xlsx
//	└── images (empty)
func buildDocTree(t *testing.T) (*composite.Folder, *composite.Folder) {
	t.Helper()
	root := composite.NewFolder("main_folder")
	images := composite.NewFolder("images")
	require.NoError(t, root.Add(composite.NewLeaf("document.txt")))
	require.NoError(t, root.Add(composite.NewLeaf("report.xlsx")))
	require.NoError(t, root.Add(images))

	return root, images
}

// renderLines renders root and splits the output into lines (no trailing empty).
func renderLines(t *testing.T, root composite.Component, opts ...composite.Option) []string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, composite.Render(&buf, root, opts...))
	out := strings.TrimSuffix(buf.String(), "\n")
	if out == "" {
		return nil
	}

	return strings.Split(out, "\n")
}

func TestLeaf_NameAndNoChildren(t *testing.T) {
	l := composite.NewLeaf("notes.md")
	assert.Equal(t, "notes.md", l.Name())
	assert.Nil(t, l.Children())
}

func TestLeaf_RendersExactlyOneLine(t *testing.T) {
	lines := renderLines(t, composite.NewLeaf("single.txt"))
	assert.Equal(t, []string{"single.txt"}, lines)
}

func TestFolder_EmptyRendersOwnNameOnly(t *testing.T) {
	lines := renderLines(t, composite.NewFolder("empty"))
	assert.Equal(t, []string{"empty"}, lines)
}

func TestRender_E2EDocumentTree(t *testing.T) {
	root, _ := buildDocTree(t)

	var buf bytes.Buffer
	require.NoError(t, composite.Render(&buf, root))
	assert.Equal(t,
		"main_folder\n"+
			"    document.txt\n"+
			"    report.xlsx\n"+
			"    images\n",
		buf.String())
}

func TestRender_E2ENestedAfterMutation(t *testing.T) {
	root, images := buildDocTree(t)
	// The tree stays mutable after a render; add under the nested folder.
	_ = renderLines(t, root)
	require.NoError(t, images.Add(composite.NewLeaf("photo.png")))

	lines := renderLines(t, root)
	assert.Equal(t, []string{
		"main_folder",
		"    document.txt",
		"    report.xlsx",
		"    images",
		"        photo.png",
	}, lines)
}

func TestRender_PreOrderInvariant(t *testing.T) {
	// Every node must appear strictly before all of its descendants.
	root := composite.NewFolder("r")
	a := composite.NewFolder("a")
	b := composite.NewFolder("b")
	require.NoError(t, a.Add(composite.NewLeaf("a1")))
	require.NoError(t, a.Add(composite.NewLeaf("a2")))
	require.NoError(t, b.Add(composite.NewLeaf("b1")))
	require.NoError(t, root.Add(a))
	require.NoError(t, root.Add(b))

	lines := renderLines(t, root)
	index := make(map[string]int, len(lines))
	for i, ln := range lines {
		index[strings.TrimLeft(ln, " ")] = i
	}
	assert.Less(t, index["r"], index["a"])
	assert.Less(t, index["a"], index["a1"])
	assert.Less(t, index["a"], index["a2"])
	assert.Less(t, index["b"], index["b1"])
	// Sibling order: all of a's subtree precedes b.
	assert.Less(t, index["a2"], index["b"])
}

func TestRender_SiblingInsertionOrder(t *testing.T) {
	root := composite.NewFolder("root")
	require.NoError(t, root.Add(composite.NewLeaf("B")))
	require.NoError(t, root.Add(composite.NewLeaf("A")))

	lines := renderLines(t, root)
	assert.Equal(t, []string{"root", "    B", "    A"}, lines)
}

func TestRender_IndentProportionalToDepth(t *testing.T) {
	// Chain of folders f0 > f1 > ... > f4: depth d gets 4*d leading spaces.
	const depth = 5
	folders := make([]*composite.Folder, depth)
	for i := range folders {
		folders[i] = composite.NewFolder("f" + strconv.Itoa(i))
		if i > 0 {
			require.NoError(t, folders[i-1].Add(folders[i]))
		}
	}

	lines := renderLines(t, folders[0])
	require.Len(t, lines, depth)
	for d, ln := range lines {
		assert.Equal(t, strings.Repeat(" ", 4*d)+"f"+strconv.Itoa(d), ln)
	}
}

func TestRender_CustomIndentWidth(t *testing.T) {
	root := composite.NewFolder("top")
	require.NoError(t, root.Add(composite.NewLeaf("kid")))

	lines := renderLines(t, root, composite.WithIndentWidth(2))
	assert.Equal(t, []string{"top", "  kid"}, lines)

	// Zero is legal: flat output.
	lines = renderLines(t, root, composite.WithIndentWidth(0))
	assert.Equal(t, []string{"top", "kid"}, lines)

	// Negative widths are ignored, default retained.
	lines = renderLines(t, root, composite.WithIndentWidth(-3))
	assert.Equal(t, []string{"top", "    kid"}, lines)
}

func TestRender_MaxDepth(t *testing.T) {
	root, images := buildDocTree(t)
	require.NoError(t, images.Add(composite.NewLeaf("photo.png")))

	lines := renderLines(t, root, composite.WithMaxDepth(1))
	assert.Equal(t, []string{
		"main_folder",
		"    document.txt",
		"    report.xlsx",
		"    images",
	}, lines)

	lines = renderLines(t, root, composite.WithMaxDepth(0))
	assert.Equal(t, []string{"main_folder"}, lines)
}

func TestRender_NilRoot(t *testing.T) {
	var buf bytes.Buffer
	err := composite.Render(&buf, nil)
	assert.ErrorIs(t, err, composite.ErrNilComponent)
	assert.Zero(t, buf.Len())
}

func TestRender_OnVisitHookAbort(t *testing.T) {
	root, _ := buildDocTree(t)

	var buf bytes.Buffer
	err := composite.Render(&buf, root, composite.WithOnVisit(func(c composite.Component, depth int) error {
		if c.Name() == "report.xlsx" {
			return errors.New("halt")
		}

		return nil
	}))
	assert.Error(t, err)
	assert.ErrorContains(t, err, "OnVisit hook for \"report.xlsx\"")
	// Output stops mid-listing: the aborted node's line is never written.
	assert.Equal(t, "main_folder\n    document.txt\n", buf.String())
}

func TestWalk_DepthsAndOrder(t *testing.T) {
	root, images := buildDocTree(t)
	require.NoError(t, images.Add(composite.NewLeaf("photo.png")))

	var names []string
	var depths []int
	require.NoError(t, composite.Walk(root, func(c composite.Component, depth int) error {
		names = append(names, c.Name())
		depths = append(depths, depth)

		return nil
	}))
	assert.Equal(t, []string{"main_folder", "document.txt", "report.xlsx", "images", "photo.png"}, names)
	assert.Equal(t, []int{0, 1, 1, 1, 2}, depths)
}

func TestWalk_NilVisitTraversesSilently(t *testing.T) {
	root, _ := buildDocTree(t)
	assert.NoError(t, composite.Walk(root, nil))
}

func TestWalk_VisitErrorPropagatesUnchanged(t *testing.T) {
	root, _ := buildDocTree(t)
	sentinel := errors.New("stop here")
	err := composite.Walk(root, func(c composite.Component, depth int) error {
		if c.Name() == "images" {
			return sentinel
		}

		return nil
	})
	assert.ErrorIs(t, err, sentinel)
}

func TestAdd_NilChild(t *testing.T) {
	f := composite.NewFolder("f")
	assert.ErrorIs(t, f.Add(nil), composite.ErrNilComponent)
	assert.Zero(t, f.Len())
}

func TestAdd_SelfRejected(t *testing.T) {
	f := composite.NewFolder("f")
	assert.ErrorIs(t, f.Add(f), composite.ErrCycle)
	assert.Zero(t, f.Len())
}

func TestAdd_AncestorRejected(t *testing.T) {
	// parent > child > grandchild; inserting parent under grandchild closes a cycle.
	parent := composite.NewFolder("parent")
	child := composite.NewFolder("child")
	grandchild := composite.NewFolder("grandchild")
	require.NoError(t, parent.Add(child))
	require.NoError(t, child.Add(grandchild))

	assert.ErrorIs(t, grandchild.Add(parent), composite.ErrCycle)
	assert.ErrorIs(t, child.Add(parent), composite.ErrCycle)
	// The failed inserts must leave the tree renderable.
	assert.Equal(t, []string{"parent", "    child", "        grandchild"},
		renderLines(t, parent))
}

func TestAdd_SharedSubtreePermitted(t *testing.T) {
	// The same leaf under two folders is a legal DAG: rendered once per occurrence.
	shared := composite.NewLeaf("shared.cfg")
	left := composite.NewFolder("left")
	right := composite.NewFolder("right")
	root := composite.NewFolder("root")
	require.NoError(t, left.Add(shared))
	require.NoError(t, right.Add(shared))
	require.NoError(t, root.Add(left))
	require.NoError(t, root.Add(right))

	lines := renderLines(t, root)
	assert.Equal(t, []string{
		"root",
		"    left",
		"        shared.cfg",
		"    right",
		"        shared.cfg",
	}, lines)
}

func TestAdd_DuplicateChildPermitted(t *testing.T) {
	f := composite.NewFolder("f")
	l := composite.NewLeaf("twice.txt")
	require.NoError(t, f.Add(l))
	require.NoError(t, f.Add(l))
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, []string{"f", "    twice.txt", "    twice.txt"}, renderLines(t, f))
}

func TestRemove_FirstOccurrenceOnly(t *testing.T) {
	f := composite.NewFolder("f")
	l := composite.NewLeaf("dup")
	require.NoError(t, f.Add(l))
	require.NoError(t, f.Add(composite.NewLeaf("mid")))
	require.NoError(t, f.Add(l))

	require.NoError(t, f.Remove(l))
	assert.Equal(t, []string{"f", "    mid", "    dup"}, renderLines(t, f))
}

func TestRemove_NotAChild(t *testing.T) {
	f := composite.NewFolder("f")
	assert.ErrorIs(t, f.Remove(composite.NewLeaf("ghost")), composite.ErrChildNotFound)
	assert.ErrorIs(t, f.Remove(nil), composite.ErrNilComponent)
}

func TestChildren_ReturnsCopy(t *testing.T) {
	f := composite.NewFolder("f")
	require.NoError(t, f.Add(composite.NewLeaf("a")))
	kids := f.Children()
	kids[0] = composite.NewLeaf("mutated")

	assert.Equal(t, "a", f.Children()[0].Name())
}

func TestEmptyAndDuplicateNamesAreLegal(t *testing.T) {
	f := composite.NewFolder("")
	require.NoError(t, f.Add(composite.NewLeaf("")))
	require.NoError(t, f.Add(composite.NewLeaf("x")))
	require.NoError(t, f.Add(composite.NewLeaf("x")))

	lines := renderLines(t, f)
	assert.Equal(t, []string{"", "    ", "    x", "    x"}, lines)
}

func TestRender_WideTree(t *testing.T) {
	const n = 100
	root := composite.NewFolder("wide")
	for i := 0; i < n; i++ {
		require.NoError(t, root.Add(composite.NewLeaf(fmt.Sprintf("file-%03d", i))))
	}

	lines := renderLines(t, root)
	require.Len(t, lines, n+1)
	for i := 1; i <= n; i++ {
		assert.Equal(t, fmt.Sprintf("    file-%03d", i-1), lines[i])
	}
}
