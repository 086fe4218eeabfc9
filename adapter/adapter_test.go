package adapter_test

import (
	"bytes"
	"testing"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gopatterns/adapter"
	"github.com/katalvlaran/gopatterns/composite"
)

// seedFS builds the fixture hierarchy:
//
//	/project
//	├── README.md
//	├── docs/guide.md
//	└── src/{main.go, util.go}
func seedFS(t *testing.T) billy.Filesystem {
	t.Helper()
	fs := memfs.New()
	require.NoError(t, fs.MkdirAll("/project/docs", 0o755))
	require.NoError(t, fs.MkdirAll("/project/src", 0o755))
	require.NoError(t, util.WriteFile(fs, "/project/README.md", []byte("readme"), 0o644))
	require.NoError(t, util.WriteFile(fs, "/project/docs/guide.md", []byte("guide"), 0o644))
	require.NoError(t, util.WriteFile(fs, "/project/src/main.go", []byte("package main"), 0o644))
	require.NoError(t, util.WriteFile(fs, "/project/src/util.go", []byte("package main"), 0o644))

	return fs
}

const wantListing = "project\n" +
	"    README.md\n" +
	"    docs\n" +
	"        guide.md\n" +
	"    src\n" +
	"        main.go\n" +
	"        util.go\n"

func TestMirror_BuildsDetachedCompositeTree(t *testing.T) {
	fs := seedFS(t)

	root, err := adapter.Mirror(fs, "/project")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, composite.Render(&buf, root))
	assert.Equal(t, wantListing, buf.String())

	// Detached: filesystem changes after Mirror do not affect the tree.
	require.NoError(t, util.WriteFile(fs, "/project/new.txt", []byte("x"), 0o644))
	buf.Reset()
	require.NoError(t, composite.Render(&buf, root))
	assert.Equal(t, wantListing, buf.String())
}

func TestNewTree_LazyAdapterTracksFilesystem(t *testing.T) {
	fs := seedFS(t)

	node, err := adapter.NewTree(fs, "/project")
	require.NoError(t, err)
	assert.Equal(t, "project", node.Name())

	var buf bytes.Buffer
	require.NoError(t, composite.Render(&buf, node))
	assert.Equal(t, wantListing, buf.String())

	// Live view: a file created after construction appears on the next render.
	require.NoError(t, util.WriteFile(fs, "/project/docs/faq.md", []byte("faq"), 0o644))
	buf.Reset()
	require.NoError(t, composite.Render(&buf, node))
	assert.Contains(t, buf.String(), "        faq.md\n")
}

func TestNewTree_NilFilesystem(t *testing.T) {
	node, err := adapter.NewTree(nil, "/project")
	assert.Nil(t, node)
	assert.ErrorIs(t, err, adapter.ErrNilFilesystem)
}

func TestNewTree_FileIsNotADirectory(t *testing.T) {
	fs := seedFS(t)
	node, err := adapter.NewTree(fs, "/project/README.md")
	assert.Nil(t, node)
	assert.ErrorIs(t, err, adapter.ErrNotDir)
}

func TestNewTree_MissingPath(t *testing.T) {
	fs := memfs.New()
	node, err := adapter.NewTree(fs, "/nope")
	assert.Nil(t, node)
	assert.Error(t, err)
	assert.ErrorContains(t, err, "stat")
}

func TestMirror_EmptyDirectory(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, fs.MkdirAll("/empty", 0o755))

	root, err := adapter.Mirror(fs, "/empty")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, composite.Render(&buf, root))
	assert.Equal(t, "empty\n", buf.String())
}
