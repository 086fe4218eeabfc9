package prototype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gopatterns/prototype"
)

func TestClone_CopiesContentFreshIdentity(t *testing.T) {
	orig := prototype.NewDocument("Weekly", "agenda", "meeting", "recurring")
	clone := orig.Clone()

	assert.Equal(t, orig.Title, clone.Title)
	assert.Equal(t, orig.Body, clone.Body)
	assert.Equal(t, orig.Tags, clone.Tags)
	assert.NotEqual(t, orig.ID, clone.ID, "clone must get a fresh UUID")
	assert.NotEmpty(t, clone.ID)
}

func TestClone_DeepCopiesTags(t *testing.T) {
	orig := prototype.NewDocument("t", "b", "one")
	clone := orig.Clone()
	clone.Tags[0] = "mutated"

	assert.Equal(t, "one", orig.Tags[0], "tag mutation on the clone must not reach the original")
}

func TestRegistry_CreateReturnsIndependentClones(t *testing.T) {
	reg := prototype.NewRegistry()
	reg.Register("memo", prototype.NewDocument("Memo", "", "internal"))

	a, err := reg.Create("memo")
	require.NoError(t, err)
	b, err := reg.Create("memo")
	require.NoError(t, err)

	assert.Equal(t, a.Title, b.Title)
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotSame(t, a, b)
}

func TestRegistry_UnknownPrototype(t *testing.T) {
	reg := prototype.NewRegistry()
	d, err := reg.Create("missing")
	assert.Nil(t, d)
	assert.ErrorIs(t, err, prototype.ErrUnknownPrototype)
	assert.ErrorContains(t, err, "missing")
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	reg := prototype.NewRegistry()
	reg.Register("doc", prototype.NewDocument("old", ""))
	reg.Register("doc", prototype.NewDocument("new", ""))
	assert.Equal(t, 1, reg.Len())

	d, err := reg.Create("doc")
	require.NoError(t, err)
	assert.Equal(t, "new", d.Title)
}
