package dir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TinyChain-Inc/tc-ir/dir"
	"github.com/TinyChain-Inc/tc-ir/id"
)

func mustPath(t *testing.T, s string) id.Path {
	t.Helper()
	p, err := id.ParseRoutePath(s)
	require.NoError(t, err)
	return p
}

func TestRouteResolvesExactMount(t *testing.T) {
	d, err := dir.FromRoutes([]dir.Route[string]{
		{Path: mustPath(t, "/hello"), Handler: "H"},
	})
	require.NoError(t, err)

	h, ok := d.Route(mustPath(t, "/hello"))
	require.True(t, ok)
	assert.Equal(t, "H", h)
}

func TestDuplicateMountIsBadRequest(t *testing.T) {
	_, err := dir.FromRoutes([]dir.Route[string]{
		{Path: mustPath(t, "/a/b"), Handler: "H1"},
		{Path: mustPath(t, "/a/b"), Handler: "H2"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already mounted")
}

func TestHandlerBelowHandlerIsConflict(t *testing.T) {
	_, err := dir.FromRoutes([]dir.Route[string]{
		{Path: mustPath(t, "/a"), Handler: "H1"},
		{Path: mustPath(t, "/a/b"), Handler: "H2"},
	})
	require.Error(t, err)
}

func TestNoPartialMatches(t *testing.T) {
	d, err := dir.FromRoutes([]dir.Route[string]{
		{Path: mustPath(t, "/a/b"), Handler: "H"},
	})
	require.NoError(t, err)

	_, ok := d.Route(mustPath(t, "/a"))
	assert.False(t, ok)

	_, ok = d.Route(mustPath(t, "/a/b/c"))
	assert.False(t, ok)

	h, ok := d.Route(mustPath(t, "/a/b"))
	require.True(t, ok)
	assert.Equal(t, "H", h)
}

func TestRouteDeterminesOnlyByPathMultiset(t *testing.T) {
	d1, err := dir.FromRoutes([]dir.Route[string]{
		{Path: mustPath(t, "/a"), Handler: "A"},
		{Path: mustPath(t, "/b"), Handler: "B"},
	})
	require.NoError(t, err)

	d2, err := dir.FromRoutes([]dir.Route[string]{
		{Path: mustPath(t, "/b"), Handler: "B"},
		{Path: mustPath(t, "/a"), Handler: "A"},
	})
	require.NoError(t, err)

	for _, p := range []string{"/a", "/b", "/c"} {
		h1, ok1 := d1.Route(mustPath(t, p))
		h2, ok2 := d2.Route(mustPath(t, p))
		assert.Equal(t, ok1, ok2)
		assert.Equal(t, h1, h2)
	}
}

func TestEmptyRootMountRejected(t *testing.T) {
	_, err := dir.FromRoutes([]dir.Route[string]{
		{Path: id.Path{}, Handler: "H"},
	})
	assert.Error(t, err)
}

func TestSegmentsOrderedAscending(t *testing.T) {
	d, err := dir.FromRoutes([]dir.Route[string]{
		{Path: mustPath(t, "/zeta"), Handler: "Z"},
		{Path: mustPath(t, "/alpha"), Handler: "A"},
		{Path: mustPath(t, "/mid"), Handler: "M"},
	})
	require.NoError(t, err)

	segs := d.Segments()
	require.Len(t, segs, 3)
	assert.Equal(t, id.PathSegment("alpha"), segs[0])
	assert.Equal(t, id.PathSegment("mid"), segs[1])
	assert.Equal(t, id.PathSegment("zeta"), segs[2])
}
