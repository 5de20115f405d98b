package analyzer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_HitsUnchangedFiles(t *testing.T) {
	root := writeProject(t, map[string]string{
		"a.ts": cardSource,
		"b.ts": legacySource,
	})

	cache, err := NewCache(16)
	require.NoError(t, err)
	a := newTestAnalyzer(WithCache(cache))

	first, err := a.Analyze(root)
	require.NoError(t, err)
	hits, misses := cache.Stats()
	assert.Equal(t, int64(0), hits)
	assert.Equal(t, int64(2), misses)
	assert.Equal(t, 2, cache.Len())

	second, err := a.Analyze(root)
	require.NoError(t, err)
	hits, _ = cache.Stats()
	assert.Equal(t, int64(2), hits)
	assert.Same(t, first.Modules[0], second.Modules[0])

	// A content change is a different key.
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.ts"), []byte(legacySource+"\n// edited\n"), 0644))
	third, err := a.Analyze(root)
	require.NoError(t, err)
	hits, misses = cache.Stats()
	assert.Equal(t, int64(3), hits)
	assert.Equal(t, int64(3), misses)
	assert.NotSame(t, first.Modules[1], third.Modules[1])
	assert.Equal(t, first.Modules[1].Components[0].Name, third.Modules[1].Components[0].Name)
}

func TestCache_Eviction(t *testing.T) {
	cache, err := NewCache(1)
	require.NoError(t, err)

	cache.Add(&Module{Path: "a.ts", Hash: "1"})
	cache.Add(&Module{Path: "b.ts", Hash: "2"})

	_, ok := cache.Get("a.ts", "1")
	assert.False(t, ok)
	m, ok := cache.Get("b.ts", "2")
	require.True(t, ok)
	assert.Equal(t, "b.ts", m.Path)

	cache.Purge()
	assert.Equal(t, 0, cache.Len())
}

func TestCache_Nil(t *testing.T) {
	var c *Cache
	_, ok := c.Get("a.ts", "x")
	assert.False(t, ok)
	c.Add(&Module{Path: "a.ts"})
	c.Purge()
	assert.Equal(t, 0, c.Len())

	hits, misses := c.Stats()
	assert.Zero(t, hits)
	assert.Zero(t, misses)
}

func TestNewCache_InvalidSize(t *testing.T) {
	_, err := NewCache(0)
	assert.Error(t, err)
}

func TestCache_ResultsMatchFreshAnalysis(t *testing.T) {
	root := writeProject(t, map[string]string{"a.ts": cardSource})
	path := filepath.Join(root, "a.ts")

	cache, err := NewCache(4)
	require.NoError(t, err)
	cached := newTestAnalyzer(WithCache(cache))

	_, err = cached.AnalyzeFile(context.Background(), path)
	require.NoError(t, err)
	hit, err := cached.AnalyzeFile(context.Background(), path)
	require.NoError(t, err)

	fresh, err := newTestAnalyzer().AnalyzeFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, fresh.Hash, hit.Hash)
	require.Len(t, hit.Components, len(fresh.Components))
	for i, p := range fresh.Components[0].Properties {
		got := hit.Components[0].Properties[i]
		assert.Equal(t, p.Name, got.Name)
		assert.Equal(t, p.Attribute, got.Attribute)
		assert.Equal(t, p.Config.Reflect, got.Config.Reflect)
		assert.Equal(t, p.Config.Type, got.Config.Type)
	}
}
