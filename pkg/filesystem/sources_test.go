package filesystem

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverSources(t *testing.T) {
	tmpDir := t.TempDir()
	makeTree(t, tmpDir,
		"src/card.ts",
		"src/Button.TSX",
		"src/app.js",
		"src/readme.md",
		"src/types.d.ts",
		"src/card.test.ts",
		"src/card.stories.ts",
		"node_modules/lit/index.js",
	)

	rel := func(paths []string) []string {
		out := make([]string, len(paths))
		for i, p := range paths {
			r, err := filepath.Rel(tmpDir, p)
			require.NoError(t, err)
			out[i] = filepath.ToSlash(r)
		}
		return out
	}

	files, err := DiscoverSources(context.Background(), tmpDir, SourceOptions{
		Extensions: []string{".ts", ".tsx"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"src/Button.TSX", "src/card.ts"}, rel(files))

	files, err = DiscoverSources(context.Background(), tmpDir, SourceOptions{
		Extensions:   []string{".ts", ".js"},
		IncludeTests: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"src/app.js", "src/card.stories.ts", "src/card.test.ts", "src/card.ts"}, rel(files))
}

func TestDiscoverSources_SingleFile(t *testing.T) {
	tmpDir := t.TempDir()
	makeTree(t, tmpDir, "card.ts")
	path := filepath.Join(tmpDir, "card.ts")

	files, err := DiscoverSources(context.Background(), path, SourceOptions{Extensions: []string{".ts"}})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestDiscoverSources_MissingRoot(t *testing.T) {
	_, err := DiscoverSources(context.Background(), filepath.Join(t.TempDir(), "nope"), SourceOptions{})
	assert.Error(t, err)
}
