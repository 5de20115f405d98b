package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// SourceOptions configures source discovery
type SourceOptions struct {
	Extensions   []string // File extensions to include, with the leading dot
	IgnoreDirs   []string // Directory names to skip (default: DefaultIgnoreDirs)
	IncludeTests bool     // Include *.test.* and *.spec.* files
}

// declarationPatterns never contain runtime decorators
var declarationPatterns = []string{"*.d.ts", "*.d.mts", "*.d.cts"}

var testPatterns = []string{"*.test.*", "*.spec.*", "*.stories.*"}

// DiscoverSources returns the sorted paths of all source files under root
func DiscoverSources(ctx context.Context, root string, opts SourceOptions) ([]string, error) {
	exts := make(map[string]bool, len(opts.Extensions))
	for _, ext := range opts.Extensions {
		exts[strings.ToLower(ext)] = true
	}

	patterns := append([]string(nil), declarationPatterns...)
	if !opts.IncludeTests {
		patterns = append(patterns, testPatterns...)
	}

	var files []string
	err := Walk(ctx, root, WalkOptions{
		IgnoreDirs:     opts.IgnoreDirs,
		IgnorePatterns: patterns,
	}, func(path string, d fs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		if exts[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discovering sources in %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}
