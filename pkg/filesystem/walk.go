// Package filesystem finds component sources in a project tree.
package filesystem

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
)

// DefaultIgnoreDirs are directories never worth descending into
var DefaultIgnoreDirs = []string{
	"node_modules", "bower_components", ".git", ".svn", ".hg",
	"dist", "build", "out", "coverage", "tmp",
	".idea", ".vscode", ".turbo", ".next",
}

// WalkOptions configures directory traversal behavior
type WalkOptions struct {
	IgnoreDirs     []string // Directory names to skip (default: DefaultIgnoreDirs)
	IgnorePatterns []string // File name patterns to skip, e.g. "*.d.ts"
	IncludeHidden  bool     // Descend into dot directories and report dot files
}

// Walk traverses root, calling visitor for every directory and file that
// survives the ignore rules. Returning filepath.SkipDir from visitor skips
// a directory. The walk stops early when ctx is cancelled.
func Walk(ctx context.Context, root string, opts WalkOptions, visitor func(path string, d fs.DirEntry) error) error {
	ignoreDirs := opts.IgnoreDirs
	if ignoreDirs == nil {
		ignoreDirs = DefaultIgnoreDirs
	}
	skip := make(map[string]bool, len(ignoreDirs))
	for _, name := range ignoreDirs {
		skip[name] = true
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		name := d.Name()
		if path != root {
			if !opts.IncludeHidden && strings.HasPrefix(name, ".") {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() && skip[name] {
				return filepath.SkipDir
			}
		}

		if !d.IsDir() {
			for _, pattern := range opts.IgnorePatterns {
				if matched, _ := filepath.Match(pattern, name); matched {
					return nil
				}
			}
		}

		return visitor(path, d)
	})
}
