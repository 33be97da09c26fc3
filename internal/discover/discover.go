// Package discover finds model documents on disk.
package discover

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"model-generator/internal/compiler"
)

// Find returns the slash-separated paths below root matching pattern, sorted.
func Find(root, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}

	matches, err := doublestar.Glob(os.DirFS(root), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("searching %s: %w", root, err)
	}

	sort.Strings(matches)

	return matches, nil
}

// Match reports whether a slash-separated path relative to the root is
// selected by pattern.
func Match(pattern, rel string) bool {
	ok, err := doublestar.Match(pattern, filepath.ToSlash(rel))

	return err == nil && ok
}

// Load reads the documents at the given paths below root into units. The unit
// ID is the relative path. Unreadable files fail the whole load.
func Load(ctx context.Context, root string, paths []string) ([]compiler.Unit, error) {
	units := make([]compiler.Unit, 0, len(paths))

	for _, rel := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", rel, err)
		}

		units = append(units, compiler.Unit{ID: rel, Text: string(data)})
	}

	return units, nil
}
