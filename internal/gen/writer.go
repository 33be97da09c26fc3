package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes generated files below the output root, creating their
// directories. Files whose content on disk is already identical are left
// untouched. It returns the paths actually written.
func WriteFiles(files []GeneratedFile, outputDir string) ([]string, error) {
	var written []string

	for _, file := range files {
		dir := filepath.Join(outputDir, file.Dir)
		outputPath := filepath.Join(dir, file.Filename)

		if existing, err := os.ReadFile(outputPath); err == nil && bytes.Equal(existing, file.Content) {
			continue
		}

		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return written, fmt.Errorf("creating output directory: %w", err)
		}

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return written, fmt.Errorf("writing file %s: %w", file.Path(), err)
		}

		written = append(written, outputPath)
	}

	return written, nil
}
