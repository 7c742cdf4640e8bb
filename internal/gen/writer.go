package gen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory, creating it
// if needed. A file that fails to write does not stop the others; the
// returned error joins every failure.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	var errs []error

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			errs = append(errs, fmt.Errorf("writing file %s: %w", file.Filename, err))
		}
	}

	return errors.Join(errs...)
}
