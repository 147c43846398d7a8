// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan enumerates the PDF files of a reference directory.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// pdfSuffix is matched case-sensitively, as the original corpus layout
// names every reference file with a lowercase extension.
const pdfSuffix = ".pdf"

// ListPDFs returns the full paths of the *.pdf entries directly under
// dir. Subdirectories are not descended into. The order is whatever the
// filesystem yields; callers must not rely on it. A missing or
// unreadable directory is a fatal condition and is returned as an error.
func ListPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), pdfSuffix) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}
