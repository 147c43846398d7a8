// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders analysis results: per-file console summaries,
// the JSON report document, and an optional YAML export.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/madfam-io/ec0249/pkg/types"
)

const (
	// DefaultPreviewLimit is the console preview length in characters.
	DefaultPreviewLimit = 200

	// FileName is the report document written next to the input directory.
	FileName = "pdf_content_analysis.json"
)

// Preview returns the first limit bytes of s, followed by "..." when s
// is strictly longer than limit. Truncation is byte-indexed and can
// split a multi-byte character; this matches the report format's
// long-standing behavior and is accepted.
func Preview(s string, limit int) string {
	if limit <= 0 {
		limit = DefaultPreviewLimit
	}
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}

// PrintSummary writes the console summary for one file's result: page
// count and a first-page preview on success, the error message verbatim
// on failure.
func PrintSummary(w io.Writer, r types.FileResult, previewLimit int) {
	if r.Failed() {
		fmt.Fprintf(w, "  - Error: %s\n", r.Err)
		return
	}
	fmt.Fprintf(w, "  - Pages: %d\n", len(r.Pages))
	if len(r.Pages) > 0 {
		fmt.Fprintf(w, "  - First page preview: %s\n", Preview(r.Pages[0].Content, previewLimit))
	}
}

// OutputPath returns the default report location: the parent of the
// input directory, so the report sits beside the corpus rather than
// inside it.
func OutputPath(inputDir string) string {
	return filepath.Join(filepath.Dir(filepath.Clean(inputDir)), FileName)
}

// Write serializes the report as indented UTF-8 JSON at path. Non-ASCII
// characters are preserved literally. The file is written via a
// temporary sibling and renamed into place so a crashed run never
// leaves a half-written report.
func Write(rep types.AnalysisReport, path string) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".report-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp report file: %w", err)
	}
	tmpPath := tmpFile.Name()

	enc := json.NewEncoder(tmpFile)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	encErr := enc.Encode(rep)
	closeErr := tmpFile.Close()
	if encErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("encoding report: %w", encErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp report file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming report into place: %w", err)
	}
	return nil
}

// WriteYAML serializes the report as YAML at path, mirroring the JSON
// structure.
func WriteYAML(rep types.AnalysisReport, path string) error {
	data, err := yaml.Marshal(rep)
	if err != nil {
		return fmt.Errorf("encoding YAML report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing YAML report: %w", err)
	}
	return nil
}
