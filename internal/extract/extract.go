// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls page text out of PDF files and drives the
// per-file analysis batch. Extraction backends implement the Extractor
// interface; any fault inside a backend is contained to that one file.
package extract

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/madfam-io/ec0249/internal/report"
	"github.com/madfam-io/ec0249/pkg/types"
)

// Extractor pulls per-page text from one PDF file. Implementations
// return records only for pages that yielded non-empty text, in
// document order.
type Extractor interface {
	ExtractFile(path string) ([]types.PageRecord, error)
}

// BatchResult holds the outcome of an analysis run.
type BatchResult struct {
	Succeeded int
	Failed    int
}

// Total returns the number of files processed.
func (r BatchResult) Total() int {
	return r.Succeeded + r.Failed
}

// HasFailures reports whether any file failed extraction.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ProcessFile runs the extractor on one file and converts any error
// into the failure variant. Pages gathered before a fault are
// discarded; a file's result is all-or-nothing.
func ProcessFile(e Extractor, path string) types.FileResult {
	pages, err := e.ExtractFile(path)
	if err != nil {
		return types.Failure(fmt.Sprintf("Error extracting from %s: %v", path, err))
	}
	return types.Success(pages)
}

// ProcessBatch extracts every file in paths sequentially, printing a
// per-file summary to w, and returns the accumulated report keyed by
// base filename. Individual failures are recorded and do not stop the
// run.
func ProcessBatch(e Extractor, paths []string, previewLimit int, w io.Writer) (types.AnalysisReport, BatchResult) {
	rep := make(types.AnalysisReport, len(paths))
	var result BatchResult

	for _, path := range paths {
		name := filepath.Base(path)
		fmt.Fprintf(w, "Processing: %s\n", name)

		fr := ProcessFile(e, path)
		rep[name] = fr

		if fr.Failed() {
			result.Failed++
		} else {
			result.Succeeded++
		}
		report.PrintSummary(w, fr, previewLimit)
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Batch summary: %d succeeded, %d failed (total: %d)\n",
		result.Succeeded, result.Failed, result.Total())
	return rep, result
}
