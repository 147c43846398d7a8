// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data model shared across the analysis pipeline.
package types

import (
	"encoding/json"
	"fmt"
)

// PageRecord holds the extracted text of a single PDF page. Records are
// only created for pages that yielded non-empty text, so page numbers in
// a sequence of records may have gaps.
type PageRecord struct {
	// Page is the 1-based page number within the source document.
	Page int `json:"page" yaml:"page"`

	// Content is the page's extracted text, whitespace-trimmed.
	Content string `json:"content" yaml:"content"`
}

// FileResult is the outcome of processing one PDF file: either the
// ordered pages that were extracted, or an error message describing why
// the whole file failed. Exactly one of the two is set.
//
// A FileResult serializes as either a JSON array of page objects or a
// plain JSON string, matching the report format consumers expect.
type FileResult struct {
	Pages []PageRecord
	Err   string
}

// Success builds a FileResult holding extracted pages.
func Success(pages []PageRecord) FileResult {
	return FileResult{Pages: pages}
}

// Failure builds a FileResult holding an error message.
func Failure(msg string) FileResult {
	return FileResult{Err: msg}
}

// Failed reports whether the result is the failure variant.
func (r FileResult) Failed() bool {
	return r.Err != ""
}

// MarshalJSON emits the failure message as a bare string, or the pages
// as an array. A successful result with zero pages marshals as [].
func (r FileResult) MarshalJSON() ([]byte, error) {
	if r.Failed() {
		return json.Marshal(r.Err)
	}
	if r.Pages == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.Pages)
}

// UnmarshalJSON accepts either variant.
func (r *FileResult) UnmarshalJSON(data []byte) error {
	var msg string
	if err := json.Unmarshal(data, &msg); err == nil {
		*r = Failure(msg)
		return nil
	}
	var pages []PageRecord
	if err := json.Unmarshal(data, &pages); err != nil {
		return fmt.Errorf("file result is neither a string nor a page array: %w", err)
	}
	*r = Success(pages)
	return nil
}

// MarshalYAML mirrors the JSON shape for YAML export.
func (r FileResult) MarshalYAML() (any, error) {
	if r.Failed() {
		return r.Err, nil
	}
	if r.Pages == nil {
		return []PageRecord{}, nil
	}
	return r.Pages, nil
}

// AnalysisReport maps each processed filename to its result. A report is
// built once per run; entries are never mutated after insertion.
type AnalysisReport map[string]FileResult

// Failures returns the number of entries holding an error message.
func (rep AnalysisReport) Failures() int {
	n := 0
	for _, r := range rep {
		if r.Failed() {
			n++
		}
	}
	return n
}
