// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/madfam-io/ec0249/pkg/types"
)

// PDFExtractor extracts page text through github.com/ledongthuc/pdf.
type PDFExtractor struct{}

// NewPDFExtractor creates the default extraction backend.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// ExtractFile opens the PDF at path and collects trimmed text for every
// page that has any. Pages with no text layer contribute no record, so
// the returned page numbers may be non-contiguous.
func (e *PDFExtractor) ExtractFile(path string) (records []types.PageRecord, err error) {
	// The pdf library panics on some malformed files; recover so a bad
	// document fails like any other extraction error.
	defer func() {
		if r := recover(); r != nil {
			records = nil
			err = fmt.Errorf("pdf library panic: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extracting page %d: %w", i, err)
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		records = append(records, types.PageRecord{Page: i, Content: text})
	}
	return records, nil
}
