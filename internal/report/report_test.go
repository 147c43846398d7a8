// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/madfam-io/ec0249/pkg/types"
)

func TestPreview(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "short text unmodified",
			in:   "hello",
			want: "hello",
		},
		{
			name: "exactly 200 characters keeps full text",
			in:   strings.Repeat("x", 200),
			want: strings.Repeat("x", 200),
		},
		{
			name: "201 characters truncates with ellipsis",
			in:   strings.Repeat("x", 201),
			want: strings.Repeat("x", 200) + "...",
		},
		{
			name: "empty text",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preview(tt.in, DefaultPreviewLimit); got != tt.want {
				t.Errorf("Preview() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintSummary(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var buf bytes.Buffer
		PrintSummary(&buf, types.Success([]types.PageRecord{
			{Page: 1, Content: "introduction text"},
			{Page: 2, Content: "more"},
		}), DefaultPreviewLimit)

		out := buf.String()
		if !strings.Contains(out, "Pages: 2") {
			t.Errorf("missing page count: %q", out)
		}
		if !strings.Contains(out, "First page preview: introduction text") {
			t.Errorf("missing preview: %q", out)
		}
	})

	t.Run("failure message verbatim", func(t *testing.T) {
		var buf bytes.Buffer
		PrintSummary(&buf, types.Failure("Error extracting from x.pdf: broken"), DefaultPreviewLimit)

		if !strings.Contains(buf.String(), "Error extracting from x.pdf: broken") {
			t.Errorf("missing verbatim message: %q", buf.String())
		}
	})
}

func TestOutputPath(t *testing.T) {
	got := OutputPath(filepath.Join("labspace", "ec0249", "reference", "raw"))
	want := filepath.Join("labspace", "ec0249", "reference", FileName)
	if got != want {
		t.Errorf("OutputPath() = %q, want %q", got, want)
	}
}

func TestWrite(t *testing.T) {
	rep := types.AnalysisReport{
		"a.pdf": types.Success([]types.PageRecord{
			{Page: 1, Content: "Módulo uno — consultoría"},
			{Page: 2, Content: "second"},
		}),
		"b.pdf": types.Failure("Error extracting from b.pdf: bad xref"),
	}

	path := filepath.Join(t.TempDir(), FileName)
	if err := Write(rep, path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	// Non-ASCII must survive literally, not as \u escapes.
	if !strings.Contains(string(data), "Módulo uno") {
		t.Error("non-ASCII content was escaped")
	}
	if strings.Contains(string(data), `\u`) {
		t.Errorf("output contains numeric escapes:\n%s", data)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("decoded %d keys, want 2", len(decoded))
	}
	if !bytes.HasPrefix(bytes.TrimSpace(decoded["a.pdf"]), []byte("[")) {
		t.Error("a.pdf should serialize as an array")
	}
	if !bytes.HasPrefix(bytes.TrimSpace(decoded["b.pdf"]), []byte(`"`)) {
		t.Error("b.pdf should serialize as a string")
	}

	// Round trip through the typed report.
	var back types.AnalysisReport
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if len(back["a.pdf"].Pages) != 2 || back["a.pdf"].Pages[0].Page != 1 {
		t.Errorf("round-tripped pages = %+v", back["a.pdf"].Pages)
	}
	if back["b.pdf"].Err != "Error extracting from b.pdf: bad xref" {
		t.Errorf("round-tripped error = %q", back["b.pdf"].Err)
	}
}

func TestWrite_Idempotent(t *testing.T) {
	rep := types.AnalysisReport{
		"z.pdf": types.Success([]types.PageRecord{{Page: 1, Content: "stable"}}),
		"a.pdf": types.Failure("Error extracting from a.pdf: nope"),
	}

	dir := t.TempDir()
	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")
	if err := Write(rep, first); err != nil {
		t.Fatal(err)
	}
	if err := Write(rep, second); err != nil {
		t.Fatal(err)
	}

	d1, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	d2, err := os.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(d1, d2) {
		t.Error("two writes of the same report differ")
	}
}

func TestWriteYAML(t *testing.T) {
	rep := types.AnalysisReport{
		"a.pdf": types.Success([]types.PageRecord{{Page: 1, Content: "hola"}}),
		"b.pdf": types.Failure("Error extracting from b.pdf: bad"),
	}

	path := filepath.Join(t.TempDir(), "report.yaml")
	if err := WriteYAML(rep, path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "a.pdf:") || !strings.Contains(out, "page: 1") {
		t.Errorf("YAML missing success entry:\n%s", out)
	}
	if !strings.Contains(out, "Error extracting from b.pdf") {
		t.Errorf("YAML missing failure entry:\n%s", out)
	}
}
