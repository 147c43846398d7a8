// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestListPDFs(t *testing.T) {
	tmpDir := t.TempDir()

	files := []string{"guide.pdf", "manual.pdf", "notes.txt", "SCAN.PDF", "archive.pdf.bak"}
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	// A subdirectory, even one ending in .pdf, must be skipped.
	if err := os.MkdirAll(filepath.Join(tmpDir, "nested.pdf"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "nested.pdf", "inner.pdf"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	paths, err := ListPDFs(tmpDir)
	if err != nil {
		t.Fatalf("ListPDFs: %v", err)
	}

	got := make([]string, len(paths))
	for i, p := range paths {
		got[i] = filepath.Base(p)
	}
	sort.Strings(got)

	want := []string{"guide.pdf", "manual.pdf"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}

func TestListPDFs_EmptyDirectory(t *testing.T) {
	paths, err := ListPDFs(t.TempDir())
	if err != nil {
		t.Fatalf("ListPDFs: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("expected no paths, got %v", paths)
	}
}

func TestListPDFs_MissingDirectory(t *testing.T) {
	_, err := ListPDFs(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}
