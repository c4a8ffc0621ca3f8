package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("content of "+name), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestScanDirectory(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"a.pdf",
		"b.txt",
		"notes.docx",
		"sub/c.pdf",
		".hidden/d.pdf",
		".skipme.pdf",
	)

	files, stats, err := ScanDirectory(root, true)
	if err != nil {
		t.Fatalf("ScanDirectory: %v", err)
	}
	if stats.Matched != 3 {
		t.Errorf("matched = %d, want 3 (%v)", stats.Matched, files)
	}
	for _, f := range files {
		base := filepath.Base(f)
		if base == "d.pdf" || base == ".skipme.pdf" || base == "notes.docx" {
			t.Errorf("unexpected file in results: %s", f)
		}
	}
}

func TestScanDirectoryKeepsHidden(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.pdf", ".hidden/d.pdf")

	_, stats, err := ScanDirectory(root, false)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Matched != 2 {
		t.Errorf("matched = %d, want 2", stats.Matched)
	}
}

func TestScanDirectoryEmptyRoot(t *testing.T) {
	if _, _, err := ScanDirectory("   ", true); err == nil {
		t.Error("expected error for blank root")
	}
}

func TestHashFileStable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, []byte("same bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	h1, err := HashFile(path)
	if err != nil {
		t.Fatal(err)
	}
	h2, err := HashFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if h1 != h2 {
		t.Errorf("hash not stable: %s vs %s", h1, h2)
	}
	if len(h1) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(h1))
	}
}

func TestAllowedExt(t *testing.T) {
	tests := []struct {
		ext  string
		want bool
	}{
		{".pdf", true},
		{"PDF", true},
		{".txt", true},
		{".docx", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := AllowedExt(tt.ext); got != tt.want {
			t.Errorf("AllowedExt(%q) = %v, want %v", tt.ext, got, tt.want)
		}
	}
}
