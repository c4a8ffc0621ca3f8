package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsuh-911/pdf-summarizer/internal/common"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"collapses whitespace", "a\t b\n\n  c", "a b c"},
		{"trims edges", "   hello   ", "hello"},
		{"drops control runes", "a\x00b\x07c", "abc"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.in); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPlainTextExtract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	content := "A Study Of Things\n\nThis   is the body text\nwith several words."
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := NewPlainTextExtractor(nil).Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.SourceType != "TXT" || res.Method != "plain-text" {
		t.Errorf("unexpected source/method: %s/%s", res.SourceType, res.Method)
	}
	if res.Metadata.Title != "A Study Of Things" {
		t.Errorf("title = %q", res.Metadata.Title)
	}
	if res.Metadata.Filename != "doc.txt" {
		t.Errorf("filename = %q", res.Metadata.Filename)
	}
	if res.WordCount != 12 {
		t.Errorf("word count = %d, want 12", res.WordCount)
	}
}

func TestPlainTextExtractEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("  \n\t "), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := NewPlainTextExtractor(nil).Extract(context.Background(), path)
	if err == nil {
		t.Fatal("expected error for whitespace-only file")
	}
	if !errors.Is(err, common.ErrExtraction) {
		t.Errorf("empty file should report an extraction error, got %v", err)
	}
}

func TestRouterUnsupported(t *testing.T) {
	r := NewRouter(nil)
	_, err := r.Extract(context.Background(), "notes.docx")
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("unsupported extension should report invalid input, got %v", err)
	}
}

func TestParseContentStream(t *testing.T) {
	stream := []byte("BT\n/F1 12 Tf\n(Hello) Tj\n72 720 Td\n[(World) -100 (Again)] TJ\nT*\n(Line two) Tj\nET")
	got := parseContentStream(stream)
	for _, want := range []string{"Hello", "World", "Again", "Line two"} {
		if !strings.Contains(got, want) {
			t.Errorf("parsed stream missing %q: %q", want, got)
		}
	}
}

func TestDecodeLiteralString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain`, "plain"},
		{`a\(b\)c`, "a(b)c"},
		{`tab\there`, "tab\there"},
		{`oct\040space`, "oct space"},
		{`back\\slash`, `back\slash`},
	}
	for _, tt := range tests {
		if got := decodeLiteralString([]byte(tt.in)); got != tt.want {
			t.Errorf("decodeLiteralString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
