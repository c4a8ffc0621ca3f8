package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jsuh-911/pdf-summarizer/internal/extract"
	"github.com/jsuh-911/pdf-summarizer/internal/llm"
)

func sampleRecord() *Record {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &Record{
		SourceFile:  "paper.pdf",
		ProcessedAt: now,
		PDFMetadata: extract.DocumentMetadata{
			Filename: "paper.pdf",
			Filepath: "/in/paper.pdf",
			Pages:    12,
		},
		ExtractedKeywords: []string{"dopamine", "biomarker"},
		Categorization: Categorization{
			PrimaryCategory: "clinical_trial",
			CategoryScores:  map[string]float64{"clinical_trial": 0.62},
		},
		DocumentStats: DocumentStats{WordCount: 4200, ProcessingTimestamp: now},
	}
}

func TestWriteRecordRoundTrip(t *testing.T) {
	dir := t.TempDir()
	rec := sampleRecord()
	if err := rec.SetSummary(llm.StructuredSummary(&llm.SummaryFields{
		Title:   "A Trial",
		Authors: "David A. Loeffler",
	})); err != nil {
		t.Fatal(err)
	}

	path, err := WriteRecord(dir, "Loeffler-2019", rec)
	if err != nil {
		t.Fatalf("WriteRecord: %v", err)
	}
	if filepath.Base(path) != "Loeffler-2019.json" {
		t.Errorf("unexpected artifact name: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got Record
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	if got.SourceFile != "paper.pdf" || got.Categorization.PrimaryCategory != "clinical_trial" {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if !strings.Contains(string(data), `"Author(s)"`) {
		t.Error("structured summary should use report-format keys")
	}

	// No temp droppings left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the artifact in dir, found %d entries", len(entries))
	}
}

func TestSetSummaryVariants(t *testing.T) {
	rec := sampleRecord()
	if err := rec.SetSummary(llm.RawSummary("free text")); err != nil {
		t.Fatal(err)
	}
	if rec.RawSummary != "free text" || rec.StructuredSummary != nil {
		t.Errorf("raw summary not recorded: %+v", rec)
	}

	rec = sampleRecord()
	if err := rec.SetSummary(llm.FailedSummary("connection refused")); err != nil {
		t.Fatal(err)
	}
	if rec.SummaryError != "connection refused" {
		t.Errorf("failure reason not recorded: %+v", rec)
	}
}

func TestUniqueBaseName(t *testing.T) {
	dir := t.TempDir()
	if got := UniqueBaseName(dir, "Smith-2023"); got != "Smith-2023" {
		t.Errorf("fresh name should be unchanged, got %q", got)
	}
	for _, name := range []string{"Smith-2023.json", "Smith-2023_2.json"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if got := UniqueBaseName(dir, "Smith-2023"); got != "Smith-2023_3" {
		t.Errorf("expected Smith-2023_3, got %q", got)
	}
}
