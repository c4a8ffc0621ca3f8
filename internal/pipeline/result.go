package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jsuh-911/pdf-summarizer/internal/extract"
	"github.com/jsuh-911/pdf-summarizer/internal/llm"
)

// Categorization is the scoring block of a processed record.
type Categorization struct {
	PrimaryCategory string             `json:"primary_category"`
	CategoryScores  map[string]float64 `json:"category_scores"`
}

// DocumentStats carries corpus-level numbers for a processed record.
type DocumentStats struct {
	WordCount           int       `json:"word_count"`
	ProcessingTimestamp time.Time `json:"processing_timestamp"`
}

// Record is the JSON artifact written for every processed file.
type Record struct {
	SourceFile        string                   `json:"source_file"`
	ProcessedAt       time.Time                `json:"processed_at"`
	PDFMetadata       extract.DocumentMetadata `json:"pdf_metadata"`
	StructuredSummary json.RawMessage          `json:"structured_summary,omitempty"`
	RawSummary        string                   `json:"raw_summary,omitempty"`
	SummaryError      string                   `json:"summary_error,omitempty"`
	ExtractedKeywords []string                 `json:"extracted_keywords"`
	Categorization    Categorization           `json:"categorization"`
	DocumentStats     DocumentStats            `json:"document_stats"`
}

// SetSummary fills the summary slot matching the outcome kind.
func (r *Record) SetSummary(s llm.Summary) error {
	switch s.Kind {
	case llm.SummaryStructured:
		b, err := json.Marshal(s.Fields)
		if err != nil {
			return fmt.Errorf("marshal summary: %w", err)
		}
		r.StructuredSummary = b
	case llm.SummaryRaw:
		r.RawSummary = s.Raw
	case llm.SummaryFailed:
		r.SummaryError = s.Reason
	}
	return nil
}

// WriteRecord persists the record as <baseName>.json under dir. The write
// goes through a temp file in the same directory plus a rename, so readers
// never observe a half-written artifact.
func WriteRecord(dir, baseName string, rec *Record) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal record: %w", err)
	}

	final := filepath.Join(dir, baseName+".json")
	tmp, err := os.CreateTemp(dir, baseName+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, final); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("publish record: %w", err)
	}
	return final, nil
}

// ReadRecord loads a previously written artifact.
func ReadRecord(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode record %s: %w", filepath.Base(path), err)
	}
	return &rec, nil
}

// UniqueBaseName resolves collisions inside dir by appending _2, _3, ...
// before the .json extension.
func UniqueBaseName(dir, baseName string) string {
	candidate := baseName
	for i := 2; ; i++ {
		if _, err := os.Stat(filepath.Join(dir, candidate+".json")); os.IsNotExist(err) {
			return candidate
		}
		candidate = fmt.Sprintf("%s_%d", baseName, i)
	}
}
