package extract

import (
	"context"
	"time"
)

// TextExtractor is Stage 1: file -> text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

// DocumentMetadata carries what the source file itself reports about the
// document. Fields the format cannot provide stay empty.
type DocumentMetadata struct {
	Title    string `json:"title,omitempty"`
	Author   string `json:"author,omitempty"`
	Filename string `json:"filename"`
	Filepath string `json:"filepath"`
	Pages    int    `json:"pages,omitempty"`
}

type TextExtractionResult struct {
	Text       string
	WordCount  int
	Metadata   DocumentMetadata
	SourceType string // "PDF" | "TXT"
	Method     string // "pdf-text" | "plain-text"
	Duration   time.Duration
	Warnings   []string
}
