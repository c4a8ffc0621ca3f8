package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/jsuh-911/pdf-summarizer/constants"
	"github.com/jsuh-911/pdf-summarizer/internal/common"
)

// PlainTextExtractor reads .txt sources directly.
type PlainTextExtractor struct {
	log *slog.Logger
}

func NewPlainTextExtractor(logger *slog.Logger) *PlainTextExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlainTextExtractor{log: logger}
}

// Extract implements TextExtractor.
func (e *PlainTextExtractor) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return TextExtractionResult{}, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return TextExtractionResult{}, fmt.Errorf("read text file: %w", err)
	}
	full := CleanText(string(b))
	if full == "" {
		return TextExtractionResult{}, fmt.Errorf("%w: no text content in %s", common.ErrExtraction, filepath.Base(path))
	}

	meta := DocumentMetadata{
		Title:    headingLine(string(b)),
		Filename: filepath.Base(path),
		Filepath: path,
	}
	e.log.Info("extract.text.ok", "file", meta.Filename, "chars", len(full))
	return TextExtractionResult{
		Text:       full,
		WordCount:  len(strings.Fields(full)),
		Metadata:   meta,
		SourceType: constants.TXT,
		Method:     "plain-text",
		Duration:   time.Since(start),
	}, nil
}

// Router picks the extractor for a path by extension.
type Router struct {
	pdf  TextExtractor
	text TextExtractor
}

func NewRouter(logger *slog.Logger) *Router {
	return &Router{
		pdf:  NewPDFExtractor(logger),
		text: NewPlainTextExtractor(logger),
	}
}

// Extract implements TextExtractor by dispatching on the file extension.
func (r *Router) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	switch constants.MapExtToFormat(filepath.Ext(path)) {
	case constants.PDF:
		return r.pdf.Extract(ctx, path)
	case constants.TXT:
		return r.text.Extract(ctx, path)
	default:
		return TextExtractionResult{}, fmt.Errorf("%w: unsupported file type %q", common.ErrInvalidInput, filepath.Ext(path))
	}
}

// CleanText normalizes extracted text: non-printable runes dropped and
// whitespace runs collapsed to single spaces.
func CleanText(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			if !prevSpace && sb.Len() > 0 {
				sb.WriteByte(' ')
				prevSpace = true
			}
		case unicode.IsPrint(r):
			sb.WriteRune(r)
			prevSpace = false
		}
	}
	return strings.TrimSpace(sb.String())
}
