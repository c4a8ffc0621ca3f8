package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/jsuh-911/pdf-summarizer/constants"
	"github.com/jsuh-911/pdf-summarizer/internal/common"
)

// PDFExtractor pulls text out of PDF content streams via pdfcpu. Scanned
// PDFs without a text layer yield an error rather than empty output.
type PDFExtractor struct {
	log *slog.Logger
}

func NewPDFExtractor(logger *slog.Logger) *PDFExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFExtractor{log: logger}
}

// Extract implements TextExtractor.
func (e *PDFExtractor) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return TextExtractionResult{}, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	pctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return TextExtractionResult{}, fmt.Errorf("%w: pdfcpu read: %w", common.ErrExtraction, err)
	}

	var pages []string
	var warnings []string
	for pageNr := 1; pageNr <= pctx.PageCount; pageNr++ {
		if err := ctx.Err(); err != nil {
			return TextExtractionResult{}, err
		}
		text, err := pageText(pctx, pageNr)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("page %d: %v", pageNr, err))
			continue
		}
		if text != "" {
			pages = append(pages, text)
		}
	}
	if len(pages) == 0 {
		return TextExtractionResult{}, fmt.Errorf("%w: no text layer found in %s", common.ErrExtraction, filepath.Base(path))
	}

	full := CleanText(strings.Join(pages, "\n"))
	meta := DocumentMetadata{
		Title:    headingLine(pages[0]),
		Filename: filepath.Base(path),
		Filepath: path,
		Pages:    pctx.PageCount,
	}

	e.log.Info("extract.pdf.ok",
		"file", meta.Filename,
		"pages", pctx.PageCount,
		"chars", len(full),
		"warnings", len(warnings),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return TextExtractionResult{
		Text:       full,
		WordCount:  len(strings.Fields(full)),
		Metadata:   meta,
		SourceType: constants.PDF,
		Method:     "pdf-text",
		Duration:   time.Since(start),
		Warnings:   warnings,
	}, nil
}

func pageText(pctx *model.Context, pageNr int) (string, error) {
	r, err := pdfcpu.ExtractPageContent(pctx, pageNr)
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return parseContentStream(data), nil
}

// literalStringRe matches PDF literal strings: (text here)
var literalStringRe = regexp.MustCompile(`\(([^)]*)\)`)

// parseContentStream walks the operators of a page content stream and
// collects the text-showing ones (Tj, TJ, '), using the positioning
// operators (Td, TD, T*) as word and line separators.
func parseContentStream(data []byte) string {
	var sb strings.Builder
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		switch {
		case bytes.HasSuffix(line, []byte("Tj")), bytes.HasSuffix(line, []byte("TJ")):
			for _, m := range literalStringRe.FindAllSubmatch(line, -1) {
				sb.WriteString(decodeLiteralString(m[1]))
			}
		case bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")):
			for _, m := range literalStringRe.FindAllSubmatch(line, -1) {
				sb.WriteByte('\n')
				sb.WriteString(decodeLiteralString(m[1]))
			}
		case bytes.HasSuffix(line, []byte("Td")), bytes.HasSuffix(line, []byte("TD")):
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
		case bytes.Equal(line, []byte("T*")):
			sb.WriteByte('\n')
		}
	}
	return strings.TrimSpace(sb.String())
}

// decodeLiteralString resolves PDF escape sequences, including octal codes.
func decodeLiteralString(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\', '(', ')':
			sb.WriteByte(raw[i])
		default:
			if raw[i] >= '0' && raw[i] <= '7' {
				val := int(raw[i] - '0')
				for d := 0; d < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; d++ {
					i++
					val = val*8 + int(raw[i]-'0')
				}
				sb.WriteByte(byte(val))
			} else {
				sb.WriteByte(raw[i])
			}
		}
	}
	return sb.String()
}

// headingLine returns the first non-empty line, capped, as a title guess.
func headingLine(pageText string) string {
	for _, line := range strings.Split(pageText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) > 200 {
			line = line[:200]
		}
		return line
	}
	return ""
}
