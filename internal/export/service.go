package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jsuh-911/pdf-summarizer/internal/repository"
)

// Service produces XLSX bytes for document exports.
type Service struct {
	docs   repository.DocumentRepository
	logger *slog.Logger
}

func NewService(docs repository.DocumentRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docs: docs, logger: logger}
}

// ExportDocumentsXLSX returns an XLSX workbook (as bytes) for the documents
// matching the filter.
func (s *Service) ExportDocumentsXLSX(ctx context.Context, filter repository.SearchFilter) ([]byte, error) {
	start := time.Now()

	docs, err := s.docs.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Documents"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Title",
		"Author(s)",
		"Year",
		"Journal",
		"Primary Category",
		"Word Count",
		"Keywords",
		"Source File",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, d := range docs {
		// Keywords need the edge loaded; Search does not eager-load, so
		// fetch the full document.
		var keywords []string
		if full, err := s.docs.GetByID(ctx, d.ID); err == nil {
			for _, kw := range full.Edges.Keywords {
				keywords = append(keywords, kw.Term)
			}
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, deref(d.Title))
		write(2, deref(d.Authors))
		write(3, deref(d.YearPublished))
		write(4, deref(d.Journal))
		write(5, d.PrimaryCategory)
		write(6, d.WordCount)
		write(7, truncate(strings.Join(keywords, ", "), 140))
		write(8, d.SourceFile)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 48) // title
	_ = f.SetColWidth(sheet, "B", "B", 32) // authors
	_ = f.SetColWidth(sheet, "C", "C", 8)  // year
	_ = f.SetColWidth(sheet, "D", "D", 28) // journal
	_ = f.SetColWidth(sheet, "E", "E", 20) // category
	_ = f.SetColWidth(sheet, "F", "F", 12) // word count
	_ = f.SetColWidth(sheet, "G", "G", 48) // keywords
	_ = f.SetColWidth(sheet, "H", "H", 40) // source file

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(docs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
