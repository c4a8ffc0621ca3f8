package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jsuh-911/pdf-summarizer/constants"
	"github.com/jsuh-911/pdf-summarizer/internal/categorize"
)

// BuildCategoryReport renders a markdown overview of a batch run, grouped by
// primary category in taxonomy order with "uncategorized" last.
func BuildCategoryReport(records []*Record, tax *categorize.Taxonomy, generatedAt time.Time) string {
	groups := make(map[string][]*Record)
	for _, rec := range records {
		cat := rec.Categorization.PrimaryCategory
		groups[cat] = append(groups[cat], rec)
	}

	order := append([]string{}, tax.IDs()...)
	order = append(order, constants.Uncategorized)

	var b strings.Builder
	b.WriteString("# Document Categorization Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", generatedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Documents processed: %d\n\n", len(records))

	for _, cat := range order {
		recs, ok := groups[cat]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "## %s (%d)\n\n", cat, len(recs))

		sort.SliceStable(recs, func(i, j int) bool {
			return recs[i].Categorization.CategoryScores[cat] > recs[j].Categorization.CategoryScores[cat]
		})
		for _, rec := range recs {
			score := rec.Categorization.CategoryScores[cat]
			fmt.Fprintf(&b, "- **%s** (score %.3f)", rec.SourceFile, score)
			if kws := rec.ExtractedKeywords; len(kws) > 0 {
				n := len(kws)
				if n > 5 {
					n = 5
				}
				fmt.Fprintf(&b, " | keywords: %s", strings.Join(kws[:n], ", "))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// WriteCategoryReport writes the report next to the JSON artifacts.
func WriteCategoryReport(dir string, records []*Record, tax *categorize.Taxonomy) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, "category_report.md")
	body := BuildCategoryReport(records, tax, time.Now().UTC())
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
