package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jsuh-911/pdf-summarizer/internal/categorize"
	"github.com/jsuh-911/pdf-summarizer/internal/extract"
	"github.com/jsuh-911/pdf-summarizer/internal/llm"
)

// fakeSummarizer scripts the three model calls.
type fakeSummarizer struct {
	summary    llm.Summary
	summaryErr error
	keywords   []string
	keywordErr error
	scores     map[string]float64
	scoreErr   error
}

func (f *fakeSummarizer) GenerateSummary(context.Context, llm.SummarizeRequest) (llm.Summary, []byte, error) {
	return f.summary, nil, f.summaryErr
}

func (f *fakeSummarizer) ExtractKeywords(context.Context, string, int) ([]string, error) {
	return f.keywords, f.keywordErr
}

func (f *fakeSummarizer) ScoreCategories(context.Context, string, []string, []string) (map[string]float64, error) {
	return f.scores, f.scoreErr
}

func writeDoc(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const trialText = `A randomized controlled trial of levodopa in early Parkinson disease.
We enrolled 300 participants in a double blind placebo controlled clinical trial
with randomized treatment arms and measured clinical efficacy endpoints.
The randomized placebo controlled design showed treatment efficacy.`

func newTestProcessor(t *testing.T, sum llm.Summarizer, outDir string) *Processor {
	t.Helper()
	return NewProcessor(
		extract.NewRouter(nil),
		sum,
		categorize.DefaultTaxonomy(),
		nil,
		Options{OutputDir: outDir, KeywordCount: 10},
		nil,
	)
}

func TestProcessFileStructuredSummary(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	path := writeDoc(t, dir, "paper_1.txt", trialText)

	sum := &fakeSummarizer{
		summary: llm.StructuredSummary(&llm.SummaryFields{
			Title:         "Levodopa Trial",
			Authors:       "David A. Loeffler",
			YearPublished: "2019",
		}),
		scores: map[string]float64{"clinical_trial": 0.9},
	}
	p := newTestProcessor(t, sum, out)

	res, err := p.ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if res.BaseName != "Loeffler-2019" {
		t.Errorf("base name = %q, want Loeffler-2019", res.BaseName)
	}
	if res.Record.Categorization.PrimaryCategory != "clinical_trial" {
		t.Errorf("primary = %q", res.Record.Categorization.PrimaryCategory)
	}
	if _, err := os.Stat(res.ArtifactPath); err != nil {
		t.Errorf("artifact missing: %v", err)
	}
	if len(res.Record.ExtractedKeywords) == 0 {
		t.Error("expected statistical keywords")
	}
}

func TestProcessFileMergesKeywordSources(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	path := writeDoc(t, dir, "paper_kw.txt", trialText)

	sum := &fakeSummarizer{
		summary:  llm.RawSummary("not json"),
		keywords: []string{"Levodopa", "neuroprotection"},
		scores:   map[string]float64{"clinical_trial": 0.8},
	}
	p := NewProcessor(
		extract.NewRouter(nil),
		sum,
		categorize.DefaultTaxonomy(),
		nil,
		Options{OutputDir: out, KeywordCount: 10, LLMKeywords: true},
		nil,
	)

	res, err := p.ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	kws := res.Record.ExtractedKeywords
	if len(kws) < 3 {
		t.Fatalf("expected model keywords merged with statistical ones, got %v", kws)
	}
	if kws[0] != "levodopa" || kws[1] != "neuroprotection" {
		t.Errorf("model keywords should lead the list, got %v", kws[:2])
	}
	seen := map[string]bool{}
	for _, kw := range kws {
		if seen[kw] {
			t.Errorf("duplicate keyword %q after merge", kw)
		}
		seen[kw] = true
	}
}

func TestProcessFileModelDisabled(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	path := writeDoc(t, dir, "paper_2.txt", trialText)

	p := newTestProcessor(t, nil, out)
	res, err := p.ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	// No model: name falls back to the original identifier.
	if res.BaseName != "paper_2" {
		t.Errorf("base name = %q, want paper_2", res.BaseName)
	}
	if res.Record.SummaryError == "" {
		t.Error("expected a summary error marker")
	}
	// Keyword and similarity signals must still categorize the text.
	if res.Record.Categorization.PrimaryCategory != "clinical_trial" {
		t.Errorf("primary = %q, want clinical_trial from non-model signals",
			res.Record.Categorization.PrimaryCategory)
	}
}

func TestProcessFileLLMFailureDegrades(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	path := writeDoc(t, dir, "paper_3.txt", trialText)

	sum := &fakeSummarizer{
		summary:    llm.FailedSummary("connection refused"),
		summaryErr: errors.New("connection refused"),
		keywordErr: errors.New("connection refused"),
		scoreErr:   errors.New("connection refused"),
	}
	p := NewProcessor(
		extract.NewRouter(nil),
		sum,
		categorize.DefaultTaxonomy(),
		nil,
		Options{OutputDir: out, KeywordCount: 10, LLMKeywords: true},
		nil,
	)

	res, err := p.ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatalf("pipeline must not abort on model failure: %v", err)
	}
	if res.Record.SummaryError == "" {
		t.Error("expected summary error recorded")
	}
	if len(res.Record.ExtractedKeywords) == 0 {
		t.Error("keyword extraction should fall back to the statistical path")
	}
}

func TestProcessFileNameCollision(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")

	sum := &fakeSummarizer{
		summary: llm.StructuredSummary(&llm.SummaryFields{
			Title:         "Same Authors",
			Authors:       "Smith, John A.",
			YearPublished: "2023",
		}),
	}
	p := newTestProcessor(t, sum, out)

	first, err := p.ProcessFile(context.Background(), writeDoc(t, dir, "a.txt", trialText))
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.ProcessFile(context.Background(), writeDoc(t, dir, "b.txt", trialText+" more words"))
	if err != nil {
		t.Fatal(err)
	}
	if first.BaseName != "Smith-2023" {
		t.Errorf("first base = %q", first.BaseName)
	}
	if second.BaseName != "Smith-2023_2" {
		t.Errorf("second base = %q, want Smith-2023_2", second.BaseName)
	}
}

func TestProcessFileUnsupported(t *testing.T) {
	dir := t.TempDir()
	p := newTestProcessor(t, nil, filepath.Join(dir, "out"))
	if _, err := p.ProcessFile(context.Background(), writeDoc(t, dir, "x.docx", "data")); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestBuildCategoryReport(t *testing.T) {
	tax := categorize.DefaultTaxonomy()
	recs := []*Record{
		{
			SourceFile:        "a.pdf",
			ExtractedKeywords: []string{"trial", "placebo"},
			Categorization: Categorization{
				PrimaryCategory: "clinical_trial",
				CategoryScores:  map[string]float64{"clinical_trial": 0.7},
			},
		},
		{
			SourceFile: "b.pdf",
			Categorization: Categorization{
				PrimaryCategory: "uncategorized",
				CategoryScores:  map[string]float64{},
			},
		},
	}

	report := BuildCategoryReport(recs, tax, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	if !strings.Contains(report, "## clinical_trial (1)") {
		t.Errorf("missing clinical_trial section:\n%s", report)
	}
	if !strings.Contains(report, "## uncategorized (1)") {
		t.Errorf("missing uncategorized section:\n%s", report)
	}
	if strings.Index(report, "clinical_trial") > strings.Index(report, "## uncategorized") {
		t.Error("uncategorized should come last")
	}
}
