package repository

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jsuh-911/pdf-summarizer/gen/ent"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/categoryscore"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/document"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/keyfinding"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/keyword"
	"github.com/jsuh-911/pdf-summarizer/internal/common"
	"github.com/jsuh-911/pdf-summarizer/internal/llm"
)

// KeywordEntry is one ranked keyword to persist.
type KeywordEntry struct {
	Term   string
	Source string // "tfidf" | "frequency" | "llm"
}

// ScoreEntry is the per-category signal breakdown to persist.
type ScoreEntry struct {
	Category   string
	Model      float64
	Keyword    float64
	Similarity float64
	Final      float64
}

// SaveDocumentRequest wraps everything the pipeline produces for one file.
type SaveDocumentRequest struct {
	SourceFile      string
	SourcePath      string
	FileFormat      string
	ContentHash     string
	DerivedName     string
	Summary         llm.Summary
	Keywords        []KeywordEntry
	PrimaryCategory string
	Scores          []ScoreEntry
	WordCount       int
	PageCount       int
	ProcessedAt     time.Time
}

// SearchFilter narrows ListDocuments. Zero values mean "no constraint".
type SearchFilter struct {
	Query    string // matched against title, authors, journal, and keywords
	Category string
	Year     string
	Author   string
	Journal  string
	Limit    int
}

// CategoryCount is one row of the statistics breakdown.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// YearCount is one publication-year row of the statistics breakdown.
type YearCount struct {
	Year  string `json:"year"`
	Count int    `json:"count"`
}

// JournalCount is one journal row of the statistics breakdown.
type JournalCount struct {
	Journal string `json:"journal"`
	Count   int    `json:"count"`
}

// Statistics summarizes the stored corpus.
type Statistics struct {
	TotalDocuments int             `json:"total_documents"`
	AvgWordCount   float64         `json:"avg_word_count"`
	ByCategory     []CategoryCount `json:"by_category"`
	ByYear         []YearCount     `json:"by_year"`
	TopJournals    []JournalCount  `json:"top_journals"`
}

// topJournalLimit caps the journal breakdown in Statistics.
const topJournalLimit = 5

type DocumentRepository interface {
	Upsert(ctx context.Context, req *SaveDocumentRequest) (*ent.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error)
	Search(ctx context.Context, filter SearchFilter) ([]*ent.Document, error)
	Statistics(ctx context.Context) (*Statistics, error)
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &documentRepository{client: client, logger: logger}
}

// Upsert stores the processing result for a file. Re-processing the same
// content (by hash) replaces the previous record and its child rows.
func (r *documentRepository) Upsert(ctx context.Context, req *SaveDocumentRequest) (*ent.Document, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	doc, err := r.upsertInTx(ctx, tx, req)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			r.logger.Error("rollback failed", "error", rerr)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return doc, nil
}

func (r *documentRepository) upsertInTx(ctx context.Context, tx *ent.Tx, req *SaveDocumentRequest) (*ent.Document, error) {
	// Drop any previous record for the same content.
	prev, err := tx.Document.Query().
		Where(document.ContentHash(req.ContentHash)).
		Only(ctx)
	switch {
	case err == nil:
		if _, err := tx.Keyword.Delete().Where(keyword.DocumentID(prev.ID)).Exec(ctx); err != nil {
			return nil, fmt.Errorf("delete keywords: %w", err)
		}
		if _, err := tx.CategoryScore.Delete().Where(categoryscore.DocumentID(prev.ID)).Exec(ctx); err != nil {
			return nil, fmt.Errorf("delete scores: %w", err)
		}
		if _, err := tx.KeyFinding.Delete().Where(keyfinding.DocumentID(prev.ID)).Exec(ctx); err != nil {
			return nil, fmt.Errorf("delete findings: %w", err)
		}
		if err := tx.Document.DeleteOne(prev).Exec(ctx); err != nil {
			return nil, fmt.Errorf("delete document: %w", err)
		}
	case !ent.IsNotFound(err):
		return nil, fmt.Errorf("lookup by hash: %w", err)
	}

	builder := tx.Document.Create().
		SetSourceFile(req.SourceFile).
		SetSourcePath(req.SourcePath).
		SetFileFormat(req.FileFormat).
		SetContentHash(req.ContentHash).
		SetSummaryKind(document.SummaryKind(req.Summary.Kind)).
		SetPrimaryCategory(req.PrimaryCategory).
		SetWordCount(req.WordCount).
		SetProcessedAt(req.ProcessedAt)

	if req.DerivedName != "" {
		builder = builder.SetDerivedName(req.DerivedName)
	}
	if req.PageCount > 0 {
		builder = builder.SetPageCount(req.PageCount)
	}

	switch {
	case req.Summary.IsStructured():
		f := req.Summary.Fields
		builder = builder.
			SetTitle(f.Title).
			SetAuthors(f.Authors)
		if f.YearPublished != "" {
			builder = builder.SetYearPublished(f.YearPublished)
		}
		if f.Journal != "" {
			builder = builder.SetJournal(f.Journal)
		}
		if f.BibTeXCitation != "" {
			builder = builder.SetBibtexCitation(f.BibTeXCitation)
		}
		if f.Type != "" {
			builder = builder.SetDocType(f.Type)
		}
		if f.SampleSize != "" {
			builder = builder.SetSampleSize(f.SampleSize)
		}
		if f.Method != "" {
			builder = builder.SetMethod(f.Method)
		}
		if f.PredictionModel != "" {
			builder = builder.SetPredictionModel(f.PredictionModel)
		}
		if f.KeyTakeaways != "" {
			builder = builder.SetKeyTakeaways(f.KeyTakeaways)
		}
		if len(f.Categories) > 0 {
			builder = builder.SetCategories(f.Categories)
		}
	case req.Summary.Kind == llm.SummaryRaw:
		builder = builder.SetRawSummary(req.Summary.Raw)
	case req.Summary.Kind == llm.SummaryFailed:
		builder = builder.SetRawSummary(req.Summary.Reason)
	}

	doc, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}

	for i, kw := range req.Keywords {
		if _, err := tx.Keyword.Create().
			SetDocumentID(doc.ID).
			SetTerm(kw.Term).
			SetRank(i).
			SetSource(keyword.Source(kw.Source)).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("save keyword %q: %w", kw.Term, err)
		}
	}
	for _, s := range req.Scores {
		if _, err := tx.CategoryScore.Create().
			SetDocumentID(doc.ID).
			SetCategory(s.Category).
			SetModelScore(s.Model).
			SetKeywordScore(s.Keyword).
			SetSimilarityScore(s.Similarity).
			SetFinalScore(s.Final).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("save score %q: %w", s.Category, err)
		}
	}
	if req.Summary.IsStructured() {
		for name, desc := range req.Summary.Fields.KeyFindings {
			if _, err := tx.KeyFinding.Create().
				SetDocumentID(doc.ID).
				SetName(name).
				SetDescription(desc).
				Save(ctx); err != nil {
				return nil, fmt.Errorf("save finding %q: %w", name, err)
			}
		}
	}

	r.logger.Info("document stored",
		"id", doc.ID,
		"source_file", req.SourceFile,
		"primary_category", req.PrimaryCategory,
		"keywords", len(req.Keywords),
	)
	return doc, nil
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error) {
	doc, err := r.client.Document.Query().
		Where(document.ID(id)).
		WithKeywords().
		WithScores().
		WithFindings().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: document %s", common.ErrNotFound, id)
		}
		r.logger.Error("failed to get document", "id", id, "error", err)
		return nil, err
	}
	return doc, nil
}

func (r *documentRepository) Search(ctx context.Context, filter SearchFilter) ([]*ent.Document, error) {
	q := r.client.Document.Query()

	if s := filter.Query; s != "" {
		q = q.Where(document.Or(
			document.TitleContainsFold(s),
			document.AuthorsContainsFold(s),
			document.JournalContainsFold(s),
			document.HasKeywordsWith(keyword.TermContainsFold(s)),
		))
	}
	if filter.Category != "" {
		q = q.Where(document.PrimaryCategory(filter.Category))
	}
	if filter.Year != "" {
		q = q.Where(document.YearPublished(filter.Year))
	}
	if filter.Author != "" {
		q = q.Where(document.AuthorsContainsFold(filter.Author))
	}
	if filter.Journal != "" {
		q = q.Where(document.JournalContainsFold(filter.Journal))
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	docs, err := q.Order(document.ByProcessedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to search documents", "error", err)
		return nil, err
	}
	return docs, nil
}

func (r *documentRepository) Statistics(ctx context.Context) (*Statistics, error) {
	total, err := r.client.Document.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count documents: %w", err)
	}

	var byCategory []struct {
		Category string `json:"primary_category"`
		Count    int    `json:"count"`
	}
	if err := r.client.Document.Query().
		GroupBy(document.FieldPrimaryCategory).
		Aggregate(ent.Count()).
		Scan(ctx, &byCategory); err != nil {
		return nil, fmt.Errorf("group by category: %w", err)
	}

	var avg []struct {
		Avg float64 `json:"mean"`
	}
	if total > 0 {
		if err := r.client.Document.Query().
			Aggregate(ent.Mean(document.FieldWordCount)).
			Scan(ctx, &avg); err != nil {
			return nil, fmt.Errorf("average word count: %w", err)
		}
	}

	var byYear []struct {
		Year  string `json:"year_published"`
		Count int    `json:"count"`
	}
	if err := r.client.Document.Query().
		Where(document.YearPublishedNotNil()).
		GroupBy(document.FieldYearPublished).
		Aggregate(ent.Count()).
		Scan(ctx, &byYear); err != nil {
		return nil, fmt.Errorf("group by year: %w", err)
	}

	var byJournal []struct {
		Journal string `json:"journal"`
		Count   int    `json:"count"`
	}
	if err := r.client.Document.Query().
		Where(document.JournalNotNil()).
		GroupBy(document.FieldJournal).
		Aggregate(ent.Count()).
		Scan(ctx, &byJournal); err != nil {
		return nil, fmt.Errorf("group by journal: %w", err)
	}

	stats := &Statistics{TotalDocuments: total}
	if len(avg) > 0 {
		stats.AvgWordCount = avg[0].Avg
	}
	for _, row := range byCategory {
		stats.ByCategory = append(stats.ByCategory, CategoryCount{
			Category: row.Category,
			Count:    row.Count,
		})
	}
	for _, row := range byYear {
		stats.ByYear = append(stats.ByYear, YearCount{Year: row.Year, Count: row.Count})
	}
	sort.Slice(stats.ByYear, func(i, j int) bool { return stats.ByYear[i].Year < stats.ByYear[j].Year })

	for _, row := range byJournal {
		stats.TopJournals = append(stats.TopJournals, JournalCount{Journal: row.Journal, Count: row.Count})
	}
	sort.SliceStable(stats.TopJournals, func(i, j int) bool {
		return stats.TopJournals[i].Count > stats.TopJournals[j].Count
	})
	if len(stats.TopJournals) > topJournalLimit {
		stats.TopJournals = stats.TopJournals[:topJournalLimit]
	}
	return stats, nil
}
