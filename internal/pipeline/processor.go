package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jsuh-911/pdf-summarizer/constants"
	"github.com/jsuh-911/pdf-summarizer/internal/categorize"
	"github.com/jsuh-911/pdf-summarizer/internal/extract"
	"github.com/jsuh-911/pdf-summarizer/internal/ingest"
	"github.com/jsuh-911/pdf-summarizer/internal/llm"
	"github.com/jsuh-911/pdf-summarizer/internal/naming"
	"github.com/jsuh-911/pdf-summarizer/internal/repository"
)

// Options tunes a Processor. Zero values get sensible defaults.
type Options struct {
	OutputDir      string
	KeywordCount   int
	LLMKeywords    bool // prefer model keywords over the statistical extractor
	PersistEnabled bool
}

// Processor runs the full per-file flow: extract, summarize, score, fuse,
// name, write the JSON artifact, and optionally persist.
type Processor struct {
	extractor  extract.TextExtractor
	summarizer llm.Summarizer // nil disables all model-backed signals
	keywords   *categorize.KeywordExtractor
	matcher    *categorize.Matcher
	similarity *categorize.SimilarityScorer
	fusion     *categorize.Fusion
	taxonomy   *categorize.Taxonomy
	docs       repository.DocumentRepository // nil when persistence is off
	opts       Options
	log        *slog.Logger
}

func NewProcessor(
	extractor extract.TextExtractor,
	summarizer llm.Summarizer,
	taxonomy *categorize.Taxonomy,
	docs repository.DocumentRepository,
	opts Options,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "./summaries"
	}
	if opts.KeywordCount <= 0 {
		opts.KeywordCount = categorize.DefaultKeywordCount
	}
	return &Processor{
		extractor:  extractor,
		summarizer: summarizer,
		keywords:   categorize.NewKeywordExtractor(),
		matcher:    categorize.NewMatcher(taxonomy),
		similarity: categorize.NewSimilarityScorer(taxonomy),
		fusion:     categorize.NewFusion(taxonomy),
		taxonomy:   taxonomy,
		docs:       docs,
		opts:       opts,
		log:        logger,
	}
}

// ProcessResult is what one file yields.
type ProcessResult struct {
	Record       *Record
	ArtifactPath string
	BaseName     string
	DocumentID   uuid.UUID
}

// ProcessFile runs the pipeline on a single source file.
func (p *Processor) ProcessFile(ctx context.Context, path string) (*ProcessResult, error) {
	start := time.Now()
	p.log.Info("pipeline.start", "path", path)

	hash, err := ingest.HashFile(path)
	if err != nil {
		return nil, fmt.Errorf("hash file: %w", err)
	}

	extraction, err := p.extractor.Extract(ctx, path)
	if err != nil {
		p.log.Error("pipeline.extract_failed", "path", path, "error", err)
		return nil, fmt.Errorf("extract text: %w", err)
	}

	summary := p.summarize(ctx, extraction)
	keywords, kwSources := p.extractKeywords(ctx, extraction.Text)
	result, signals := p.categorize(ctx, extraction.Text, keywords)

	originalBase := strings.TrimSuffix(extraction.Metadata.Filename, filepath.Ext(extraction.Metadata.Filename))
	baseName := naming.DeriveBaseName(summary, originalBase)
	baseName = UniqueBaseName(p.opts.OutputDir, baseName)

	now := time.Now().UTC()
	rec := &Record{
		SourceFile:        extraction.Metadata.Filename,
		ProcessedAt:       now,
		PDFMetadata:       extraction.Metadata,
		ExtractedKeywords: keywords,
		Categorization: Categorization{
			PrimaryCategory: result.Primary,
			CategoryScores:  result.Scores,
		},
		DocumentStats: DocumentStats{
			WordCount:           extraction.WordCount,
			ProcessingTimestamp: now,
		},
	}
	if err := rec.SetSummary(summary); err != nil {
		return nil, err
	}

	artifact, err := WriteRecord(p.opts.OutputDir, baseName, rec)
	if err != nil {
		return nil, fmt.Errorf("write artifact: %w", err)
	}

	out := &ProcessResult{Record: rec, ArtifactPath: artifact, BaseName: baseName}

	if p.docs != nil && p.opts.PersistEnabled {
		doc, err := p.docs.Upsert(ctx, p.saveRequest(path, hash, extraction, summary, keywords, kwSources, result, signals, now))
		if err != nil {
			// The artifact on disk is the source of truth; persistence
			// failures degrade rather than abort.
			p.log.Error("pipeline.persist_failed", "path", path, "error", err)
		} else {
			out.DocumentID = doc.ID
		}
	}

	p.log.Info("pipeline.done",
		"path", path,
		"base_name", baseName,
		"primary_category", result.Primary,
		"summary_kind", string(summary.Kind),
		"keywords", len(keywords),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

func (p *Processor) summarize(ctx context.Context, extraction extract.TextExtractionResult) llm.Summary {
	if p.summarizer == nil {
		return llm.FailedSummary("model disabled")
	}
	summary, _, err := p.summarizer.GenerateSummary(ctx, llm.SummarizeRequest{
		Text:     extraction.Text,
		Filename: extraction.Metadata.Filename,
	})
	if err != nil {
		p.log.Warn("pipeline.summary_failed", "file", extraction.Metadata.Filename, "error", err)
	}
	return summary
}

// extractKeywords returns the keyword list plus a parallel per-keyword source
// slice. With LLMKeywords on, model keywords are merged with the statistical
// set and deduplicated, model terms first.
func (p *Processor) extractKeywords(ctx context.Context, text string) ([]string, []string) {
	local := p.keywords.Extract(text, p.opts.KeywordCount)

	if p.summarizer == nil || !p.opts.LLMKeywords {
		return local, sourcesFor(len(local), "tfidf")
	}
	fromModel, err := p.summarizer.ExtractKeywords(ctx, text, p.opts.KeywordCount)
	if err != nil {
		p.log.Warn("pipeline.llm_keywords_failed", "error", err)
		return local, sourcesFor(len(local), "tfidf")
	}

	seen := make(map[string]struct{}, len(fromModel)+len(local))
	var terms, sources []string
	add := func(kws []string, source string) {
		for _, kw := range kws {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			if _, dup := seen[kw]; dup {
				continue
			}
			seen[kw] = struct{}{}
			terms = append(terms, kw)
			sources = append(sources, source)
		}
	}
	add(fromModel, "llm")
	add(local, "tfidf")
	return terms, sources
}

func sourcesFor(n int, source string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = source
	}
	return out
}

// signalSet keeps the three raw vectors next to the fused result so the
// repository can store the per-signal breakdown.
type signalSet struct {
	model      categorize.ScoreVector
	keyword    categorize.ScoreVector
	similarity categorize.ScoreVector
}

func (p *Processor) categorize(ctx context.Context, text string, keywords []string) (categorize.Result, signalSet) {
	var model categorize.ScoreVector
	if p.summarizer != nil {
		scores, err := p.summarizer.ScoreCategories(ctx, text, keywords, p.taxonomy.IDs())
		if err != nil {
			// Approximate the model signal from keyword overlap rather
			// than dropping it entirely.
			p.log.Warn("pipeline.model_scores_failed", "error", err)
			model = p.matcher.ScoreByOverlap(keywords)
		} else {
			model = categorize.ScoreVector(scores)
		}
	}
	signals := signalSet{
		model:      model,
		keyword:    p.matcher.ScoreByKeywords(keywords),
		similarity: p.similarity.ScoreBySimilarity(text),
	}
	return p.fusion.Combine(signals.model, signals.keyword, signals.similarity), signals
}

func (p *Processor) saveRequest(
	path, hash string,
	extraction extract.TextExtractionResult,
	summary llm.Summary,
	keywords []string,
	kwSources []string,
	result categorize.Result,
	signals signalSet,
	processedAt time.Time,
) *repository.SaveDocumentRequest {
	req := &repository.SaveDocumentRequest{
		SourceFile:      extraction.Metadata.Filename,
		SourcePath:      path,
		FileFormat:      extraction.SourceType,
		ContentHash:     hash,
		Summary:         summary,
		PrimaryCategory: result.Primary,
		WordCount:       extraction.WordCount,
		PageCount:       extraction.Metadata.Pages,
		ProcessedAt:     processedAt,
	}
	originalBase := strings.TrimSuffix(extraction.Metadata.Filename, filepath.Ext(extraction.Metadata.Filename))
	if name := naming.DeriveBaseName(summary, originalBase); name != originalBase {
		req.DerivedName = name
	}
	for i, kw := range keywords {
		req.Keywords = append(req.Keywords, repository.KeywordEntry{Term: kw, Source: kwSources[i]})
	}
	for _, ranked := range result.Ranked(p.taxonomy) {
		req.Scores = append(req.Scores, repository.ScoreEntry{
			Category:   ranked.Category,
			Model:      signals.model[ranked.Category],
			Keyword:    signals.keyword[ranked.Category],
			Similarity: signals.similarity[ranked.Category],
			Final:      ranked.Score,
		})
	}
	return req
}

// SupportedFile reports whether the pipeline can process the path.
func SupportedFile(path string) bool {
	return constants.MapExtToFormat(filepath.Ext(path)) != ""
}
