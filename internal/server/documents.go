package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jsuh-911/pdf-summarizer/gen/ent"
	summarizerpb "github.com/jsuh-911/pdf-summarizer/gen/proto/summarizer/v1"
	"github.com/jsuh-911/pdf-summarizer/internal/common"
	"github.com/jsuh-911/pdf-summarizer/internal/export"
	"github.com/jsuh-911/pdf-summarizer/internal/repository"
)

type DocumentService struct {
	summarizerpb.UnimplementedSummarizerServiceServer
	docs     repository.DocumentRepository
	exporter *export.Service
	logger   *slog.Logger
}

func NewDocumentService(docs repository.DocumentRepository, exporter *export.Service, logger *slog.Logger) *DocumentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentService{
		docs:     docs,
		exporter: exporter,
		logger:   logger,
	}
}

func filterFromRequest(req *summarizerpb.SearchDocumentsRequest) repository.SearchFilter {
	return repository.SearchFilter{
		Query:    strings.TrimSpace(req.GetQuery()),
		Category: strings.TrimSpace(req.GetCategory()),
		Year:     strings.TrimSpace(req.GetYear()),
		Author:   strings.TrimSpace(req.GetAuthor()),
		Journal:  strings.TrimSpace(req.GetJournal()),
		Limit:    int(req.GetLimit()),
	}
}

func (s *DocumentService) SearchDocuments(ctx context.Context, req *summarizerpb.SearchDocumentsRequest) (*summarizerpb.SearchDocumentsResponse, error) {
	filter := filterFromRequest(req)
	s.logger.Info("searching documents", "query", filter.Query, "category", filter.Category)

	docs, err := s.docs.Search(ctx, filter)
	if err != nil {
		s.logger.Error("failed to search documents", "error", err)
		return nil, common.InternalErrorf("search documents: %v", err)
	}

	out := make([]*summarizerpb.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, toPBDocument(d))
	}
	return &summarizerpb.SearchDocumentsResponse{Documents: out}, nil
}

func (s *DocumentService) GetDocument(ctx context.Context, req *summarizerpb.GetDocumentRequest) (*summarizerpb.GetDocumentResponse, error) {
	if strings.TrimSpace(req.GetId()) == "" {
		return nil, common.InvalidArgumentError("id is required")
	}
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		s.logger.Error("invalid document id", "id", req.GetId(), "error", err)
		return nil, common.InvalidArgumentErrorf("id %q is not a UUID", req.GetId())
	}

	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError(fmt.Sprintf("document %s not found", id))
		}
		s.logger.Error("failed to get document", "id", id, "error", err)
		return nil, common.InternalErrorf("get document: %v", err)
	}

	resp := &summarizerpb.GetDocumentResponse{Document: toPBDocument(doc)}
	for _, kw := range doc.Edges.Keywords {
		resp.Keywords = append(resp.Keywords, &summarizerpb.Keyword{
			Term:   kw.Term,
			Rank:   int32(kw.Rank),
			Source: string(kw.Source),
		})
	}
	for _, sc := range doc.Edges.Scores {
		resp.Scores = append(resp.Scores, &summarizerpb.CategoryScore{
			Category:        sc.Category,
			ModelScore:      sc.ModelScore,
			KeywordScore:    sc.KeywordScore,
			SimilarityScore: sc.SimilarityScore,
			FinalScore:      sc.FinalScore,
		})
	}
	for _, kf := range doc.Edges.Findings {
		resp.Findings = append(resp.Findings, &summarizerpb.KeyFinding{
			Name:        kf.Name,
			Description: kf.Description,
		})
	}
	return resp, nil
}

func (s *DocumentService) GetStatistics(ctx context.Context, _ *summarizerpb.GetStatisticsRequest) (*summarizerpb.GetStatisticsResponse, error) {
	stats, err := s.docs.Statistics(ctx)
	if err != nil {
		s.logger.Error("failed to compute statistics", "error", err)
		return nil, common.InternalErrorf("statistics: %v", err)
	}

	resp := &summarizerpb.GetStatisticsResponse{
		TotalDocuments: int32(stats.TotalDocuments),
		AvgWordCount:   stats.AvgWordCount,
	}
	for _, c := range stats.ByCategory {
		resp.ByCategory = append(resp.ByCategory, &summarizerpb.CategoryCount{
			Category: c.Category,
			Count:    int32(c.Count),
		})
	}
	for _, y := range stats.ByYear {
		resp.ByYear = append(resp.ByYear, &summarizerpb.YearCount{
			Year:  y.Year,
			Count: int32(y.Count),
		})
	}
	for _, j := range stats.TopJournals {
		resp.TopJournals = append(resp.TopJournals, &summarizerpb.JournalCount{
			Journal: j.Journal,
			Count:   int32(j.Count),
		})
	}
	return resp, nil
}

func (s *DocumentService) ExportDocuments(ctx context.Context, req *summarizerpb.ExportDocumentsRequest) (*summarizerpb.ExportDocumentsResponse, error) {
	if s.exporter == nil {
		return nil, status.Error(codes.Unimplemented, "export service not configured")
	}
	filter := repository.SearchFilter{}
	if req.GetFilter() != nil {
		filter = filterFromRequest(req.GetFilter())
	}

	xlsx, err := s.exporter.ExportDocumentsXLSX(ctx, filter)
	if err != nil {
		s.logger.Error("failed to export documents", "error", err)
		return nil, common.InternalErrorf("export documents: %v", err)
	}
	return &summarizerpb.ExportDocumentsResponse{
		Xlsx:              xlsx,
		SuggestedFilename: "documents-" + time.Now().UTC().Format("20060102") + ".xlsx",
	}, nil
}

func toPBDocument(d *ent.Document) *summarizerpb.Document {
	out := &summarizerpb.Document{
		Id:              d.ID.String(),
		SourceFile:      d.SourceFile,
		PrimaryCategory: d.PrimaryCategory,
		SummaryKind:     string(d.SummaryKind),
		WordCount:       int32(d.WordCount),
		PageCount:       int32(d.PageCount),
		ProcessedAt:     d.ProcessedAt.Format(time.RFC3339Nano),
	}
	if d.Title != nil {
		out.Title = *d.Title
	}
	if d.Authors != nil {
		out.Authors = *d.Authors
	}
	if d.YearPublished != nil {
		out.YearPublished = *d.YearPublished
	}
	if d.Journal != nil {
		out.Journal = *d.Journal
	}
	if d.DocType != nil {
		out.DocType = *d.DocType
	}
	if d.DerivedName != nil {
		out.DerivedName = *d.DerivedName
	}
	return out
}
