// Package llm defines the model-facing contracts for structured document
// summarization. Provider packages (e.g. ollama) implement Summarizer; the
// pipeline consumes only these types.
package llm

import "context"

// SummaryKind discriminates the three outcomes of a summary generation
// attempt.
type SummaryKind string

const (
	// SummaryStructured means the model produced a schema-valid object.
	SummaryStructured SummaryKind = "structured"
	// SummaryRaw means the model responded but the payload could not be
	// parsed or validated, so only the raw text survives.
	SummaryRaw SummaryKind = "raw"
	// SummaryFailed means the request itself failed.
	SummaryFailed SummaryKind = "failed"
)

// SummaryFields is the structured summary payload. JSON keys follow the
// report format consumed downstream, so several carry spaces.
type SummaryFields struct {
	Title           string            `json:"Title"`
	Authors         string            `json:"Author(s)"`
	YearPublished   string            `json:"Year Published,omitempty"`
	Journal         string            `json:"Journal,omitempty"`
	BibTeXCitation  string            `json:"BibTeX Citation,omitempty"`
	Type            string            `json:"Type,omitempty"`
	Categories      []string          `json:"Categories,omitempty"`
	SampleSize      string            `json:"Sample Size,omitempty"`
	Method          string            `json:"Method,omitempty"`
	KeyFindings     map[string]string `json:"Key Findings,omitempty"`
	PredictionModel string            `json:"Prediction Model,omitempty"`
	KeyTakeaways    string            `json:"Key Takeaways,omitempty"`
}

// Summary is a tagged union over the three generation outcomes. Exactly one
// of Fields, Raw, or Reason is meaningful, selected by Kind.
type Summary struct {
	Kind   SummaryKind    `json:"kind"`
	Fields *SummaryFields `json:"fields,omitempty"`
	Raw    string         `json:"raw,omitempty"`
	Reason string         `json:"reason,omitempty"`
}

// StructuredSummary wraps schema-valid fields.
func StructuredSummary(f *SummaryFields) Summary {
	return Summary{Kind: SummaryStructured, Fields: f}
}

// RawSummary wraps an unparseable model response.
func RawSummary(text string) Summary {
	return Summary{Kind: SummaryRaw, Raw: text}
}

// FailedSummary records a generation failure.
func FailedSummary(reason string) Summary {
	return Summary{Kind: SummaryFailed, Reason: reason}
}

// IsStructured reports whether the summary carries validated fields.
func (s Summary) IsStructured() bool {
	return s.Kind == SummaryStructured && s.Fields != nil
}

// SummarizeRequest carries the document text and hints for prompt assembly.
type SummarizeRequest struct {
	Text     string
	Filename string
	MaxChars int
}

// Summarizer is the provider contract for all model-backed signals.
type Summarizer interface {
	// GenerateSummary returns the summary outcome plus the raw model
	// payload for auditing. A non-nil error means the request failed and
	// the Summary is of kind SummaryFailed.
	GenerateSummary(ctx context.Context, req SummarizeRequest) (Summary, []byte, error)

	// ExtractKeywords asks the model for up to n lowercase keywords.
	ExtractKeywords(ctx context.Context, text string, n int) ([]string, error)

	// ScoreCategories asks the model to score the text against the given
	// category identifiers, each in [0,1].
	ScoreCategories(ctx context.Context, text string, keywords, categories []string) (map[string]float64, error)
}
