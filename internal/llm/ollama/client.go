package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jsuh-911/pdf-summarizer/internal/common"
	"github.com/jsuh-911/pdf-summarizer/internal/llm"
)

// generateResponse is the non-streaming /api/generate reply.
type generateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// GenerateSummary implements llm.Summarizer. A transport failure yields a
// SummaryFailed plus the error; an unparseable or schema-invalid payload
// degrades to SummaryRaw with no error so the caller can keep the text.
func (c *Client) GenerateSummary(ctx context.Context, req llm.SummarizeRequest) (llm.Summary, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	if req.MaxChars <= 0 {
		req.MaxChars = c.cfg.MaxChars
	}
	c.log.Info("llm.summary.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(req.Text),
		"filename", req.Filename,
	)

	content, err := c.generate(ctx, llm.BuildSummaryPrompt(req))
	if err != nil {
		c.log.Error("llm.summary.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.FailedSummary(err.Error()), nil, err
	}

	obj, err := llm.ExtractJSONObject(content)
	if err != nil {
		c.log.Warn("llm.summary.no_json_object",
			"req_id", rid, "content_len", len(content),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.RawSummary(content), []byte(content), nil
	}
	rawContent := []byte(obj)

	// Sanitize first (synonym keys, numeric years), then validate strictly.
	cleaned, dropped, sErr := llm.NormalizeAndSanitizeJSON(rawContent, c.log)
	if sErr != nil {
		c.log.Warn("llm.summary.sanitize_failed",
			"req_id", rid, "error", sErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.RawSummary(content), rawContent, nil
	}
	if err := llm.ValidateSummaryJSON(cleaned); err != nil {
		c.log.Warn("llm.summary.schema_validation_failed",
			"req_id", rid, "error", err, "dropped", dropped,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.RawSummary(content), rawContent, nil
	}

	var fields llm.SummaryFields
	if err := json.Unmarshal(cleaned, &fields); err != nil {
		c.log.Warn("llm.summary.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.RawSummary(content), cleaned, nil
	}

	c.log.Info("llm.summary.ok",
		"req_id", rid,
		"title", fields.Title,
		"authors", fields.Authors,
		"year", fields.YearPublished,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return llm.StructuredSummary(&fields), cleaned, nil
}

// ExtractKeywords implements llm.Summarizer.
func (c *Client) ExtractKeywords(ctx context.Context, text string, n int) ([]string, error) {
	rid := uuid.New().String()
	start := time.Now()

	content, err := c.generate(ctx, llm.BuildKeywordsPrompt(text, n))
	if err != nil {
		c.log.Error("llm.keywords.http_error", "req_id", rid, "error", err)
		return nil, err
	}

	kws := llm.SplitKeywordList(content, n)
	c.log.Info("llm.keywords.ok",
		"req_id", rid,
		"count", len(kws),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return kws, nil
}

// ScoreCategories implements llm.Summarizer. Scores outside [0,1] are clamped.
func (c *Client) ScoreCategories(ctx context.Context, text string, keywords, categories []string) (map[string]float64, error) {
	if len(categories) == 0 {
		return map[string]float64{}, nil
	}
	rid := uuid.New().String()
	start := time.Now()

	content, err := c.generate(ctx, llm.BuildCategoryScoresPrompt(text, keywords, categories))
	if err != nil {
		c.log.Error("llm.scores.http_error", "req_id", rid, "error", err)
		return nil, err
	}

	obj, err := llm.ExtractJSONObject(content)
	if err != nil {
		c.log.Warn("llm.scores.no_json_object", "req_id", rid, "content_len", len(content))
		return nil, fmt.Errorf("category scores: %w", err)
	}
	var parsed map[string]float64
	if err := json.Unmarshal([]byte(obj), &parsed); err != nil {
		c.log.Warn("llm.scores.decode_error", "req_id", rid, "error", err)
		return nil, fmt.Errorf("decode category scores: %w", err)
	}

	out := make(map[string]float64, len(categories))
	for _, cat := range categories {
		s := parsed[cat]
		if s < 0 {
			s = 0
		}
		if s > 1 {
			s = 1
		}
		out[cat] = s
	}
	c.log.Info("llm.scores.ok",
		"req_id", rid,
		"categories", len(out),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// IsModelAvailable checks the local Ollama instance for the configured model.
func (c *Client) IsModelAvailable(ctx context.Context) (bool, error) {
	models, err := c.ListModels(ctx)
	if err != nil {
		return false, err
	}
	for _, m := range models {
		if m == c.cfg.Model || strings.SplitN(m, ":", 2)[0] == c.cfg.Model {
			return true, nil
		}
	}
	return false, nil
}

// ListModels returns the model tags known to the Ollama instance.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	url := strings.TrimRight(c.cfg.Host, "/") + "/api/tags"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrLLM, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("%w: tags status %d", common.ErrLLM, resp.StatusCode)
	}

	var tags struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	out := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		out = append(out, m.Name)
	}
	return out, nil
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	body := map[string]any{
		"model":  c.cfg.Model,
		"prompt": prompt,
		"stream": false,
		"options": map[string]any{
			"temperature": c.cfg.Temperature,
			"top_p":       0.9,
		},
	}
	url := strings.TrimRight(c.cfg.Host, "/") + "/api/generate"
	raw, _, err := llm.SendJSON(ctx, c.httpClient, url, body, nil, c.log)
	if err != nil {
		return "", err
	}
	var gr generateResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return "", fmt.Errorf("decode ollama response: %w", err)
	}
	return strings.TrimSpace(gr.Response), nil
}
