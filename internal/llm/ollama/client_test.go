package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsuh-911/pdf-summarizer/internal/common"
	"github.com/jsuh-911/pdf-summarizer/internal/llm"
)

// fakeOllama serves /api/generate with a canned completion and /api/tags with
// a fixed model list.
func fakeOllama(t *testing.T, completion string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/generate":
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, false, body["stream"])
			json.NewEncoder(w).Encode(map[string]any{
				"model":    body["model"],
				"response": completion,
				"done":     true,
			})
		case "/api/tags":
			json.NewEncoder(w).Encode(map[string]any{
				"models": []map[string]any{
					{"name": "llama3.1:8b"},
					{"name": "mistral:7b"},
				},
			})
		default:
			http.NotFound(w, r)
		}
	}))
}

func newTestClient(host string) *Client {
	return NewClient(Config{
		Host:    host,
		Model:   "llama3.1:8b",
		Timeout: 5 * time.Second,
	}, nil)
}

func TestGenerateSummaryStructured(t *testing.T) {
	completion := "Here you go:\n" + `{"Title":"Amyloid clearance","Authors":"Smith J","Year":2023,"Prediction Model":false}`
	srv := fakeOllama(t, completion)
	defer srv.Close()

	sum, raw, err := newTestClient(srv.URL).GenerateSummary(context.Background(), llm.SummarizeRequest{
		Text:     "body text",
		Filename: "paper.pdf",
	})
	require.NoError(t, err)
	require.Equal(t, llm.SummaryStructured, sum.Kind)
	require.NotNil(t, sum.Fields)
	assert.Equal(t, "Amyloid clearance", sum.Fields.Title)
	assert.Equal(t, "Smith J", sum.Fields.Authors)
	assert.Equal(t, "2023", sum.Fields.YearPublished)
	assert.Equal(t, "no", sum.Fields.PredictionModel)
	assert.NotEmpty(t, raw)
}

func TestGenerateSummaryDegradesToRaw(t *testing.T) {
	srv := fakeOllama(t, "I could not find any metadata in this document.")
	defer srv.Close()

	sum, _, err := newTestClient(srv.URL).GenerateSummary(context.Background(), llm.SummarizeRequest{Text: "x"})
	require.NoError(t, err)
	assert.Equal(t, llm.SummaryRaw, sum.Kind)
	assert.Contains(t, sum.Raw, "could not find")
}

func TestGenerateSummarySchemaInvalidDegradesToRaw(t *testing.T) {
	// Missing Author(s) fails validation after sanitize.
	srv := fakeOllama(t, `{"Title":"Only a title"}`)
	defer srv.Close()

	sum, _, err := newTestClient(srv.URL).GenerateSummary(context.Background(), llm.SummarizeRequest{Text: "x"})
	require.NoError(t, err)
	assert.Equal(t, llm.SummaryRaw, sum.Kind)
}

func TestGenerateSummaryTransportFailure(t *testing.T) {
	srv := fakeOllama(t, "")
	srv.Close()

	sum, _, err := newTestClient(srv.URL).GenerateSummary(context.Background(), llm.SummarizeRequest{Text: "x"})
	assert.Error(t, err)
	assert.ErrorIs(t, err, common.ErrLLM)
	assert.Equal(t, llm.SummaryFailed, sum.Kind)
	assert.NotEmpty(t, sum.Reason)
}

func TestExtractKeywords(t *testing.T) {
	srv := fakeOllama(t, "dopamine, neurodegeneration, biomarker")
	defer srv.Close()

	kws, err := newTestClient(srv.URL).ExtractKeywords(context.Background(), "text", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"dopamine", "neurodegeneration", "biomarker"}, kws)
}

func TestScoreCategoriesClamps(t *testing.T) {
	srv := fakeOllama(t, `{"clinical_trial": 1.4, "review_article": -0.2}`)
	defer srv.Close()

	scores, err := newTestClient(srv.URL).ScoreCategories(context.Background(), "text", nil,
		[]string{"clinical_trial", "review_article", "meta_analysis"})
	require.NoError(t, err)
	assert.Equal(t, 1.0, scores["clinical_trial"])
	assert.Equal(t, 0.0, scores["review_article"])
	assert.Equal(t, 0.0, scores["meta_analysis"], "missing category defaults to zero")
}

func TestScoreCategoriesBadPayload(t *testing.T) {
	srv := fakeOllama(t, "no scores today")
	defer srv.Close()

	_, err := newTestClient(srv.URL).ScoreCategories(context.Background(), "text", nil, []string{"a"})
	assert.Error(t, err)
}

func TestIsModelAvailable(t *testing.T) {
	srv := fakeOllama(t, "")
	defer srv.Close()

	ok, err := newTestClient(srv.URL).IsModelAvailable(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)

	c := NewClient(Config{Host: srv.URL, Model: "phi3:mini"}, nil)
	ok, err = c.IsModelAvailable(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}
