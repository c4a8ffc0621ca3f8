package categorize

import (
	"regexp"
	"sort"
	"strings"
)

// KeywordExtractor produces a ranked list of salient terms from raw text.
// The primary path is single-document TF-IDF; if it cannot produce a usable
// vocabulary the extractor silently falls back to frequency counting. The
// caller never sees an error: degenerate input yields an empty slice.
type KeywordExtractor struct {
	vec *vectorizer
}

func NewKeywordExtractor() *KeywordExtractor {
	return &KeywordExtractor{vec: newVectorizer(1000)}
}

// DefaultKeywordCount matches the original pipeline's per-document keyword cap.
const DefaultKeywordCount = 15

// Extract returns up to n keywords ranked by descending relevance.
func (e *KeywordExtractor) Extract(text string, n int) []string {
	if n <= 0 || strings.TrimSpace(text) == "" {
		return nil
	}
	kws, err := e.extractTFIDF(text, n)
	if err != nil {
		return ExtractByFrequency(text, n)
	}
	return kws
}

func (e *KeywordExtractor) extractTFIDF(text string, n int) ([]string, error) {
	m, err := e.vec.fitTransform([]string{preprocess(text)})
	if err != nil {
		return nil, err
	}
	row := m.rows[0]
	order := make([]int, len(row))
	for i := range order {
		order[i] = i
	}
	// Weight descending; vocabulary order breaks ties deterministically.
	sort.SliceStable(order, func(a, b int) bool {
		return row[order[a]] > row[order[b]]
	})
	kws := make([]string, 0, n)
	for _, i := range order {
		if row[i] <= 0 || len(kws) == n {
			break
		}
		kws = append(kws, m.terms[i])
	}
	return kws, nil
}

var wordRe = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)

// ExtractByFrequency is the deterministic fallback path: lowercase, keep
// alphabetic runs of three or more characters, strip the fixed stop-word set
// and tokens of length <= 3, then rank by count. Ties keep first-seen order.
// Exported so the extraction paths can be compared directly.
func ExtractByFrequency(text string, n int) []string {
	if n <= 0 {
		return nil
	}
	words := wordRe.FindAllString(strings.ToLower(text), -1)

	counts := make(map[string]int)
	var order []string
	for _, w := range words {
		if _, stop := fallbackStopWords[w]; stop || len(w) <= 3 {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}
	return order
}

var (
	wsRe       = regexp.MustCompile(`\s+`)
	nonAlphaRe = regexp.MustCompile(`[^a-zA-Z\s]`)
)

// preprocess normalizes text before vectorization: lowercase, letters and
// spaces only, collapsed whitespace.
func preprocess(text string) string {
	text = strings.ToLower(text)
	text = wsRe.ReplaceAllString(text, " ")
	text = nonAlphaRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
