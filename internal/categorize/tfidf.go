package categorize

import (
	"errors"
	"math"
	"sort"
	"strings"
	"unicode"
)

// errEmptyVocabulary is returned when no term survives tokenization and
// stop-word removal. Callers treat it as a signal to fall back, never as a
// fatal condition.
var errEmptyVocabulary = errors.New("tfidf: empty vocabulary")

// vectorizer builds TF-IDF weighted, L2-normalized term vectors over a small
// document set. Vocabulary covers unigrams and bigrams with English stop-words
// removed, capped at maxFeatures terms by collection frequency.
type vectorizer struct {
	maxFeatures int
}

func newVectorizer(maxFeatures int) *vectorizer {
	if maxFeatures <= 0 {
		maxFeatures = 1000
	}
	return &vectorizer{maxFeatures: maxFeatures}
}

// termMatrix holds the fitted vocabulary and one weight row per input document.
type termMatrix struct {
	terms []string
	rows  [][]float64
}

// fitTransform tokenizes docs, selects the vocabulary, and returns TF-IDF
// rows. IDF uses smoothed document frequencies; rows are L2-normalized so a
// dot product between rows is their cosine similarity.
func (v *vectorizer) fitTransform(docs []string) (*termMatrix, error) {
	if len(docs) == 0 {
		return nil, errEmptyVocabulary
	}

	counts := make([]map[string]int, len(docs))
	total := make(map[string]int)
	df := make(map[string]int)
	for i, doc := range docs {
		counts[i] = countTerms(doc)
		for term, n := range counts[i] {
			total[term] += n
			df[term]++
		}
	}
	if len(total) == 0 {
		return nil, errEmptyVocabulary
	}

	terms := make([]string, 0, len(total))
	for term := range total {
		terms = append(terms, term)
	}
	// Rank by collection frequency, alphabetical within ties, so the
	// vocabulary cut is deterministic.
	sort.Slice(terms, func(i, j int) bool {
		if total[terms[i]] != total[terms[j]] {
			return total[terms[i]] > total[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > v.maxFeatures {
		terms = terms[:v.maxFeatures]
	}
	sort.Strings(terms)

	index := make(map[string]int, len(terms))
	for i, t := range terms {
		index[t] = i
	}

	n := float64(len(docs))
	idf := make([]float64, len(terms))
	for i, t := range terms {
		idf[i] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}

	rows := make([][]float64, len(docs))
	for d := range docs {
		row := make([]float64, len(terms))
		var norm float64
		for term, c := range counts[d] {
			i, ok := index[term]
			if !ok {
				continue
			}
			w := float64(c) * idf[i]
			row[i] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for i := range row {
				row[i] /= norm
			}
		}
		rows[d] = row
	}
	return &termMatrix{terms: terms, rows: rows}, nil
}

// cosine returns the cosine similarity between two fitted rows. Rows are
// already unit length, so this is a plain dot product.
func (m *termMatrix) cosine(a, b int) float64 {
	var dot float64
	for i, w := range m.rows[a] {
		dot += w * m.rows[b][i]
	}
	if math.IsNaN(dot) || dot < 0 {
		return 0
	}
	if dot > 1 {
		return 1
	}
	return dot
}

// countTerms tokenizes one document into stop-filtered unigrams and bigrams.
func countTerms(doc string) map[string]int {
	tokens := tokenize(doc)
	kept := tokens[:0]
	for _, t := range tokens {
		if _, stop := englishStopWords[t]; !stop {
			kept = append(kept, t)
		}
	}
	counts := make(map[string]int, len(kept)*2)
	for i, t := range kept {
		counts[t]++
		if i+1 < len(kept) {
			counts[t+" "+kept[i+1]]++
		}
	}
	return counts
}

// tokenize lowercases and splits on non-alphanumeric runs, keeping tokens of
// two or more characters.
func tokenize(doc string) []string {
	doc = strings.ToLower(doc)
	var tokens []string
	start := -1
	flush := func(end int) {
		if start >= 0 && end-start >= 2 {
			tokens = append(tokens, doc[start:end])
		}
		start = -1
	}
	for i, r := range doc {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(doc))
	return tokens
}
