package categorize

import "strings"

// SimilarityScorer scores raw text against the taxonomy's category
// descriptions via TF-IDF cosine similarity. It catches paraphrased or
// jargon-heavy text that never mentions a taxonomy phrase verbatim.
type SimilarityScorer struct {
	tax *Taxonomy
	vec *vectorizer
}

func NewSimilarityScorer(tax *Taxonomy) *SimilarityScorer {
	return &SimilarityScorer{tax: tax, vec: newVectorizer(1000)}
}

// ScoreBySimilarity builds one shared term-weight space over the input text
// and every category description, then takes the cosine between the text and
// each description as that category's score. Any failure degrades to the
// all-zero vector; this signal is never allowed to sink a document.
func (s *SimilarityScorer) ScoreBySimilarity(text string) ScoreVector {
	scores := s.tax.ZeroVector()
	if strings.TrimSpace(text) == "" {
		return scores
	}

	cats := s.tax.Categories()
	docs := make([]string, 0, len(cats)+1)
	docs = append(docs, text)
	for _, c := range cats {
		docs = append(docs, c.Description)
	}

	m, err := s.vec.fitTransform(docs)
	if err != nil {
		return scores
	}
	for i, c := range cats {
		scores[c.ID] = m.cosine(0, i+1)
	}
	return scores
}
