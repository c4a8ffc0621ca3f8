package categorize

import "strings"

// Matcher scores keyword sets against the taxonomy by lexical overlap.
type Matcher struct {
	tax *Taxonomy
}

func NewMatcher(tax *Taxonomy) *Matcher {
	return &Matcher{tax: tax}
}

const (
	exactMatchScore   = 1.0
	partialMatchScore = 0.5
)

// ScoreByKeywords accumulates per-category overlap scores and normalizes the
// result into [0,1] by the maximum category score. A keyword may contribute
// to multiple categories and to multiple phrases within one category. An
// empty keyword set yields the all-zero vector.
func (m *Matcher) ScoreByKeywords(keywords []string) ScoreVector {
	scores := m.tax.ZeroVector()

	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		for _, cat := range m.tax.Categories() {
			for _, phrase := range cat.Phrases {
				switch {
				case phrase == kw:
					scores[cat.ID] += exactMatchScore
				case strings.Contains(phrase, kw) || strings.Contains(kw, phrase):
					scores[cat.ID] += partialMatchScore
				}
			}
		}
	}

	maxScore := 0.0
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}
	if maxScore == 0 {
		maxScore = 1
	}
	for id := range scores {
		scores[id] /= maxScore
	}
	return scores
}

const overlapIncrement = 0.1

// ScoreByOverlap is a coarse stand-in for a model-derived vector when the
// backend cannot produce scores: every substring overlap between a keyword
// and a phrase adds a flat 0.1, then the vector is normalized by its max.
func (m *Matcher) ScoreByOverlap(keywords []string) ScoreVector {
	scores := m.tax.ZeroVector()

	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		for _, cat := range m.tax.Categories() {
			for _, phrase := range cat.Phrases {
				if strings.Contains(phrase, kw) || strings.Contains(kw, phrase) {
					scores[cat.ID] += overlapIncrement
				}
			}
		}
	}

	maxScore := 0.0
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}
	if maxScore > 0 {
		for id := range scores {
			scores[id] /= maxScore
		}
	}
	return scores
}
