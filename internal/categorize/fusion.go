package categorize

import (
	"github.com/jsuh-911/pdf-summarizer/constants"
)

// Signal weights for fusing the three independent category scores.
const (
	ModelWeight      = 0.4
	KeywordWeight    = 0.3
	SimilarityWeight = 0.3
)

// DefaultThreshold is the minimum fused score a category must reach to be
// selected as primary. The comparison is strict less-than: a maximum of
// exactly the threshold is still categorized.
const DefaultThreshold = 0.3

// Result is the final categorization decision for one document: the primary
// category identifier (or the uncategorized sentinel) plus the fused score
// vector that produced it.
type Result struct {
	Primary string
	Scores  ScoreVector
}

// Fusion combines model-derived, keyword-derived, and similarity-derived
// score vectors into one decision. It is pure arithmetic over sanitized
// inputs and cannot fail; partial or empty signals contribute zero.
type Fusion struct {
	tax       *Taxonomy
	threshold float64
}

type FusionOption func(*Fusion)

func WithThreshold(t float64) FusionOption {
	return func(f *Fusion) {
		if t > 0 {
			f.threshold = t
		}
	}
}

func NewFusion(tax *Taxonomy, opts ...FusionOption) *Fusion {
	f := &Fusion{tax: tax, threshold: DefaultThreshold}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Combine fuses the three signals per category and selects the primary one.
// Ties break toward the earliest declared taxonomy category; iteration runs
// over the taxonomy's ordered slice so the decision is reproducible.
func (f *Fusion) Combine(model, keyword, similarity ScoreVector) Result {
	final := make(ScoreVector, f.tax.Len())

	best := ""
	bestScore := 0.0
	for _, cat := range f.tax.Categories() {
		score := ModelWeight*model.sanitized(cat.ID) +
			KeywordWeight*keyword.sanitized(cat.ID) +
			SimilarityWeight*similarity.sanitized(cat.ID)
		final[cat.ID] = score
		if best == "" || score > bestScore {
			best = cat.ID
			bestScore = score
		}
	}

	if bestScore < f.threshold {
		return Result{Primary: constants.Uncategorized, Scores: final}
	}
	return Result{Primary: best, Scores: final}
}

// Ranked returns category/score pairs sorted by descending fused score,
// declaration order within ties.
func (r Result) Ranked(tax *Taxonomy) []RankedScore {
	out := make([]RankedScore, 0, tax.Len())
	for _, cat := range tax.Categories() {
		out = append(out, RankedScore{Category: cat.ID, Score: r.Scores.sanitized(cat.ID)})
	}
	// Insertion sort keeps the declaration-order tie-break stable.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Score > out[j-1].Score; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// RankedScore is one entry of a sorted score summary.
type RankedScore struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}
