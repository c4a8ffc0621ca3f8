package categorize

import "testing"

func TestScoreBySimilarityEmptyText(t *testing.T) {
	s := NewSimilarityScorer(testTaxonomy(t))

	scores := s.ScoreBySimilarity("   ")
	if len(scores) != 3 {
		t.Fatalf("expected total vector, got %d entries", len(scores))
	}
	for id, v := range scores {
		if v != 0 {
			t.Errorf("category %s: expected 0 for empty text, got %v", id, v)
		}
	}
}

func TestScoreBySimilarityRange(t *testing.T) {
	s := NewSimilarityScorer(testTaxonomy(t))

	texts := []string{
		"a randomized placebo controlled clinical trial of 200 participants",
		"completely unrelated text about medieval architecture and cathedrals",
		"mouse mouse mouse",
	}
	for _, text := range texts {
		for id, v := range s.ScoreBySimilarity(text) {
			if v < 0 || v > 1 {
				t.Errorf("text %q category %s: cosine %v out of [0,1]", text, id, v)
			}
		}
	}
}

func TestScoreBySimilarityTopical(t *testing.T) {
	s := NewSimilarityScorer(testTaxonomy(t))

	// Text echoing the alpha description should score alpha above the others.
	scores := s.ScoreBySimilarity("clinical trial placebo efficacy clinical trial placebo")
	if scores["alpha"] <= scores["beta"] || scores["alpha"] <= scores["gamma"] {
		t.Errorf("alpha should dominate: %v", scores)
	}
	if scores["alpha"] == 0 {
		t.Error("expected a positive similarity for overlapping vocabulary")
	}
}

func TestScoreBySimilarityDefaultTaxonomy(t *testing.T) {
	tax := DefaultTaxonomy()
	s := NewSimilarityScorer(tax)

	scores := s.ScoreBySimilarity(
		"We conducted a meta analysis with forest plot and pooled odds ratio " +
			"across twelve cochrane systematic review sources with heterogeneity testing.")
	if len(scores) != tax.Len() {
		t.Fatalf("vector must cover default taxonomy")
	}
	best, bestScore := "", -1.0
	for id, v := range scores {
		if v > bestScore {
			best, bestScore = id, v
		}
	}
	if best != "meta_analysis" {
		t.Errorf("expected meta_analysis to win, got %s (%v)", best, scores)
	}
}
