package categorize

import (
	"testing"
)

func testTaxonomy(t *testing.T) *Taxonomy {
	t.Helper()
	tax, err := NewTaxonomy([]Category{
		{ID: "alpha", Phrases: []string{"clinical trial", "placebo"}, Description: "clinical trial placebo efficacy"},
		{ID: "beta", Phrases: []string{"mouse", "animal model"}, Description: "mouse rat animal model in vivo"},
		{ID: "gamma", Phrases: []string{"systematic review"}, Description: "systematic review pooled analysis"},
	})
	if err != nil {
		t.Fatalf("NewTaxonomy: %v", err)
	}
	return tax
}

func TestScoreByKeywordsEmpty(t *testing.T) {
	m := NewMatcher(testTaxonomy(t))

	scores := m.ScoreByKeywords(nil)
	if len(scores) != 3 {
		t.Fatalf("expected total vector over 3 categories, got %d entries", len(scores))
	}
	for id, s := range scores {
		if s != 0 {
			t.Errorf("category %s: expected 0, got %v", id, s)
		}
	}
}

func TestScoreByKeywordsExactAndPartial(t *testing.T) {
	m := NewMatcher(testTaxonomy(t))

	// "placebo" is an exact phrase hit for alpha; "trial" is a substring of
	// "clinical trial" only.
	scores := m.ScoreByKeywords([]string{"placebo", "trial"})
	if scores["alpha"] != 1.0 {
		t.Errorf("alpha should hold the max normalized score, got %v", scores["alpha"])
	}
	if scores["beta"] != 0 || scores["gamma"] != 0 {
		t.Errorf("unrelated categories should be zero: beta=%v gamma=%v", scores["beta"], scores["gamma"])
	}
}

func TestScoreByKeywordsRange(t *testing.T) {
	m := NewMatcher(testTaxonomy(t))

	cases := [][]string{
		nil,
		{"placebo"},
		{"mouse", "mouse", "systematic review", "clinical"},
		{"zzz", "unrelated", "tokens"},
		{"Placebo", "  MOUSE  "},
	}
	for _, kws := range cases {
		scores := m.ScoreByKeywords(kws)
		for id, s := range scores {
			if s < 0 || s > 1 {
				t.Errorf("keywords %v category %s: score %v out of [0,1]", kws, id, s)
			}
		}
	}
}

func TestScoreByKeywordsCaseInsensitive(t *testing.T) {
	m := NewMatcher(testTaxonomy(t))

	lower := m.ScoreByKeywords([]string{"placebo"})
	upper := m.ScoreByKeywords([]string{"PLACEBO"})
	if lower["alpha"] != upper["alpha"] {
		t.Errorf("case should not matter: %v vs %v", lower["alpha"], upper["alpha"])
	}
}

func TestScoreByOverlap(t *testing.T) {
	m := NewMatcher(testTaxonomy(t))

	// "placebo" overlaps alpha once, "mouse" overlaps beta once; both
	// normalize to the shared max.
	scores := m.ScoreByOverlap([]string{"placebo", "mouse"})
	if scores["alpha"] != 1.0 || scores["beta"] != 1.0 {
		t.Errorf("expected alpha and beta at 1.0, got alpha=%v beta=%v", scores["alpha"], scores["beta"])
	}
	if scores["gamma"] != 0 {
		t.Errorf("gamma should be zero, got %v", scores["gamma"])
	}

	// No overlap at all stays the zero vector, no divide by zero.
	zero := m.ScoreByOverlap([]string{"zzz"})
	for id, s := range zero {
		if s != 0 {
			t.Errorf("category %s: expected 0, got %v", id, s)
		}
	}
}

func TestScoreByKeywordsMultiCategory(t *testing.T) {
	tax, err := NewTaxonomy([]Category{
		{ID: "a", Phrases: []string{"model"}},
		{ID: "b", Phrases: []string{"animal model"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	m := NewMatcher(tax)

	// One keyword hits both categories: exact on a, substring on b.
	scores := m.ScoreByKeywords([]string{"model"})
	if scores["a"] != 1.0 {
		t.Errorf("a: expected 1.0 after normalization, got %v", scores["a"])
	}
	if scores["b"] != 0.5 {
		t.Errorf("b: expected 0.5 after normalization, got %v", scores["b"])
	}
}
