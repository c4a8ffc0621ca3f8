package categorize

import (
	"math"
	"testing"

	"github.com/jsuh-911/pdf-summarizer/constants"
)

func TestCombineWeights(t *testing.T) {
	f := NewFusion(testTaxonomy(t))

	res := f.Combine(
		ScoreVector{"alpha": 1.0},
		ScoreVector{"alpha": 1.0},
		ScoreVector{"alpha": 1.0},
	)
	if math.Abs(res.Scores["alpha"]-1.0) > 1e-9 {
		t.Errorf("full signals should fuse to 1.0, got %v", res.Scores["alpha"])
	}
	if res.Primary != "alpha" {
		t.Errorf("expected primary alpha, got %s", res.Primary)
	}
}

func TestCombineMissingSignals(t *testing.T) {
	f := NewFusion(testTaxonomy(t))

	// Only the model signal present; the other two default to zero.
	res := f.Combine(ScoreVector{"beta": 1.0}, nil, nil)
	if math.Abs(res.Scores["beta"]-0.4) > 1e-9 {
		t.Errorf("expected 0.4 from model-only signal, got %v", res.Scores["beta"])
	}
	if res.Primary != "beta" {
		t.Errorf("expected beta, got %s", res.Primary)
	}
}

func TestCombineTieBreakDeclarationOrder(t *testing.T) {
	tax, err := NewTaxonomy([]Category{
		{ID: "A", Phrases: []string{"a"}},
		{ID: "B", Phrases: []string{"b"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	f := NewFusion(tax)

	// 0.4 * 0.75 == 0.30 for both: at the threshold, tied, so the first
	// declared category must win on every run.
	for i := 0; i < 100; i++ {
		res := f.Combine(ScoreVector{"A": 0.75, "B": 0.75}, ScoreVector{}, ScoreVector{})
		if res.Primary != "A" {
			t.Fatalf("run %d: tie must resolve to first-declared category, got %s", i, res.Primary)
		}
	}
}

func TestCombineThresholdBoundary(t *testing.T) {
	f := NewFusion(testTaxonomy(t))

	tests := []struct {
		name    string
		model   float64
		primary string
	}{
		// 0.4 * 0.75 == 0.30 exactly: threshold is exclusive, so categorized.
		{"exactly at threshold", 0.75, "alpha"},
		{"just below threshold", 0.749975, constants.Uncategorized},
		{"well below threshold", 0.1, constants.Uncategorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := f.Combine(ScoreVector{"alpha": tt.model}, nil, nil)
			if res.Primary != tt.primary {
				t.Errorf("model=%v: expected %q, got %q (score %v)",
					tt.model, tt.primary, res.Primary, res.Scores["alpha"])
			}
		})
	}
}

func TestCombineMonotonic(t *testing.T) {
	f := NewFusion(testTaxonomy(t))

	base := f.Combine(
		ScoreVector{"alpha": 0.2, "beta": 0.6},
		ScoreVector{"alpha": 0.3},
		ScoreVector{"alpha": 0.1},
	).Scores["alpha"]

	for _, bump := range []float64{0.21, 0.5, 0.9, 1.0} {
		got := f.Combine(
			ScoreVector{"alpha": bump, "beta": 0.6},
			ScoreVector{"alpha": 0.3},
			ScoreVector{"alpha": 0.1},
		).Scores["alpha"]
		if got < base {
			t.Errorf("raising model score to %v lowered fused score: %v < %v", bump, got, base)
		}
		base = got
	}
}

func TestCombineSanitizesGarbage(t *testing.T) {
	f := NewFusion(testTaxonomy(t))

	res := f.Combine(
		ScoreVector{"alpha": math.NaN(), "beta": -5, "gamma": math.Inf(1)},
		nil, nil,
	)
	for id, s := range res.Scores {
		if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
			t.Errorf("category %s: unsanitized score %v", id, s)
		}
	}
	if res.Primary != constants.Uncategorized {
		t.Errorf("garbage-only signals should be uncategorized, got %s", res.Primary)
	}
}

func TestCombineCoversTaxonomy(t *testing.T) {
	tax := testTaxonomy(t)
	f := NewFusion(tax)

	res := f.Combine(ScoreVector{"alpha": 0.9}, nil, nil)
	if len(res.Scores) != tax.Len() {
		t.Fatalf("fused vector must cover the taxonomy: got %d of %d", len(res.Scores), tax.Len())
	}
	for _, id := range tax.IDs() {
		if _, ok := res.Scores[id]; !ok {
			t.Errorf("fused vector missing category %s", id)
		}
	}
}

func TestRanked(t *testing.T) {
	tax := testTaxonomy(t)
	f := NewFusion(tax)

	res := f.Combine(
		ScoreVector{"gamma": 1.0, "alpha": 0.5},
		nil, nil,
	)
	ranked := res.Ranked(tax)
	if ranked[0].Category != "gamma" || ranked[1].Category != "alpha" || ranked[2].Category != "beta" {
		t.Errorf("unexpected ranking order: %+v", ranked)
	}
}

func TestWithThreshold(t *testing.T) {
	f := NewFusion(testTaxonomy(t), WithThreshold(0.9))

	res := f.Combine(ScoreVector{"alpha": 1.0}, ScoreVector{"alpha": 1.0}, ScoreVector{"alpha": 0.5})
	if res.Primary != constants.Uncategorized {
		t.Errorf("score %v below raised threshold should be uncategorized", res.Scores["alpha"])
	}
}
