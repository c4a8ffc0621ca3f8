package categorize

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractEmptyInput(t *testing.T) {
	e := NewKeywordExtractor()

	for _, text := range []string{"", "   ", "\n\t  "} {
		if got := e.Extract(text, 10); len(got) != 0 {
			t.Errorf("Extract(%q) = %v, want empty", text, got)
		}
	}
}

func TestExtractNonPositiveN(t *testing.T) {
	e := NewKeywordExtractor()

	if got := e.Extract("plenty of meaningful scientific content here", 0); got != nil {
		t.Errorf("n=0 should yield nil, got %v", got)
	}
	if got := e.Extract("plenty of meaningful scientific content here", -3); got != nil {
		t.Errorf("n<0 should yield nil, got %v", got)
	}
}

func TestExtractRanksByRelevance(t *testing.T) {
	e := NewKeywordExtractor()

	text := strings.Repeat("dopamine neurons ", 10) + "and a single mention of cerebellum"
	kws := e.Extract(text, 5)
	if len(kws) == 0 {
		t.Fatal("expected keywords")
	}
	if kws[0] != "dopamine" && kws[0] != "neurons" && kws[0] != "dopamine neurons" {
		t.Errorf("dominant term should rank first, got %v", kws)
	}
}

func TestExtractIncludesBigrams(t *testing.T) {
	e := NewKeywordExtractor()

	text := strings.Repeat("machine learning ", 8)
	kws := e.Extract(text, 10)
	found := false
	for _, kw := range kws {
		if kw == "machine learning" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected bigram 'machine learning' in %v", kws)
	}
}

func TestExtractHonorsLimit(t *testing.T) {
	e := NewKeywordExtractor()

	text := "alpha bravo charlie delta echo foxtrot golf hotel india juliet kilo lima"
	if got := e.Extract(text, 3); len(got) > 3 {
		t.Errorf("expected at most 3 keywords, got %d: %v", len(got), got)
	}
}

func TestExtractFallbackEquivalence(t *testing.T) {
	e := NewKeywordExtractor()

	// Every token is a vectorizer stop-word, so the statistical path yields
	// an empty vocabulary and the extractor must fall back. The fallback's
	// own stop list does not contain these tokens, so the two entry points
	// must agree exactly.
	text := "yourself yourselves herself yourself themselves herself yourself"
	got := e.Extract(text, 5)
	want := ExtractByFrequency(text, 5)
	if len(want) == 0 {
		t.Fatal("fallback should produce keywords for this input")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("fallback equivalence violated: Extract=%v ExtractByFrequency=%v", got, want)
	}
}

func TestExtractByFrequency(t *testing.T) {
	tests := []struct {
		name string
		text string
		n    int
		want []string
	}{
		{
			name: "ranks by count",
			text: "neuron neuron neuron synapse synapse axon",
			n:    3,
			want: []string{"neuron", "synapse", "axon"},
		},
		{
			name: "ties keep first-seen order",
			text: "zebra apple zebra apple",
			n:    2,
			want: []string{"zebra", "apple"},
		},
		{
			name: "drops stop words and short tokens",
			text: "the and with cat dog dog",
			n:    5,
			want: nil, // "cat"/"dog" have length 3, filtered by the <=3 rule
		},
		{
			name: "empty text",
			text: "",
			n:    5,
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractByFrequency(tt.text, tt.n)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractKeywordShape(t *testing.T) {
	e := NewKeywordExtractor()

	text := "Randomized clinical trials measure efficacy; biomarkers, like CSF-tau, track progression."
	for _, kw := range e.Extract(text, 10) {
		if kw != strings.ToLower(kw) {
			t.Errorf("keyword %q not lowercased", kw)
		}
		if len(strings.TrimSpace(kw)) <= 2 {
			t.Errorf("keyword %q too short", kw)
		}
	}
}
