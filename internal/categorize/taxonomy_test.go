package categorize

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewTaxonomyValidation(t *testing.T) {
	if _, err := NewTaxonomy(nil); err == nil {
		t.Error("empty taxonomy should be rejected")
	}
	if _, err := NewTaxonomy([]Category{{ID: ""}}); err == nil {
		t.Error("empty category id should be rejected")
	}
	if _, err := NewTaxonomy([]Category{{ID: "x"}, {ID: "x"}}); err == nil {
		t.Error("duplicate category id should be rejected")
	}
}

func TestTaxonomyNormalizesPhrases(t *testing.T) {
	tax, err := NewTaxonomy([]Category{
		{ID: "a", Phrases: []string{"  Clinical Trial ", "", "RCT"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	got := tax.Categories()[0].Phrases
	if len(got) != 2 || got[0] != "clinical trial" || got[1] != "rct" {
		t.Errorf("phrases not normalized: %v", got)
	}
}

func TestZeroVectorCoversEveryCategory(t *testing.T) {
	tax := DefaultTaxonomy()
	v := tax.ZeroVector()
	if len(v) != tax.Len() {
		t.Fatalf("zero vector has %d entries, taxonomy has %d", len(v), tax.Len())
	}
	for _, id := range tax.IDs() {
		if s, ok := v[id]; !ok || s != 0 {
			t.Errorf("category %s: missing or nonzero (%v, %v)", id, s, ok)
		}
	}
}

func TestDefaultTaxonomyOrder(t *testing.T) {
	ids := DefaultTaxonomy().IDs()
	want := []string{"clinical_trial", "preclinical_models", "cellular_studies", "meta_analysis", "review_article"}
	if len(ids) != len(want) {
		t.Fatalf("got %d categories, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("position %d: got %s, want %s", i, ids[i], want[i])
		}
	}
}

func TestLoadTaxonomy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	doc := `categories:
  - id: oncology
    phrases: ["tumor", "Chemotherapy"]
    description: "tumor growth chemotherapy radiation oncology"
  - id: cardiology
    phrases: ["heart failure"]
    description: "heart failure cardiac arrhythmia"
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	tax, err := LoadTaxonomy(path)
	if err != nil {
		t.Fatalf("LoadTaxonomy: %v", err)
	}
	if tax.Len() != 2 {
		t.Fatalf("expected 2 categories, got %d", tax.Len())
	}
	if !tax.Contains("oncology") || !tax.Contains("cardiology") {
		t.Error("loaded taxonomy missing categories")
	}
	if tax.Categories()[0].Phrases[1] != "chemotherapy" {
		t.Errorf("phrase should be lowercased: %v", tax.Categories()[0].Phrases)
	}
}

func TestLoadTaxonomyMissingFile(t *testing.T) {
	if _, err := LoadTaxonomy(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
