package categorize

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category is one taxonomy entry: a stable identifier, the lexical phrases
// keyword matching scores against, and a dense descriptive passage the
// similarity scorer vectorizes.
type Category struct {
	ID          string   `yaml:"id"`
	Phrases     []string `yaml:"phrases"`
	Description string   `yaml:"description"`
}

// Taxonomy is the fixed, ordered category set for a process lifetime.
// Declaration order is significant: fusion breaks score ties in favor of
// the earliest declared category. Construct once and pass by reference;
// it is never mutated after NewTaxonomy returns.
type Taxonomy struct {
	categories []Category
	index      map[string]int
}

func NewTaxonomy(categories []Category) (*Taxonomy, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("taxonomy: no categories")
	}
	idx := make(map[string]int, len(categories))
	cats := make([]Category, len(categories))
	for i, c := range categories {
		id := strings.TrimSpace(c.ID)
		if id == "" {
			return nil, fmt.Errorf("taxonomy: category %d has empty id", i)
		}
		if _, dup := idx[id]; dup {
			return nil, fmt.Errorf("taxonomy: duplicate category %q", id)
		}
		phrases := make([]string, 0, len(c.Phrases))
		for _, p := range c.Phrases {
			p = strings.ToLower(strings.TrimSpace(p))
			if p != "" {
				phrases = append(phrases, p)
			}
		}
		cats[i] = Category{ID: id, Phrases: phrases, Description: c.Description}
		idx[id] = i
	}
	return &Taxonomy{categories: cats, index: idx}, nil
}

// LoadTaxonomy reads a category list from a YAML file.
func LoadTaxonomy(path string) (*Taxonomy, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("taxonomy: read %s: %w", path, err)
	}
	var doc struct {
		Categories []Category `yaml:"categories"`
	}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("taxonomy: parse %s: %w", path, err)
	}
	return NewTaxonomy(doc.Categories)
}

// Categories returns the ordered category slice. Callers must not modify it.
func (t *Taxonomy) Categories() []Category {
	return t.categories
}

// IDs returns the category identifiers in declaration order.
func (t *Taxonomy) IDs() []string {
	ids := make([]string, len(t.categories))
	for i, c := range t.categories {
		ids[i] = c.ID
	}
	return ids
}

// Len returns the number of categories.
func (t *Taxonomy) Len() int { return len(t.categories) }

// Contains reports whether id names a taxonomy category.
func (t *Taxonomy) Contains(id string) bool {
	_, ok := t.index[id]
	return ok
}

// ZeroVector returns a fresh all-zero ScoreVector covering every category.
func (t *Taxonomy) ZeroVector() ScoreVector {
	v := make(ScoreVector, len(t.categories))
	for _, c := range t.categories {
		v[c.ID] = 0
	}
	return v
}

// DefaultTaxonomy returns the built-in research-paper taxonomy.
func DefaultTaxonomy() *Taxonomy {
	t, err := NewTaxonomy(defaultCategories)
	if err != nil {
		// defaultCategories is a compile-time constant table; this cannot
		// happen unless the table itself is broken.
		panic(err)
	}
	return t
}

var defaultCategories = []Category{
	{
		ID: "clinical_trial",
		Phrases: []string{
			"clinical trial", "randomized", "controlled trial", "rct", "placebo",
			"double blind", "participants", "intervention", "treatment",
			"efficacy", "safety", "therapeutic",
		},
		Description: "clinical trial randomized controlled trial RCT human participants " +
			"intervention treatment placebo double blind efficacy safety therapeutic",
	},
	{
		ID: "preclinical_models",
		Phrases: []string{
			"animal model", "mouse", "rat", "transgenic", "knockout", "in vivo",
			"preclinical", "disease model", "behavioral", "pharmacokinetics", "toxicity",
		},
		Description: "animal model mouse rat transgenic knockout in vivo preclinical " +
			"experimental disease model behavioral pharmacokinetics toxicity",
	},
	{
		ID: "cellular_studies",
		Phrases: []string{
			"cell culture", "in vitro", "cell line", "primary cells", "stem cells",
			"organoid", "tissue culture", "gene expression", "protein",
			"western blot", "flow cytometry",
		},
		Description: "cell culture in vitro cell line primary cells stem cells organoid " +
			"tissue culture gene expression protein western blot flow cytometry",
	},
	{
		ID: "meta_analysis",
		Phrases: []string{
			"meta analysis", "systematic review", "pooled analysis", "forest plot",
			"heterogeneity", "odds ratio", "risk ratio", "confidence interval",
			"cochrane", "prisma",
		},
		Description: "meta analysis systematic review pooled analysis forest plot " +
			"heterogeneity odds ratio risk ratio confidence interval cochrane prisma",
	},
	{
		ID: "review_article",
		Phrases: []string{
			"review", "literature review", "narrative review", "perspective",
			"commentary", "overview", "current understanding", "recent advances",
			"future directions",
		},
		Description: "review literature review narrative review perspective commentary " +
			"overview state of the art current understanding recent advances future directions",
	},
}
