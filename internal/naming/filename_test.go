package naming

import (
	"strings"
	"testing"

	"github.com/jsuh-911/pdf-summarizer/internal/llm"
)

func structured(authors, year string) llm.Summary {
	return llm.StructuredSummary(&llm.SummaryFields{
		Title:         "A Study",
		Authors:       authors,
		YearPublished: year,
	})
}

func TestDeriveBaseName(t *testing.T) {
	tests := []struct {
		name     string
		summary  llm.Summary
		original string
		want     string
	}{
		{
			name:     "simple author with year",
			summary:  structured("David A. Loeffler", "2019"),
			original: "paper_1",
			want:     "Loeffler-2019",
		},
		{
			name:     "comma-form multi author",
			summary:  structured("Smith, John A. and Jones, Mary B.", "2023"),
			original: "paper_2",
			want:     "Smith-2023",
		},
		{
			name:     "author not specified keeps original",
			summary:  structured("Not specified", "2020"),
			original: "research_paper",
			want:     "research_paper",
		},
		{
			name:     "missing year omits suffix",
			summary:  structured("Kimberly C. Paul", ""),
			original: "paper_3",
			want:     "Paul",
		},
		{
			name:     "null year sentinel",
			summary:  structured("Kimberly C. Paul", "null"),
			original: "paper_4",
			want:     "Paul",
		},
		{
			name:     "None year sentinel",
			summary:  structured("Ada Lovelace", "None"),
			original: "paper_5",
			want:     "Lovelace",
		},
		{
			name:     "raw summary keeps original",
			summary:  llm.RawSummary("unparseable text"),
			original: "scan_007",
			want:     "scan_007",
		},
		{
			name:     "failed summary keeps original",
			summary:  llm.FailedSummary("connection refused"),
			original: "scan_008",
			want:     "scan_008",
		},
		{
			name:     "empty author keeps original",
			summary:  structured("   ", "2021"),
			original: "doc_a",
			want:     "doc_a",
		},
		{
			name:     "trailing punctuation trimmed from last name",
			summary:  structured("Maria Garcia;", "2022"),
			original: "doc_b",
			want:     "Garcia-2022",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveBaseName(tt.summary, tt.original); got != tt.want {
				t.Errorf("DeriveBaseName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeriveBaseNameIdempotent(t *testing.T) {
	s := structured("Smith, John A. and Jones, Mary B.", "2023")
	first := DeriveBaseName(s, "orig")
	second := DeriveBaseName(s, first)
	if first != second {
		t.Errorf("derivation not stable: %q then %q", first, second)
	}
}

func TestAuthorLastNames(t *testing.T) {
	got := AuthorLastNames("Smith, John A. and Jones, Mary B. and Brown, Tim", 2)
	if len(got) != 2 || got[0] != "Smith" || got[1] != "Jones" {
		t.Errorf("AuthorLastNames() = %v", got)
	}
	if AuthorLastNames("Not specified", 2) != nil {
		t.Error("sentinel author should yield no names")
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`He said: "no/yes?"`, "He_said_noyes"},
		{"  spaced   out  ", "spaced_out"},
		{"...---", "unknown"},
		{"", "unknown"},
		{"plain-Name_2020", "plain-Name_2020"},
	}
	for _, tt := range tests {
		if got := Sanitize(tt.in); got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeTruncates(t *testing.T) {
	long := strings.Repeat("a", 80)
	if got := Sanitize(long); len(got) != MaxBaseNameLen {
		t.Errorf("expected %d chars, got %d", MaxBaseNameLen, len(got))
	}
}
