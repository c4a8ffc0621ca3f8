// Package naming derives stable author-year base names for processed
// documents from their structured summaries.
package naming

import (
	"strings"

	"github.com/jsuh-911/pdf-summarizer/constants"
	"github.com/jsuh-911/pdf-summarizer/internal/llm"
)

// MaxBaseNameLen caps derived base names so artifact paths stay portable.
const MaxBaseNameLen = 50

var illegalChars = `<>:"/\|?*`

// DeriveBaseName computes the "<LastName>-<Year>" base name for a document.
// Without a structured summary, or when the author field is the "Not
// specified" sentinel, the original identifier is returned unchanged and no
// derivation is attempted.
func DeriveBaseName(summary llm.Summary, originalIdentifier string) string {
	if !summary.IsStructured() {
		return originalIdentifier
	}

	last := firstAuthorLastName(summary.Fields.Authors)
	if last == "" {
		return originalIdentifier
	}

	base := last
	year := strings.TrimSpace(summary.Fields.YearPublished)
	if _, sentinel := constants.YearSentinels[year]; !sentinel {
		base = base + "-" + year
	}
	return Sanitize(base)
}

// firstAuthorLastName extracts the last name of the first listed author.
// Returns "" when nothing usable remains.
func firstAuthorLastName(authors string) string {
	authors = strings.TrimSpace(authors)
	if authors == "" || strings.EqualFold(authors, constants.NotSpecified) {
		return ""
	}

	first := authors
	if idx := strings.Index(authors, " and "); idx >= 0 {
		first = authors[:idx]
	}
	first = strings.TrimSpace(first)

	var last string
	if comma := strings.Index(first, ","); comma >= 0 {
		// "Last, First M." ordering.
		last = first[:comma]
	} else if fields := strings.Fields(first); len(fields) > 0 {
		last = fields[len(fields)-1]
	}
	last = strings.TrimRight(strings.TrimSpace(last), ".,;")
	return strings.TrimSpace(last)
}

// AuthorLastNames returns the last names of up to n listed authors, in
// order. Useful for reports that show "Smith & Jones" style attributions.
func AuthorLastNames(authors string, n int) []string {
	authors = strings.TrimSpace(authors)
	if authors == "" || strings.EqualFold(authors, constants.NotSpecified) || n <= 0 {
		return nil
	}
	var out []string
	for _, entry := range strings.Split(authors, " and ") {
		last := firstAuthorLastName(entry)
		if last == "" {
			continue
		}
		out = append(out, last)
		if len(out) == n {
			break
		}
	}
	return out
}

// Sanitize makes a candidate base name filesystem-safe: illegal characters
// removed, whitespace runs collapsed to single underscores, leading and
// trailing separator noise trimmed, capped at MaxBaseNameLen.
func Sanitize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if strings.ContainsRune(illegalChars, r) {
			continue
		}
		b.WriteRune(r)
	}

	cleaned := strings.Join(strings.Fields(b.String()), "_")
	cleaned = strings.Trim(cleaned, "._-")
	if cleaned == "" {
		return "unknown"
	}
	if len(cleaned) > MaxBaseNameLen {
		cleaned = cleaned[:MaxBaseNameLen]
		cleaned = strings.Trim(cleaned, "._-")
		if cleaned == "" {
			return "unknown"
		}
	}
	return cleaned
}
