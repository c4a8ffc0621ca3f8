package llm

import (
	"fmt"
	"strings"
)

// DefaultMaxChars bounds how much document text a single prompt carries.
const DefaultMaxChars = 8000

// BuildSummaryPrompt composes the structured-summary instruction. The model
// must answer with a single JSON object matching BuildSummaryJSONSchema.
func BuildSummaryPrompt(req SummarizeRequest) string {
	maxChars := req.MaxChars
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}

	var b strings.Builder
	b.WriteString("You are a research paper analyst. Return ONLY a JSON object with these keys:\n")
	b.WriteString(`"Title", "Author(s)", "Year Published", "Journal", "BibTeX Citation", "Type", ` +
		`"Categories", "Sample Size", "Method", "Key Findings", "Prediction Model", "Key Takeaways".` + "\n")
	b.WriteString("Rules:\n")
	b.WriteString("- \"Author(s)\" lists the authors as written in the paper, separated by \" and \". If unknown, use \"Not specified\".\n")
	b.WriteString("- \"Year Published\" is a 4-digit year string. If unknown, use \"Not specified\".\n")
	b.WriteString("- \"Key Findings\" is an object mapping short finding names to one-sentence descriptions.\n")
	b.WriteString("- \"Prediction Model\" is \"yes\" if the paper builds or evaluates a predictive model, otherwise \"no\".\n")
	b.WriteString("- Never output null. If a field is not present, omit it.\n")

	if f := strings.TrimSpace(req.Filename); f != "" {
		b.WriteString("Filename: " + f + "\n")
	}

	text := req.Text
	b.WriteString("\nDocument text")
	if len(text) > maxChars {
		text = text[:maxChars]
		fmt.Fprintf(&b, " (first %d chars)", maxChars)
	}
	b.WriteString(":\n")
	b.WriteString(text)
	return b.String()
}

// BuildKeywordsPrompt asks for a flat comma-separated keyword list.
func BuildKeywordsPrompt(text string, n int) string {
	if len(text) > DefaultMaxChars {
		text = text[:DefaultMaxChars]
	}
	return fmt.Sprintf(
		"Extract the %d most important keywords and key phrases from this research text. "+
			"Return ONLY a comma-separated list, lowercase, no numbering and no commentary.\n\nText:\n%s",
		n, text)
}

// BuildCategoryScoresPrompt asks the model to score the text against each
// category identifier, returning a JSON object of category -> score.
func BuildCategoryScoresPrompt(text string, keywords, categories []string) string {
	if len(text) > DefaultMaxChars {
		text = text[:DefaultMaxChars]
	}
	var b strings.Builder
	b.WriteString("Score how strongly this research text belongs to each category, 0.0 to 1.0.\n")
	b.WriteString("Categories: " + strings.Join(categories, ", ") + "\n")
	if len(keywords) > 0 {
		b.WriteString("Extracted keywords: " + strings.Join(keywords, ", ") + "\n")
	}
	b.WriteString("Return ONLY a JSON object mapping every category name to a number, e.g. ")
	b.WriteString(`{"` + categories[0] + `": 0.8}` + ".\n\nText:\n")
	b.WriteString(text)
	return b.String()
}
