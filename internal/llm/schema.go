package llm

// BuildSummaryJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. Providers pass it to the model as an output constraint and the
// pipeline uses it locally to validate responses.
func BuildSummaryJSONSchema(allowedTypes []string) map[string]any {
	props := map[string]any{
		"Title":           map[string]any{"type": "string", "minLength": 1},
		"Author(s)":       map[string]any{"type": "string", "minLength": 1},
		"Year Published":  map[string]any{"type": "string"},
		"Journal":         map[string]any{"type": "string"},
		"BibTeX Citation": map[string]any{"type": "string"},
		"Type":            map[string]any{"type": "string"},
		"Categories": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"Sample Size": map[string]any{"type": "string"},
		"Method":      map[string]any{"type": "string"},
		"Key Findings": map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "string"},
		},
		"Prediction Model": map[string]any{"type": "string", "enum": []string{"yes", "no"}},
		"Key Takeaways":    map[string]any{"type": "string"},
	}

	// Constrain the document type if a fixed list is provided.
	if len(allowedTypes) > 0 {
		props["Type"] = map[string]any{
			"type": "string",
			"enum": allowedTypes,
		}
	}

	// Title and authors anchor filename derivation, so the model can't
	// omit them.
	required := []string{"Title", "Author(s)"}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}
