package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sanitized(t *testing.T, in string) map[string]any {
	t.Helper()
	out, _, err := NormalizeAndSanitizeJSON([]byte(in), nil)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	return m
}

func TestSanitizeRenamesSynonyms(t *testing.T) {
	m := sanitized(t, `{
		"Title": "T",
		"Authors": "Loeffler DA",
		"Year": 2019,
		"Citation": "@article{x}",
		"Findings": {"finding1": "desc"}
	}`)

	assert.Equal(t, "Loeffler DA", m["Author(s)"])
	assert.Equal(t, "2019", m["Year Published"])
	assert.Equal(t, "@article{x}", m["BibTeX Citation"])
	assert.NotContains(t, m, "Authors")
	assert.NotContains(t, m, "Year")
	assert.Contains(t, m, "Key Findings")
}

func TestSanitizeYearCoercion(t *testing.T) {
	assert.Equal(t, "2023", sanitized(t, `{"Title":"T","Author(s)":"A","Year Published":2023}`)["Year Published"])
	assert.Equal(t, "2023", sanitized(t, `{"Title":"T","Author(s)":"A","Year Published":" 2023 "}`)["Year Published"])
	assert.NotContains(t, sanitized(t, `{"Title":"T","Author(s)":"A","Year Published":null}`), "Year Published")
}

func TestSanitizeCategoriesCommaList(t *testing.T) {
	m := sanitized(t, `{"Title":"T","Author(s)":"A","Categories":"clinical_trial, review_article"}`)
	assert.Equal(t, []any{"clinical_trial", "review_article"}, m["Categories"])

	m = sanitized(t, `{"Title":"T","Author(s)":"A","Categories":["  x ", "", "y"]}`)
	assert.Equal(t, []any{"x", "y"}, m["Categories"])

	assert.NotContains(t, sanitized(t, `{"Title":"T","Author(s)":"A","Categories":[]}`), "Categories")
}

func TestSanitizePredictionModel(t *testing.T) {
	assert.Equal(t, "yes", sanitized(t, `{"Title":"T","Author(s)":"A","Prediction Model":true}`)["Prediction Model"])
	assert.Equal(t, "no", sanitized(t, `{"Title":"T","Author(s)":"A","Prediction Model":"False"}`)["Prediction Model"])
	assert.NotContains(t, sanitized(t, `{"Title":"T","Author(s)":"A","Prediction Model":"maybe"}`), "Prediction Model")
}

func TestSanitizeDropsUnknownKeys(t *testing.T) {
	out, dropped, err := NormalizeAndSanitizeJSON([]byte(`{"Title":"T","Author(s)":"A","Confidence":0.9}`), nil)
	require.NoError(t, err)
	assert.Contains(t, dropped, "Confidence(unknown)")
	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.NotContains(t, m, "Confidence")
}

func TestSanitizeKeepsRequiredEvenWhenEmpty(t *testing.T) {
	m := sanitized(t, `{"Title":"  ","Author(s)":"A","Journal":"  "}`)
	assert.Contains(t, m, "Title")
	assert.NotContains(t, m, "Journal")
}

func TestSanitizeInvalidJSON(t *testing.T) {
	_, _, err := NormalizeAndSanitizeJSON([]byte(`not json`), nil)
	assert.Error(t, err)
}

func TestSchemaValidationRoundTrip(t *testing.T) {
	schema, err := CompileSchema(BuildSummaryJSONSchema([]string{"research article", "review"}))
	require.NoError(t, err)

	good := `{
		"Title": "Amyloid clearance in early AD",
		"Author(s)": "Smith J and Jones K",
		"Year Published": "2023",
		"Type": "research article",
		"Categories": ["clinical_trial"],
		"Key Findings": {"finding1": "slower decline"},
		"Prediction Model": "no"
	}`
	sane, _, err := NormalizeAndSanitizeJSON([]byte(good), nil)
	require.NoError(t, err)
	assert.NoError(t, ValidateJSON(schema, sane))

	missingAuthors := `{"Title": "Amyloid clearance"}`
	assert.Error(t, ValidateJSON(schema, []byte(missingAuthors)))

	badType := `{"Title": "T", "Author(s)": "A", "Type": "novel"}`
	assert.Error(t, ValidateJSON(schema, []byte(badType)))
}

func TestValidateSummaryJSONCachedSchema(t *testing.T) {
	doc := []byte(`{"Title":"T","Author(s)":"A"}`)
	require.NoError(t, ValidateSummaryJSON(doc))
	// Second call hits the cached compiled schema.
	require.NoError(t, ValidateSummaryJSON(doc))
	assert.Error(t, ValidateSummaryJSON([]byte(`{"Title":"T"}`)))
	assert.Error(t, ValidateSummaryJSON([]byte(`{"Title":"T","Author(s)":"A","Extra":1}`)))
}
