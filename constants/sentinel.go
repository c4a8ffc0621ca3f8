package constants

// Uncategorized is the terminal category label for documents whose best
// fused score falls below the decision threshold. It is a valid outcome,
// not an error state.
const Uncategorized = "uncategorized"

// NotSpecified is the sentinel the generative backend emits for summary
// fields it could not fill. Comparisons against it are case-insensitive.
const NotSpecified = "Not specified"

// YearSentinels are year-field values that mean "no usable year".
var YearSentinels = map[string]struct{}{
	"":              {},
	"null":          {},
	"None":          {},
	"Not specified": {},
}
