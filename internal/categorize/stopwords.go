package categorize

// englishStopWords is the stop list applied by the TF-IDF vectorizer before
// n-gram construction.
var englishStopWords = buildSet([]string{
	"a", "about", "above", "after", "again", "against", "all", "also", "am", "an",
	"and", "any", "are", "as", "at", "be", "because", "been", "before", "being",
	"below", "between", "both", "but", "by", "can", "cannot", "could", "did", "do",
	"does", "doing", "down", "during", "each", "either", "few", "for", "from",
	"further", "had", "has", "have", "having", "he", "her", "here", "hers",
	"herself", "him", "himself", "his", "how", "however", "i", "if", "in", "into",
	"is", "it", "its", "itself", "just", "least", "less", "may", "me", "might",
	"more", "most", "much", "must", "my", "myself", "neither", "no", "nor", "not",
	"now", "of", "off", "on", "once", "only", "or", "other", "our", "ours",
	"ourselves", "out", "over", "own", "same", "she", "should", "so", "some",
	"such", "than", "that", "the", "their", "theirs", "them", "themselves", "then",
	"there", "these", "they", "this", "those", "through", "to", "too", "under",
	"until", "up", "upon", "very", "was", "we", "were", "what", "when", "where",
	"which", "while", "who", "whom", "whose", "why", "will", "with", "would",
	"you", "your", "yours", "yourself", "yourselves",
})

// fallbackStopWords is the fixed set the frequency fallback strips. Kept
// separate from the vectorizer list: the fallback must behave identically
// whether or not the statistical path is available.
var fallbackStopWords = buildSet([]string{
	"the", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with", "by",
	"this", "that", "these", "those", "is", "are", "was", "were", "been", "be",
	"have", "has", "had", "will", "would", "could", "should", "may", "might",
	"can", "not", "no", "yes", "all", "any", "some", "each", "every", "other",
	"another", "such", "more", "most", "much", "many", "few", "less", "least",
	"than", "as", "so", "very", "too", "also", "just", "only", "even", "now",
	"then", "here", "there", "where", "when", "why", "how", "what", "who",
	"which", "whose", "whom",
})

func buildSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
