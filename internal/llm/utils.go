package llm

import (
	"errors"
	"strings"
)

// ErrNoJSONObject is returned when a model response carries no {...} span.
var ErrNoJSONObject = errors.New("no JSON object found in response")

// ExtractJSONObject cuts the first-brace-to-last-brace span out of a model
// response. Models wrap JSON in prose or code fences often enough that this
// is the pragmatic way to recover the payload.
func ExtractJSONObject(response string) (string, error) {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start < 0 || end < start {
		return "", ErrNoJSONObject
	}
	return response[start : end+1], nil
}

// SplitKeywordList turns a comma-separated model response into clean
// lowercase keywords, dropping blanks and tokens of two characters or fewer.
func SplitKeywordList(response string, n int) []string {
	var out []string
	for _, part := range strings.Split(response, ",") {
		kw := strings.ToLower(strings.TrimSpace(part))
		kw = strings.Trim(kw, `"'.`)
		if len(kw) <= 2 {
			continue
		}
		out = append(out, kw)
		if n > 0 && len(out) == n {
			break
		}
	}
	return out
}
