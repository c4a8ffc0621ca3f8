package categorize

import "math"

// ScoreVector maps every taxonomy category identifier to a non-negative,
// finite relevance score. Scoring components always return total vectors
// (zero-filled for categories they found nothing for) and never mutate a
// vector they have handed out.
type ScoreVector map[string]float64

// sanitized returns the value for id clamped to a usable score: missing
// keys, NaN, infinities and negatives all collapse to 0.
func (v ScoreVector) sanitized(id string) float64 {
	s, ok := v[id]
	if !ok || math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
		return 0
	}
	return s
}

// Clone returns an independent copy.
func (v ScoreVector) Clone() ScoreVector {
	out := make(ScoreVector, len(v))
	for k, s := range v {
		out[k] = s
	}
	return out
}
