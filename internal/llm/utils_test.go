package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{
			name: "bare object",
			in:   `{"Title":"x"}`,
			want: `{"Title":"x"}`,
		},
		{
			name: "wrapped in prose",
			in:   "Here is the summary:\n```json\n{\"Title\":\"x\"}\n```\nDone.",
			want: `{"Title":"x"}`,
		},
		{
			name: "nested braces survive",
			in:   `prefix {"a":{"b":1}} suffix`,
			want: `{"a":{"b":1}}`,
		},
		{
			name:    "no object",
			in:      "sorry, I cannot do that",
			wantErr: true,
		},
		{
			name:    "reversed braces",
			in:      "} nothing {",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSONObject(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoJSONObject)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitKeywordList(t *testing.T) {
	got := SplitKeywordList("Dopamine, Neurodegeneration , 'biomarker', ab, , CSF-tau.", 10)
	assert.Equal(t, []string{"dopamine", "neurodegeneration", "biomarker", "csf-tau"}, got)
}

func TestSplitKeywordListCap(t *testing.T) {
	got := SplitKeywordList("one two, three four, five six, seven eight", 2)
	assert.Len(t, got, 2)
}

func TestSplitKeywordListEmpty(t *testing.T) {
	assert.Empty(t, SplitKeywordList("a, b, c", 5), "short tokens are dropped")
	assert.Empty(t, SplitKeywordList("", 5))
}
