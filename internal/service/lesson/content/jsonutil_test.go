package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{
			name:    "bare object",
			payload: `{"introduction": "hi"}`,
			want:    `{"introduction": "hi"}`,
		},
		{
			name:    "surrounding whitespace",
			payload: "\n  {\"a\": 1}  \n",
			want:    `{"a": 1}`,
		},
		{
			name:    "markdown fence",
			payload: "```json\n{\"a\": 1}\n```",
			want:    `{"a": 1}`,
		},
		{
			name:    "fence without language",
			payload: "```\n{\"a\": 1}\n```",
			want:    `{"a": 1}`,
		},
		{
			name:    "leading prose",
			payload: "Here is the lesson:\n{\"a\": 1}",
			want:    `{"a": 1}`,
		},
		{
			name:    "no json at all",
			payload: "I could not produce a lesson.",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.payload))
		})
	}
}
