package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "lower cases",
			input: "Machine Learning",
			want:  "machine learning",
		},
		{
			name:  "replaces separators",
			input: "python/sql,go;rust|c",
			want:  "python sql go rust c",
		},
		{
			name:  "hyphens and underscores",
			input: "hands-on_field-work",
			want:  "hands on field work",
		},
		{
			name:  "collapses whitespace",
			input: "  data   analysis \t statistics  ",
			want:  "data analysis statistics",
		},
		{
			name:  "dots and colons",
			input: "Node.js: backend\\frontend",
			want:  "node js backend frontend",
		},
		{
			name:  "only separators",
			input: "-- , ; |",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	input := "Senior-Engineer/Data, Platform"
	once := Normalize(input)
	assert.Equal(t, once, Normalize(once))
}
