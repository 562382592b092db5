package framework

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/careermap/riasec/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFrameworkFile(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "riasec_framework.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}

const validDoc = `{
  "riasec_types": {
    "R": {"name": "Realistic", "title": "The Doers",
          "skill_indicators": {"strong": ["welding"], "moderate": ["hands-on"]}},
    "I": {"name": "Investigative", "title": "The Thinkers",
          "skill_indicators": {"strong": ["research"], "moderate": ["analytical"]},
          "keywords": ["curious"]},
    "A": {"name": "Artistic", "title": "The Creators",
          "skill_indicators": {"strong": ["illustration"], "moderate": ["creative"]}},
    "S": {"name": "Social", "title": "The Helpers",
          "skill_indicators": {"strong": ["nursing"], "moderate": ["empathy"]}},
    "E": {"name": "Enterprising", "title": "The Persuaders",
          "skill_indicators": {"strong": ["sales"], "moderate": ["strategic"]}},
    "C": {"name": "Conventional", "title": "The Organizers",
          "skill_indicators": {"strong": ["accounting"], "moderate": ["organized"]}}
  },
  "combinations": {
    "IRC": {"description": "Systematic investigator", "gift": "Precision insight",
            "career_themes": ["engineering", "research"]},
    "SEA": "Expressive helper"
  }
}`

func TestLoadValidFile(t *testing.T) {
	fw := Load(writeFrameworkFile(t, validDoc))

	types := fw.Types()
	require.Len(t, types, 6)
	assert.Equal(t, "R", types[0].Letter)
	assert.Equal(t, "Realistic", types[0].Name)
	assert.Equal(t, "Conventional", types[5].Name)
	assert.Equal(t, []string{"curious"}, types[1].Keywords)
	assert.Equal(t, 2, fw.Combinations())
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	fw := Load(filepath.Join(t.TempDir(), "nope.json"))

	require.Len(t, fw.Types(), 6)
	assert.Equal(t, "Investigative", fw.TypeName("I"))
	assert.Equal(t, 0, fw.Combinations())
}

func TestLoadEmptyPathFallsBack(t *testing.T) {
	fw := Load("")
	require.Len(t, fw.Types(), 6)
}

func TestLoadMalformedFileFallsBack(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "not json", doc: "{nope"},
		{name: "missing letters", doc: `{"riasec_types": {"R": {"name": "Realistic"}}}`},
		{name: "unnamed type", doc: `{"riasec_types": {
			"R": {"name": ""}, "I": {"name": "Investigative"}, "A": {"name": "Artistic"},
			"S": {"name": "Social"}, "E": {"name": "Enterprising"}, "C": {"name": "Conventional"}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fw := Load(writeFrameworkFile(t, tt.doc))
			// Fallback is the embedded table: complete and description-free.
			require.Len(t, fw.Types(), 6)
			assert.Equal(t, "The Doers", fw.Types()[0].Title)
			assert.Equal(t, 0, fw.Combinations())
		})
	}
}

func TestDescribe(t *testing.T) {
	fw := Load(writeFrameworkFile(t, validDoc))

	desc, gift := fw.Describe("IRC")
	assert.Equal(t, "Systematic investigator", desc)
	assert.Equal(t, "Precision insight", gift)

	// Lower case codes resolve too.
	desc, _ = fw.Describe("irc")
	assert.Equal(t, "Systematic investigator", desc)

	// Bare string combination form.
	desc, gift = fw.Describe("SEA")
	assert.Equal(t, "Expressive helper", desc)
	assert.Equal(t, "", gift)

	// Unknown codes yield the documented default.
	desc, gift = fw.Describe("CEI")
	assert.Equal(t, DefaultDescription, desc)
	assert.Equal(t, "", gift)
}

func TestEmbeddedCoversAlphabet(t *testing.T) {
	fw := Embedded()

	for _, l := range model.Letters {
		typ, ok := fw.Type(string(l))
		require.True(t, ok, "missing letter %q", string(l))
		assert.NotEmpty(t, typ.Name)
		assert.NotEmpty(t, typ.Strong)
		assert.NotEmpty(t, typ.Moderate)
	}
}

func TestTypeNameUnknown(t *testing.T) {
	assert.Equal(t, "Unknown", Embedded().TypeName("X"))
}
