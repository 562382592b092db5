package classify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/careermap/riasec/internal/framework"
	"github.com/careermap/riasec/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func embeddedClassifier() *Classifier {
	return New(framework.Embedded())
}

// fixtureClassifier loads a framework definition from a literal JSON
// document so tests can pin exact indicator vocabularies.
func fixtureClassifier(t *testing.T, doc string) *Classifier {
	t.Helper()
	path := filepath.Join(t.TempDir(), "framework.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return New(framework.Load(path))
}

const fixtureDoc = `{
  "riasec_types": {
    "R": {"name": "Realistic", "title": "The Doers",
          "skill_indicators": {"strong": ["welding"], "moderate": ["hands-on"]}},
    "I": {"name": "Investigative", "title": "The Thinkers",
          "skill_indicators": {"strong": ["data analysis", "data analyst", "analytics", "python", "sql"],
                               "moderate": ["data analysis", "analysis", "analytical"]},
          "keywords": ["analysis", "statistics"]},
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
    "IRC": {"description": "Systematic investigator", "gift": "Precision insight"}
  }
}`

func TestClassifyCodeShape(t *testing.T) {
	c := embeddedClassifier()

	inputs := []struct {
		skills string
		title  string
	}{
		{"Python, SQL, Machine Learning", "Data Scientist"},
		{"welding, forklift", ""},
		{"", "Registered Nurse"},
		{"", ""},
		{"nothing that matches anything zzz", ""},
		{"sales, marketing, accounting, teaching, research, design", "Generalist"},
	}

	for _, in := range inputs {
		result := c.Classify(in.skills, in.title, "")
		assert.True(t, model.ValidCode(result.Code), "code %q for %+v", result.Code, in)
		assert.GreaterOrEqual(t, result.Confidence, 0.0)
		assert.LessOrEqual(t, result.Confidence, 1.0)
		assert.Len(t, result.Scores, 6)
		for _, l := range model.Letters {
			assert.GreaterOrEqual(t, result.Scores[string(l)], 0.0)
		}
	}
}

func TestClassifyZeroEvidence(t *testing.T) {
	c := embeddedClassifier()

	result := c.Classify("zzz qqq xxx", "", "")
	assert.Equal(t, "RIA", result.Code)
	assert.Equal(t, 0.0, result.Confidence)
	assert.Equal(t, 0.0, result.TotalScore)
	assert.Empty(t, result.MatchedIndicators)
	assert.Equal(t, "Realistic", result.PrimaryType)
	assert.Equal(t, framework.DefaultDescription, result.Description)
}

func TestClassifyIdempotent(t *testing.T) {
	c := embeddedClassifier()

	first := c.Classify("Python, SQL, teaching", "Instructor", "")
	second := c.Classify("Python, SQL, teaching", "Instructor", "")
	assert.Equal(t, first, second)
}

func TestClassifyDataScientist(t *testing.T) {
	c := embeddedClassifier()

	result := c.Classify("Python, SQL, Machine Learning, Data Analysis", "Data Scientist", "")
	assert.Equal(t, "Investigative", result.PrimaryType)
	assert.Equal(t, byte('I'), result.Code[0])
	assert.Greater(t, result.Confidence, 0.5)
}

func TestClassifyTitleBonus(t *testing.T) {
	c := fixtureClassifier(t, fixtureDoc)

	withTitle := c.Classify("Python, SQL", "Data Analyst", "")
	withoutTitle := c.Classify("Python, SQL", "", "")

	assert.Greater(t, withTitle.Scores["I"], withoutTitle.Scores["I"],
		"title match must add the bonus to the same category bucket")
}

func TestClassifyTitleBonusEmbedded(t *testing.T) {
	c := embeddedClassifier()

	withTitle := c.Classify("Python, SQL", "Data Analysis Manager", "")
	withoutTitle := c.Classify("Python, SQL", "", "")

	assert.Greater(t, withTitle.Scores["I"], withoutTitle.Scores["I"])
}

func TestClassifyTierDedup(t *testing.T) {
	c := fixtureClassifier(t, fixtureDoc)

	// "data analysis" appears in both the strong and moderate lists of
	// I, and "analysis" is covered by the recorded strong match. Only
	// the strong weight may be counted.
	result := c.Classify("data analysis", "", "")
	assert.Equal(t, model.StrongWeight, result.Scores["I"])
	assert.Equal(t, []string{"data analysis(+3.0)"}, result.MatchedIndicators["I"])
}

func TestClassifyKeywordDedup(t *testing.T) {
	c := fixtureClassifier(t, fixtureDoc)

	// "analysis" is a keyword but also a moderate vocabulary entry, so
	// it is never separately scored; "statistics" is keyword-only.
	result := c.Classify("statistics report", "", "")
	assert.Equal(t, model.KeywordWeight, result.Scores["I"])
	assert.Equal(t, []string{"statistics(+1.0)"}, result.MatchedIndicators["I"])
}

func TestClassifyTitleFromLink(t *testing.T) {
	c := embeddedClassifier()

	// Empty skills with a parseable link still yields a valid code
	// driven entirely by the extracted title.
	result := c.Classify("", "", "https://example.com/jobs/view/nursing-assistant-at-care-home-42")
	assert.True(t, model.ValidCode(result.Code))
	assert.Equal(t, byte('S'), result.Code[0])
	assert.Greater(t, result.Scores["S"], 0.0)
}

func TestClassifyConfidenceMonotonic(t *testing.T) {
	c := fixtureClassifier(t, fixtureDoc)

	// Same total evidence, higher dominance: two strong matches in one
	// category versus one strong match in each of two categories.
	split := c.Classify("welding illustration", "", "")
	dominant := c.Classify("python sql", "", "")

	assert.Equal(t, split.TotalScore, dominant.TotalScore)
	assert.Greater(t, dominant.Confidence, split.Confidence)
}

func TestClassifyCombinationLookup(t *testing.T) {
	c := fixtureClassifier(t, fixtureDoc)

	// python + sql + accounting: I=6, C=3, everything else 0 -> "ICR".
	result := c.Classify("python sql accounting", "", "")
	assert.Equal(t, "ICR", result.Code)
	assert.Equal(t, framework.DefaultDescription, result.Description)

	// welding + python + accounting scores I, R, C positive -> "IRC",
	// which has a combinations entry.
	result = c.Classify("python sql welding accounting", "", "")
	assert.Equal(t, "IRC", result.Code)
	assert.Equal(t, "Systematic investigator", result.Description)
	assert.Equal(t, "Precision insight", result.Gift)
}

func TestClassifySkills(t *testing.T) {
	c := embeddedClassifier()

	fromList := c.ClassifySkills([]string{"Python", "SQL", "Machine Learning"})
	fromText := c.Classify("Python, SQL, Machine Learning", "", "")
	assert.Equal(t, fromText, fromList)
}

func TestDescribeCode(t *testing.T) {
	c := fixtureClassifier(t, fixtureDoc)

	info := c.DescribeCode("irc")
	assert.Equal(t, "IRC", info.Code)
	assert.Equal(t, "Systematic investigator", info.Description)
	require.Len(t, info.Types, 3)
	assert.Equal(t, "Investigative", info.Types[0].Name)
	assert.Equal(t, "Realistic", info.Types[1].Name)
	assert.Equal(t, "Conventional", info.Types[2].Name)

	missing := c.DescribeCode("SEA")
	assert.Equal(t, framework.DefaultDescription, missing.Description)
	assert.Len(t, missing.Types, 3)
}
