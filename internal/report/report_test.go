package report

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/careermap/riasec/internal/common"
	"github.com/careermap/riasec/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classifiedTable() *pipeline.Table {
	return &pipeline.Table{
		Columns: []string{
			"job_link",
			pipeline.CodeColumn, pipeline.ConfidenceColumn,
			pipeline.TypeColumn, pipeline.ExtractedTitleColumn,
		},
		Rows: [][]string{
			{"a", "IRC", "0.840", "Investigative", "Data Scientist"},
			{"b", "IRC", "0.910", "Investigative", "Researcher"},
			{"c", "RIA", "0.000", "Realistic", ""},
			{"d", "SEC", "0.520", "Social", "Nurse"},
			{"e", "IRC", "0.700", "Investigative", "Analyst"},
			{"f", "EAS", "0.390", "Enterprising", "Recruiter"},
		},
	}
}

func TestAnalyzeDistributions(t *testing.T) {
	r, err := Analyze(context.Background(), classifiedTable(), 20)
	require.NoError(t, err)

	assert.Equal(t, 6, r.Total)

	require.NotEmpty(t, r.Codes)
	assert.Equal(t, "IRC", r.Codes[0].Label)
	assert.Equal(t, 3, r.Codes[0].Count)
	assert.InDelta(t, 50.0, r.Codes[0].Percent, 0.001)

	require.NotEmpty(t, r.Types)
	assert.Equal(t, "Investigative", r.Types[0].Label)
	assert.Equal(t, 3, r.Types[0].Count)
}

func TestAnalyzeTopNLimitsCodes(t *testing.T) {
	r, err := Analyze(context.Background(), classifiedTable(), 2)
	require.NoError(t, err)
	assert.Len(t, r.Codes, 2)
}

func TestAnalyzeConfidenceBands(t *testing.T) {
	r, err := Analyze(context.Background(), classifiedTable(), 20)
	require.NoError(t, err)

	// 0.840, 0.910, 0.700 are high; 0.520 is medium; 0.000, 0.390 low.
	assert.Equal(t, 3, r.Confidence.High)
	assert.Equal(t, 1, r.Confidence.Medium)
	assert.Equal(t, 2, r.Confidence.Low)
}

func TestAnalyzeTieBreakIsDeterministic(t *testing.T) {
	tbl := &pipeline.Table{
		Columns: []string{pipeline.CodeColumn, pipeline.TypeColumn, pipeline.ConfidenceColumn},
		Rows: [][]string{
			{"SEC", "Social", "0.5"},
			{"IRC", "Investigative", "0.5"},
		},
	}
	r, err := Analyze(context.Background(), tbl, 20)
	require.NoError(t, err)
	// Equal counts sort by label.
	require.Len(t, r.Codes, 2)
	assert.Equal(t, "IRC", r.Codes[0].Label)
	assert.Equal(t, "SEC", r.Codes[1].Label)
}

func TestAnalyzeMissingColumns(t *testing.T) {
	tbl := &pipeline.Table{Columns: []string{"job_link"}, Rows: [][]string{{"a"}}}
	_, err := Analyze(context.Background(), tbl, 20)
	require.ErrorIs(t, err, common.ErrMissingColumn)
}

func TestAnalyzeFileCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")
	content := "job_link,riasec_code,riasec_confidence,primary_riasec_type,extracted_title\n" +
		"a,IRC,0.84,Investigative,Data Scientist\n" +
		"b,RIA,0.00,Realistic,\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	r, err := AnalyzeFile(context.Background(), path, 20)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Total)
	assert.Equal(t, 1, r.Confidence.High)
	assert.Equal(t, 1, r.Confidence.Low)
}

func TestAnalyzeFileEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("riasec_code,primary_riasec_type,riasec_confidence\n"), 0o600))

	_, err := AnalyzeFile(context.Background(), path, 20)
	require.ErrorIs(t, err, common.ErrEmptySource)
}
