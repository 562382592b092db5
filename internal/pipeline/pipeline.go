// Package pipeline streams tabular job data through the RIASEC
// classifier in fixed-size windows, appending derived classification
// columns and emitting throughput telemetry along the way.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/careermap/riasec/internal/classify"
	"github.com/careermap/riasec/internal/common"
	"github.com/schollz/progressbar/v3"
)

// Derived output columns appended to every classified row.
const (
	CodeColumn           = "riasec_code"
	ConfidenceColumn     = "riasec_confidence"
	TypeColumn           = "primary_riasec_type"
	ExtractedTitleColumn = "extracted_title"
)

// Options configures a pipeline run.
type Options struct {
	Progress     io.Writer // progress bar destination; defaults to stderr
	SkillsColumn string
	TitleColumn  string
	LinkColumn   string
	WindowSize   int
	Sample       int // optional cap on processed rows; 0 = all
}

// DefaultOptions returns the standard window size and column names.
func DefaultOptions() Options {
	return Options{
		WindowSize:   50000,
		SkillsColumn: "job_skills",
		LinkColumn:   "job_link",
	}
}

// Summary reports what a completed run did.
type Summary struct {
	Output  string
	Rows    int
	Elapsed time.Duration
	Rate    float64 // rows per second
}

// Pipeline drives the classifier over large tabular inputs.
type Pipeline struct {
	classifier *classify.Classifier
}

// New creates a pipeline around a shared, read-only classifier.
func New(classifier *classify.Classifier) *Pipeline {
	return &Pipeline{classifier: classifier}
}

// Run classifies every row of the source and writes the augmented
// table to the destination in a single write at completion. It fails
// before any windowing if the source is missing or empty, and after
// computation if the destination is unwritable.
func (p *Pipeline) Run(ctx context.Context, source, destination string, opts Options) (*Summary, error) {
	opts = withDefaults(opts)

	total, err := countRows(source)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: %s", common.ErrEmptySource, source)
	}
	if opts.Sample > 0 && opts.Sample < total {
		total = opts.Sample
		slog.Info("sample mode", "rows", total)
	}

	src, err := openCSV(source)
	if err != nil {
		return nil, err
	}
	defer func() { _ = src.Close() }()

	return p.process(ctx, src, total, destination, opts)
}

func withDefaults(opts Options) Options {
	def := DefaultOptions()
	if opts.WindowSize <= 0 {
		opts.WindowSize = def.WindowSize
	}
	if opts.SkillsColumn == "" {
		opts.SkillsColumn = def.SkillsColumn
	}
	if opts.LinkColumn == "" {
		opts.LinkColumn = def.LinkColumn
	}
	if opts.Progress == nil {
		opts.Progress = os.Stderr
	}
	return opts
}

// process runs the windowed classification loop over any row source.
// The caller is cancelled only between windows; no mid-window
// cancellation is attempted.
func (p *Pipeline) process(ctx context.Context, src rowIter, total int, destination string, opts Options) (*Summary, error) {
	columns := src.Columns()
	skillsIdx := columnIndex(columns, opts.SkillsColumn)
	if skillsIdx < 0 {
		return nil, fmt.Errorf("%w: %s", common.ErrMissingColumn, opts.SkillsColumn)
	}
	titleIdx := -1
	if opts.TitleColumn != "" {
		titleIdx = columnIndex(columns, opts.TitleColumn)
	}
	linkIdx := columnIndex(columns, opts.LinkColumn)

	out := &Table{
		Columns: append(append([]string{}, columns...),
			CodeColumn, ConfidenceColumn, TypeColumn, ExtractedTitleColumn),
		Rows: make([][]string, 0, total),
	}

	slog.Info("starting classification run",
		"total_rows", total,
		"window_size", opts.WindowSize,
		"destination", destination)

	bar := newProgressBar(total, opts.Progress)
	start := time.Now()
	processed := 0

	for processed < total {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		window := opts.WindowSize
		if remaining := total - processed; remaining < window {
			window = remaining
		}

		rows, err := src.Next(window)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		for _, row := range rows {
			out.Rows = append(out.Rows, p.classifyRow(row, skillsIdx, titleIdx, linkIdx))
		}
		processed += len(rows)
		_ = bar.Add(len(rows))

		elapsed := time.Since(start)
		rate := float64(processed) / elapsed.Seconds()
		var eta time.Duration
		if rate > 0 {
			eta = time.Duration(float64(total-processed)/rate) * time.Second
		}
		slog.Info("window processed",
			"processed", processed,
			"total", total,
			"percent", fmt.Sprintf("%.1f", float64(processed)/float64(total)*100),
			"rows_per_sec", fmt.Sprintf("%.0f", rate),
			"eta", eta.Round(time.Second).String())
	}

	if err := WriteTable(destination, out); err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	summary := &Summary{
		Output:  destination,
		Rows:    len(out.Rows),
		Elapsed: elapsed,
		Rate:    float64(len(out.Rows)) / elapsed.Seconds(),
	}
	slog.Info("classification run complete",
		"rows", summary.Rows,
		"elapsed", elapsed.Round(time.Millisecond).String(),
		"rows_per_sec", fmt.Sprintf("%.0f", summary.Rate),
		"output", destination)
	return summary, nil
}

// classifyRow classifies one source row and returns it with the four
// derived columns appended.
func (p *Pipeline) classifyRow(row []string, skillsIdx, titleIdx, linkIdx int) []string {
	skills := cell(row, skillsIdx)
	title := cell(row, titleIdx)
	link := cell(row, linkIdx)
	if title == "" && link != "" {
		title = classify.TitleFromLink(link)
	}

	result := p.classifier.Classify(skills, title, link)

	out := make([]string, 0, len(row)+4)
	out = append(out, row...)
	return append(out,
		result.Code,
		strconv.FormatFloat(result.Confidence, 'f', 3, 64),
		result.PrimaryType,
		title)
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func newProgressBar(total int, w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Classifying jobs..."),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprintln(w)
		}),
	)
}
