package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// detailTitleCandidates are the column names probed for a job title in
// the details source, in preference order.
var detailTitleCandidates = []string{"job_title", "title", "Job Title", "position"}

// RunJoin inner-joins the skills source with a details source on the
// shared link column, then classifies the joined rows. If the join key
// is absent from either side or the details source cannot be read, the
// run degrades to single-source classification of the skills source;
// the degradation is reported, not silent.
func (p *Pipeline) RunJoin(ctx context.Context, skillsSource, detailsSource, destination string, opts Options) (*Summary, error) {
	opts = withDefaults(opts)

	details, err := ReadTable(detailsSource)
	if err != nil {
		return p.degrade(ctx, skillsSource, destination, opts,
			fmt.Sprintf("details source unreadable: %v", err))
	}

	detailLinkIdx := details.Column(opts.LinkColumn)
	if detailLinkIdx < 0 {
		return p.degrade(ctx, skillsSource, destination, opts,
			fmt.Sprintf("details source has no %q column", opts.LinkColumn))
	}

	detailTitleIdx := -1
	if opts.TitleColumn != "" {
		detailTitleIdx = details.Column(opts.TitleColumn)
	}
	if detailTitleIdx < 0 {
		for _, name := range detailTitleCandidates {
			if idx := details.Column(name); idx >= 0 {
				detailTitleIdx = idx
				break
			}
		}
	}

	lookup := make(map[string][]string, len(details.Rows))
	for _, row := range details.Rows {
		if link := cell(row, detailLinkIdx); link != "" {
			lookup[link] = row
		}
	}

	probe, err := openCSV(skillsSource)
	if err != nil {
		return nil, err
	}
	skillsLinkIdx := columnIndex(probe.Columns(), opts.LinkColumn)
	skillsSkillsIdx := columnIndex(probe.Columns(), opts.SkillsColumn)
	_ = probe.Close()
	if skillsLinkIdx < 0 {
		return p.degrade(ctx, skillsSource, destination, opts,
			fmt.Sprintf("skills source has no %q column", opts.LinkColumn))
	}

	total, err := countJoinMatches(skillsSource, skillsLinkIdx, lookup)
	if err != nil {
		return nil, err
	}
	slog.Info("join prepared",
		"skills_source", skillsSource,
		"details_source", detailsSource,
		"matching_rows", total,
		"title_column", titleColumnName(details, detailTitleIdx))
	if opts.Sample > 0 && opts.Sample < total {
		total = opts.Sample
	}

	src, err := openCSV(skillsSource)
	if err != nil {
		return nil, err
	}
	iter := newJoinIter(src, opts, skillsLinkIdx, skillsSkillsIdx,
		details, detailLinkIdx, detailTitleIdx, lookup)
	defer func() { _ = iter.Close() }()

	joinOpts := opts
	if detailTitleIdx >= 0 {
		joinOpts.TitleColumn = "job_title"
	}
	return p.process(ctx, iter, total, destination, joinOpts)
}

func (p *Pipeline) degrade(ctx context.Context, skillsSource, destination string, opts Options, reason string) (*Summary, error) {
	slog.Warn("join unavailable, degrading to single-source classification",
		"reason", reason,
		"source", skillsSource)
	return p.Run(ctx, skillsSource, destination, opts)
}

func titleColumnName(details *Table, idx int) string {
	if idx < 0 {
		return "none (title extracted from link)"
	}
	return details.Columns[idx]
}

// countJoinMatches counts skills rows whose link has a details entry,
// fixing the row total before windowing starts.
func countJoinMatches(path string, linkIdx int, lookup map[string][]string) (int, error) {
	src, err := openCSV(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = src.Close() }()

	count := 0
	for {
		rows, err := src.Next(4096)
		if errors.Is(err, io.EOF) {
			return count, nil
		}
		if err != nil {
			return 0, err
		}
		for _, row := range rows {
			if _, ok := lookup[cell(row, linkIdx)]; ok {
				count++
			}
		}
	}
}

// joinIter streams skills rows joined with their details row. Output
// columns are link, skills, job_title (when the details source has
// one), then the remaining details columns in order.
type joinIter struct {
	src             *csvSource
	lookup          map[string][]string
	columns         []string
	passthrough     []int // detail column indexes appended after the title
	srcLinkIdx      int
	srcSkillsIdx    int
	detailTitleIdx  int
	exhaustedSource bool
}

func newJoinIter(src *csvSource, opts Options, srcLinkIdx, srcSkillsIdx int,
	details *Table, detailLinkIdx, detailTitleIdx int, lookup map[string][]string) *joinIter {

	columns := []string{opts.LinkColumn, opts.SkillsColumn}
	if detailTitleIdx >= 0 {
		columns = append(columns, "job_title")
	}
	passthrough := make([]int, 0, len(details.Columns))
	for i, name := range details.Columns {
		if i == detailLinkIdx || i == detailTitleIdx {
			continue
		}
		columns = append(columns, name)
		passthrough = append(passthrough, i)
	}

	return &joinIter{
		src:            src,
		lookup:         lookup,
		columns:        columns,
		passthrough:    passthrough,
		srcLinkIdx:     srcLinkIdx,
		srcSkillsIdx:   srcSkillsIdx,
		detailTitleIdx: detailTitleIdx,
	}
}

func (j *joinIter) Columns() []string { return j.columns }

func (j *joinIter) Next(max int) ([][]string, error) {
	if j.exhaustedSource {
		return nil, io.EOF
	}

	out := make([][]string, 0, max)
	for len(out) < max {
		rows, err := j.src.Next(1)
		if errors.Is(err, io.EOF) {
			j.exhaustedSource = true
			if len(out) == 0 {
				return nil, io.EOF
			}
			return out, nil
		}
		if err != nil {
			return nil, err
		}

		row := rows[0]
		detail, ok := j.lookup[cell(row, j.srcLinkIdx)]
		if !ok {
			continue
		}

		joined := make([]string, 0, len(j.columns))
		joined = append(joined, cell(row, j.srcLinkIdx), cell(row, j.srcSkillsIdx))
		if j.detailTitleIdx >= 0 {
			joined = append(joined, cell(detail, j.detailTitleIdx))
		}
		for _, idx := range j.passthrough {
			joined = append(joined, cell(detail, idx))
		}
		out = append(out, joined)
	}
	return out, nil
}

func (j *joinIter) Close() error { return j.src.Close() }
