// Package report runs read-only aggregate queries over classified
// pipeline output: code and type distributions plus confidence bands.
// Rows are loaded into an in-memory SQLite table and aggregated with
// SQL, so the package depends only on the output column shape.
package report

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/careermap/riasec/internal/common"
	"github.com/careermap/riasec/internal/pipeline"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Confidence band boundaries.
const (
	HighConfidence   = 0.7
	MediumConfidence = 0.4
)

// Bucket is one labelled slice of a distribution.
type Bucket struct {
	Label   string
	Count   int
	Percent float64
}

// ConfidenceBands partitions rows by classification confidence.
type ConfidenceBands struct {
	High   int // >= HighConfidence
	Medium int // >= MediumConfidence, < HighConfidence
	Low    int // < MediumConfidence
}

// Report aggregates one classified output table.
type Report struct {
	Codes      []Bucket
	Types      []Bucket
	Confidence ConfidenceBands
	Total      int
}

// Analyze loads the classification columns of a table into an
// in-memory SQLite database and computes the distributions. TopN
// limits the code distribution; zero means 20, the default the query
// tool has always used.
func Analyze(ctx context.Context, t *pipeline.Table, topN int) (*Report, error) {
	codeIdx := t.Column(pipeline.CodeColumn)
	typeIdx := t.Column(pipeline.TypeColumn)
	confIdx := t.Column(pipeline.ConfidenceColumn)
	if codeIdx < 0 || typeIdx < 0 || confIdx < 0 {
		return nil, fmt.Errorf("%w: table lacks classification columns", common.ErrMissingColumn)
	}
	if topN <= 0 {
		topN = 20
	}

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open report database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.ExecContext(ctx,
		`CREATE TABLE jobs (code TEXT NOT NULL, type TEXT NOT NULL, confidence REAL NOT NULL)`); err != nil {
		return nil, fmt.Errorf("failed to create report table: %w", err)
	}

	if err := loadRows(ctx, db, t, codeIdx, typeIdx, confIdx); err != nil {
		return nil, err
	}

	report := &Report{Total: len(t.Rows)}
	if report.Codes, err = distribution(ctx, db,
		`SELECT code, COUNT(*) FROM jobs GROUP BY code ORDER BY COUNT(*) DESC, code LIMIT ?`,
		report.Total, topN); err != nil {
		return nil, err
	}
	if report.Types, err = distribution(ctx, db,
		`SELECT type, COUNT(*) FROM jobs GROUP BY type ORDER BY COUNT(*) DESC, type LIMIT ?`,
		report.Total, len(t.Rows)); err != nil {
		return nil, err
	}

	row := db.QueryRowContext(ctx, `SELECT
		COALESCE(SUM(confidence >= ?), 0),
		COALESCE(SUM(confidence >= ? AND confidence < ?), 0),
		COALESCE(SUM(confidence < ?), 0)
		FROM jobs`,
		HighConfidence, MediumConfidence, HighConfidence, MediumConfidence)
	if err := row.Scan(&report.Confidence.High, &report.Confidence.Medium, &report.Confidence.Low); err != nil {
		return nil, fmt.Errorf("failed to compute confidence bands: %w", err)
	}

	return report, nil
}

// AnalyzeFile reads a classified output file (CSV or Parquet) and
// aggregates it.
func AnalyzeFile(ctx context.Context, path string, topN int) (*Report, error) {
	t, err := pipeline.ReadTable(path)
	if err != nil {
		return nil, err
	}
	if len(t.Rows) == 0 {
		return nil, fmt.Errorf("%w: %s", common.ErrEmptySource, path)
	}
	return Analyze(ctx, t, topN)
}

func loadRows(ctx context.Context, db *sql.DB, t *pipeline.Table, codeIdx, typeIdx, confIdx int) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin load transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO jobs (code, type, confidence) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, row := range t.Rows {
		conf, parseErr := strconv.ParseFloat(row[confIdx], 64)
		if parseErr != nil {
			conf = 0
		}
		if _, err := stmt.ExecContext(ctx, row[codeIdx], row[typeIdx], conf); err != nil {
			return fmt.Errorf("failed to load row: %w", err)
		}
	}
	return tx.Commit()
}

func distribution(ctx context.Context, db *sql.DB, query string, total, limit int) ([]Bucket, error) {
	rows, err := db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query distribution: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var buckets []Bucket
	for rows.Next() {
		var b Bucket
		if err := rows.Scan(&b.Label, &b.Count); err != nil {
			return nil, fmt.Errorf("failed to scan distribution row: %w", err)
		}
		if total > 0 {
			b.Percent = float64(b.Count) / float64(total) * 100
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}
