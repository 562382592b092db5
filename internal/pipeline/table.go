package pipeline

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/careermap/riasec/internal/common"
	"github.com/parquet-go/parquet-go"
)

// Table is a fully materialized tabular result: a header plus rows of
// string cells in header order.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Column returns the index of a named column, or -1.
func (t *Table) Column(name string) int {
	return columnIndex(t.Columns, name)
}

func columnIndex(columns []string, name string) int {
	for i, c := range columns {
		if c == name {
			return i
		}
	}
	return -1
}

// rowIter yields source rows in fixed-size windows.
type rowIter interface {
	Columns() []string
	// Next returns up to max rows, or io.EOF after the last window.
	Next(max int) ([][]string, error)
	Close() error
}

// csvSource streams rows from a delimited file.
type csvSource struct {
	file    *os.File
	reader  *csv.Reader
	columns []string
}

func openCSV(path string) (*csvSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source %s: %w", path, err)
	}

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		_ = f.Close()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s", common.ErrEmptySource, path)
		}
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	return &csvSource{file: f, reader: r, columns: header}, nil
}

func (s *csvSource) Columns() []string { return s.columns }

func (s *csvSource) Next(max int) ([][]string, error) {
	rows := make([][]string, 0, max)
	for len(rows) < max {
		record, err := s.reader.Read()
		if errors.Is(err, io.EOF) {
			if len(rows) == 0 {
				return nil, io.EOF
			}
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		row := make([]string, len(s.columns))
		copy(row, record)
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *csvSource) Close() error { return s.file.Close() }

// countRows determines the total row count of a delimited source once,
// before any windowing begins.
func countRows(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open source %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.ReuseRecord = true

	if _, err := r.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	count := 0
	for {
		if _, err := r.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				return count, nil
			}
			return 0, fmt.Errorf("failed to count rows of %s: %w", path, err)
		}
		count++
	}
}

// ReadTable materializes a delimited or Parquet file. It backs the
// reporting utility and round-trip tests; large inputs should go
// through the windowed pipeline instead.
func ReadTable(path string) (*Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return readParquet(path)
	}

	src, err := openCSV(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = src.Close() }()

	t := &Table{Columns: src.Columns()}
	for {
		rows, err := src.Next(4096)
		if errors.Is(err, io.EOF) {
			return t, nil
		}
		if err != nil {
			return nil, err
		}
		t.Rows = append(t.Rows, rows...)
	}
}

func readParquet(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	reader := parquet.NewGenericReader[map[string]any](f)
	defer func() { _ = reader.Close() }()

	columns := make([]string, 0)
	for _, field := range reader.Schema().Fields() {
		columns = append(columns, field.Name())
	}

	t := &Table{Columns: columns}
	buf := make([]map[string]any, 1024)
	for {
		n, err := reader.Read(buf)
		for i := 0; i < n; i++ {
			row := make([]string, len(columns))
			for j, col := range columns {
				row[j] = cellString(buf[i][col])
			}
			t.Rows = append(t.Rows, row)
			buf[i] = nil
		}
		if errors.Is(err, io.EOF) {
			return t, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read parquet rows of %s: %w", path, err)
		}
	}
}

func cellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
