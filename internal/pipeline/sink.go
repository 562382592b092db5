package pipeline

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// WriteTable persists a table to the destination path: Parquet with
// zstd compression for .parquet destinations, plain CSV otherwise.
// The table is written to a temporary file in the destination
// directory and renamed into place, so a failed write never leaves a
// partial output file behind.
func WriteTable(path string, t *Table) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".riasec-out-*")
	if err != nil {
		return fmt.Errorf("failed to create output in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		err = writeParquet(tmp, t)
	} else {
		err = writeCSV(tmp, t)
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write output %s: %w", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to move output into place at %s: %w", path, err)
	}
	return nil
}

func writeCSV(f *os.File, t *Table) error {
	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeParquet(f *os.File, t *Table) error {
	fields := make(parquet.Group, len(t.Columns))
	for _, col := range t.Columns {
		if col == ConfidenceColumn {
			fields[col] = parquet.Optional(parquet.Leaf(parquet.DoubleType))
		} else {
			fields[col] = parquet.Optional(parquet.String())
		}
	}
	schema := parquet.NewSchema("jobs", fields)

	writer := parquet.NewGenericWriter[map[string]any](f, schema,
		parquet.Compression(&parquet.Zstd))

	confIdx := columnIndex(t.Columns, ConfidenceColumn)
	batch := make([]map[string]any, 0, 1024)
	for _, row := range t.Rows {
		rec := make(map[string]any, len(t.Columns))
		for i, col := range t.Columns {
			if i == confIdx {
				conf, err := strconv.ParseFloat(row[i], 64)
				if err != nil {
					conf = 0
				}
				rec[col] = conf
				continue
			}
			rec[col] = row[i]
		}
		batch = append(batch, rec)
		if len(batch) == cap(batch) {
			if _, err := writer.Write(batch); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if len(batch) > 0 {
		if _, err := writer.Write(batch); err != nil {
			return err
		}
	}
	return writer.Close()
}
