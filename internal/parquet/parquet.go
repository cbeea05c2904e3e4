// Package parquet exports aggregated chart tables to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
)

// CategoryRecord is one category of an aggregated chart table.
type CategoryRecord struct {
	// Kind is the chart kind that produced this table
	Kind string `parquet:"kind,snappy"`

	// Key is the category key, for example an author name or an hour
	Key string `parquet:"key,snappy"`

	// Count is the number of commits (or files) in this category
	Count int64 `parquet:"count,snappy"`

	// Share is the category's percentage of the table total
	Share float64 `parquet:"share,snappy"`
}

// WriteCategoryRecords writes category records to a Parquet file.
func WriteCategoryRecords(records []CategoryRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the CategoryRecord struct tags.
	writer := parquet.NewGenericWriter[CategoryRecord](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(records); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
