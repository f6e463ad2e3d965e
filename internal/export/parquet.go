// Package export writes recorded call history to Parquet files using
// github.com/parquet-go/parquet-go.
package export

import (
	"fmt"
	"os"

	"github.com/huangsam/recall/core"
	"github.com/parquet-go/parquet-go"
)

// CallHistoryRow represents one recorded invocation of an instrumented
// operation.
type CallHistoryRow struct {
	// Operation is the qualified operation name, e.g. Cache.Store
	Operation string `parquet:"operation,snappy"`

	// CallIndex is the zero-based position of the call in history order
	CallIndex int32 `parquet:"call_index,snappy"`

	// Input is the recorded argument-tuple display form
	Input string `parquet:"input,snappy"`

	// Output is the recorded raw output value
	Output string `parquet:"output,snappy"`
}

// ConvertCallRecords maps core history records to Parquet rows.
func ConvertCallRecords(records []core.CallRecord) []CallHistoryRow {
	rows := make([]CallHistoryRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, CallHistoryRow{
			Operation: rec.Operation,
			CallIndex: int32(rec.Index),
			Input:     rec.Input,
			Output:    rec.Output,
		})
	}
	return rows
}

// WriteCallHistoryParquet writes call history rows to a Parquet file.
func WriteCallHistoryParquet(rows []CallHistoryRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the CallHistoryRow struct tags.
	writer := parquet.NewGenericWriter[CallHistoryRow](file)

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
