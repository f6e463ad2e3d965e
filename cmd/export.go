package cmd

import (
	"errors"
	"fmt"

	"github.com/huangsam/recall/core"
	"github.com/huangsam/recall/internal/contract"
	"github.com/huangsam/recall/internal/export"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// exportCmd writes recorded call history to a Parquet file.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded call history to a Parquet file.",
	Long: `Export the recorded call history to a Parquet file for analysis
with external tools.

The output file contains one row per recorded call: operation name, call
index, input display form, and output value.

Examples:
  # Export call history
  recall export --output-file history

  # The resulting file can be used with Spark, Pandas, DuckDB, and
  # any other Parquet-compatible tool.`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := executeHistoryExport(viper.GetString("output-file")); err != nil {
			contract.LogFatal("Cannot export call history", err)
		}
	},
}

// executeHistoryExport performs the actual export of call history to a Parquet file.
func executeHistoryExport(outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	records, err := cache.History(rootCtx, core.StoreOp)
	if err != nil {
		return fmt.Errorf("failed to retrieve call history: %w", err)
	}
	if len(records) == 0 {
		return errors.New("no call history found to export")
	}

	rows := export.ConvertCallRecords(records)
	historyFile := outputFile + ".call_history.parquet"
	if err := export.WriteCallHistoryParquet(rows, historyFile); err != nil {
		return fmt.Errorf("failed to write call history: %w", err)
	}
	fmt.Printf("Exported %d calls to: %s\n", len(rows), historyFile)
	return nil
}
