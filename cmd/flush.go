package cmd

import (
	"fmt"

	"github.com/huangsam/recall/internal/contract"
	"github.com/spf13/cobra"
)

// flushCmd clears the backing store.
var flushCmd = &cobra.Command{
	Use:   "flush",
	Short: "Remove all stored values and recorded history.",
	Long: `Synchronously delete every key in the configured store database:
stored values, call counters, and call history lists alike.

Use this when:
- Starting a fresh recording session
- Recorded history is no longer needed
- Testing against a clean store

Examples:
  # Flush the default store
  recall flush

  # Flush another database (set address via env variable)
  RECALL_STORE_ADDR=redis.internal:6379 recall flush`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := store.FlushDB(rootCtx); err != nil {
			contract.LogFatal("Failed to flush store", err)
		}
		fmt.Println("Store flushed successfully.")
	},
}
