package cmd

import (
	"github.com/huangsam/recall/core"
	"github.com/spf13/cobra"
)

// replayCmd prints the recorded call history of an operation.
var replayCmd = &cobra.Command{
	Use:   "replay [operation]",
	Short: "Print the recorded call history of an operation.",
	Long: `Reconstruct and print the call history recorded for an operation.

The header line shows how many times the operation was called, followed by
one line per recorded call pairing the input with the output it produced.
Defaults to the store operation when no name is given.

Examples:
  # Replay the store operation
  recall replay

  # Replay an operation by name
  recall replay Cache.Store`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		op := cache.StoreOperation()
		if len(args) == 1 {
			op = cache.Operation(args[0])
		}
		core.Replay(rootCtx, op)
	},
}
