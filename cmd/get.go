package cmd

import (
	"fmt"

	"github.com/huangsam/recall/internal/contract"
	"github.com/huangsam/recall/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// getCmd retrieves a value by identifier.
var getCmd = &cobra.Command{
	Use:   "get <identifier>",
	Short: "Retrieve a stored value by its identifier.",
	Long: `Fetch the value stored under an identifier.

By default the raw bytes are printed unchanged. The --as flag applies a
conversion: text decodes the bytes as UTF-8, int parses them as a base-10
integer. An absent identifier prints (nil) in raw mode and fails in the
converting modes.

Examples:
  # Print the raw value
  recall get 3a7c9c3e-...

  # Decode as text
  recall get 3a7c9c3e-... --as text

  # Parse as an integer
  recall get 3a7c9c3e-... --as int`,
	Args:    cobra.ExactArgs(1),
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		key := args[0]
		mode := schema.GetMode(viper.GetString("as"))
		if _, ok := schema.ValidGetModes[mode]; !ok {
			contract.LogFatal("Cannot get value", fmt.Errorf("invalid get mode %q. Must be raw, text, or int", mode))
		}

		switch mode {
		case schema.TextGet:
			text, err := cache.GetString(rootCtx, key)
			if err != nil {
				contract.LogFatal("Cannot get value", err)
			}
			fmt.Println(text)
		case schema.IntGet:
			n, err := cache.GetInt(rootCtx, key)
			if err != nil {
				contract.LogFatal("Cannot get value", err)
			}
			fmt.Println(n)
		default:
			raw, found, err := cache.Get(rootCtx, key)
			if err != nil {
				contract.LogFatal("Cannot get value", err)
			}
			if !found {
				fmt.Println("(nil)")
				return
			}
			fmt.Printf("%s\n", raw)
		}
	},
}
