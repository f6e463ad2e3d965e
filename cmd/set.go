package cmd

import (
	"fmt"
	"strconv"

	"github.com/huangsam/recall/internal/contract"
	"github.com/huangsam/recall/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// setCmd stores one or more values and prints their identifiers.
var setCmd = &cobra.Command{
	Use:   "set <value>...",
	Short: "Store values and print their generated identifiers.",
	Long: `Store one or more scalar values in the backing store.

Each value is written under a freshly generated identifier, and the store
operation's call counter and call history are updated alongside it.
Values are stored as text unless a type flag says otherwise.

Examples:
  # Store two text values
  recall set foo bar

  # Store an integer
  recall set --int 123

  # Store a floating-point number
  recall set --real 3.14

  # Store raw bytes
  recall set --bytes deadbeef`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		kind := setValueKind()
		for _, arg := range args {
			value, err := parseSetValue(arg, kind)
			if err != nil {
				contract.LogFatal("Cannot parse value", err)
			}
			id, err := cache.Store(rootCtx, value)
			if err != nil {
				contract.LogFatal("Cannot store value", err)
			}
			fmt.Println(id)
		}
	},
}

// setValueKind resolves the type flags to a scalar kind.
func setValueKind() schema.ValueKind {
	switch {
	case viper.GetBool("int"):
		return schema.IntegerValue
	case viper.GetBool("real"):
		return schema.RealValue
	case viper.GetBool("bytes"):
		return schema.BinaryValue
	default:
		return schema.TextValue
	}
}

// parseSetValue turns a raw CLI argument into the requested scalar kind.
func parseSetValue(arg string, kind schema.ValueKind) (any, error) {
	switch kind {
	case schema.IntegerValue:
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a base-10 integer: %w", arg, err)
		}
		return n, nil
	case schema.RealValue:
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a floating-point number: %w", arg, err)
		}
		return f, nil
	case schema.BinaryValue:
		return []byte(arg), nil
	default:
		return arg, nil
	}
}
