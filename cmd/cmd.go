// Package cmd defines the command-line interface for recall.
package cmd

import (
	"github.com/huangsam/recall/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(flushCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)

	// Release the store handle once a command finishes
	rootCmd.PersistentPostRun = closeStore

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("store-addr", contract.DefaultStoreAddr, "Store address in host:port form")
	rootCmd.PersistentFlags().Int("store-db", contract.DefaultStoreDB, "Store database number (0-15)")
	rootCmd.PersistentFlags().String("store-password", "", "Store password (empty for none)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of setCmd to Viper
	setCmd.Flags().Bool("int", false, "Parse values as base-10 integers before storing")
	setCmd.Flags().Bool("real", false, "Parse values as floating-point numbers before storing")
	setCmd.Flags().Bool("bytes", false, "Store values as raw bytes instead of text")
	if err := viper.BindPFlags(setCmd.Flags()); err != nil {
		contract.LogFatal("Error binding set flags", err)
	}

	// Bind all flags of getCmd to Viper
	getCmd.Flags().String("as", "raw", "Conversion applied to the value: raw or text or int")
	if err := viper.BindPFlags(getCmd.Flags()); err != nil {
		contract.LogFatal("Error binding get flags", err)
	}

	// Bind all flags of exportCmd to Viper
	exportCmd.Flags().String("output-file", "", "Base path for the exported Parquet file")
	if err := viper.BindPFlags(exportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding export flags", err)
	}
}
