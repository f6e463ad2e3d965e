package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/huangsam/recall/core"
	"github.com/huangsam/recall/internal/contract"
	"github.com/huangsam/recall/internal/redistore"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// store and cache are bound by storeSetup for the lifetime of a command.
var (
	store *redistore.Store
	cache *core.Cache
)

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "recall",
	Short:              "Store scalar values in Redis with call counting and history.",
	Long:               `Recall stores text, binary, integer, and real values under generated identifiers and records every store call so it can be counted, replayed, and exported.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Set config file name and paths
		viper.SetConfigName(".recall") // Name of config file (without extension)
		viper.SetConfigType("yaml")    // We'll use YAML format
		viper.AddConfigPath(".")       // Look in the current directory
		viper.AddConfigPath("$HOME")   // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("RECALL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("store-addr", contract.DefaultStoreAddr)
	viper.SetDefault("store-db", contract.DefaultStoreDB)
	viper.SetDefault("store-password", "")
	viper.SetDefault("as", "raw")
}

// loadConfigFile handles config file loading logic common to all setup functions.
func loadConfigFile() error {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}
	return nil
}

// storeSetup loads configuration, validates it, and dials the store.
// Commands attach to the store without clearing it; only flush resets data.
func storeSetup(ctx context.Context) error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}

	s, err := redistore.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	store = s
	cache = core.Attach(s)
	return nil
}

// storeSetupWrapper wraps storeSetup to provide context for Cobra's PreRunE.
func storeSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeSetup(rootCtx)
}

// closeStore releases the store handle after a command finishes.
func closeStore(_ *cobra.Command, _ []string) {
	if store != nil {
		if err := store.Close(); err != nil {
			contract.LogWarn("closing store", err)
		}
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
