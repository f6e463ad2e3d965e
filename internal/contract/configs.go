package contract

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"
)

// Default values for configuration.
const (
	DefaultStoreAddr   = "localhost:6379"
	DefaultStoreDB     = 0
	MaxStoreDB         = 15
	DefaultDialTimeout = 5 * time.Second
)

// ConfigRawInput holds the raw, unvalidated configuration from all sources
// (file, env, flags). Viper will unmarshal into this struct.
type ConfigRawInput struct {
	StoreAddr     string `mapstructure:"store-addr"`
	StoreDB       int    `mapstructure:"store-db"`
	StorePassword string `mapstructure:"store-password"`
}

// Config holds the runtime configuration for the cache.
// This struct remains the "final, validated" config.
type Config struct {
	StoreAddr     string
	StoreDB       int
	StorePassword string
	DialTimeout   time.Duration
}

// ProcessAndValidate turns the raw input into a validated Config.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	addr := strings.TrimSpace(input.StoreAddr)
	if addr == "" {
		addr = DefaultStoreAddr
	}
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return fmt.Errorf("invalid store address %q: %w. Expected host:port like %s", addr, err, DefaultStoreAddr)
	}

	if input.StoreDB < 0 || input.StoreDB > MaxStoreDB {
		return fmt.Errorf("invalid store db %d. Must be between 0 and %d", input.StoreDB, MaxStoreDB)
	}

	cfg.StoreAddr = addr
	cfg.StoreDB = input.StoreDB
	cfg.StorePassword = input.StorePassword
	cfg.DialTimeout = DefaultDialTimeout
	return nil
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}
