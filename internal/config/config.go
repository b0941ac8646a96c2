package config

import (
	"github.com/spf13/viper"
)

// Config carries the few knobs the processor and its adapters expose.
type Config struct {
	// RejectLockedAccounts switches the ledger from the default policy
	// (locked accounts still accept every operation) to refusing all further
	// activity on a locked account.
	RejectLockedAccounts bool
	// HTTPAddr is the listen address of the batch HTTP adapter.
	HTTPAddr string
	// LogLevel is a zap level string (debug, info, warn, error).
	LogLevel string
}

// Load reads configuration from an optional .env file with environment
// variable overrides.
func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("ledger.reject_locked", false)
	viper.SetDefault("http.addr", ":8080")
	viper.SetDefault("log.level", "info")

	viper.BindEnv("ledger.reject_locked", "LEDGER_REJECT_LOCKED")
	viper.BindEnv("http.addr", "HTTP_ADDR")
	viper.BindEnv("log.level", "LOG_LEVEL")

	// Missing .env is fine; env vars and defaults cover it.
	viper.ReadInConfig()

	return &Config{
		RejectLockedAccounts: viper.GetBool("ledger.reject_locked"),
		HTTPAddr:             viper.GetString("http.addr"),
		LogLevel:             viper.GetString("log.level"),
	}
}
