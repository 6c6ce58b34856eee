// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// FullName is the identity used when the CLI is not given one explicitly.
	FullName string
	// DefaultPasswordType is the password type name used when none is given.
	DefaultPasswordType string
	// DefaultCounter is the site counter used when none is given.
	DefaultCounter int

	// DerivationConcurrency bounds how many master keys a batch derives at once.
	DerivationConcurrency int
	// DerivationTimeout bounds derivation once the passphrase has been read; zero disables it.
	DerivationTimeout time.Duration

	// DerivationRateLimitEnabled indicates whether master key derivations are throttled.
	DerivationRateLimitEnabled bool
	// DerivationRateLimitPerSec is the number of derivations allowed per second.
	DerivationRateLimitPerSec float64
	// DerivationRateLimitBurst is the burst size for derivation throttling.
	DerivationRateLimitBurst int

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsTextfile is the path the metrics are written to on shutdown, if set.
	MetricsTextfile string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Generation defaults
		FullName:            env.GetString("MPW_FULL_NAME", ""),
		DefaultPasswordType: env.GetString("MPW_DEFAULT_TYPE", "long"),
		DefaultCounter:      env.GetInt("MPW_DEFAULT_COUNTER", 1),

		// Derivation
		DerivationConcurrency: env.GetInt("DERIVATION_CONCURRENCY", 2),
		DerivationTimeout:     env.GetDuration("DERIVATION_TIMEOUT_SECONDS", 120, time.Second),

		// Derivation rate limiting
		DerivationRateLimitEnabled: env.GetBool("DERIVATION_RATE_LIMIT_ENABLED", false),
		DerivationRateLimitPerSec:  env.GetFloat64("DERIVATION_RATE_LIMIT_PER_SEC", 1.0),
		DerivationRateLimitBurst:   env.GetInt("DERIVATION_RATE_LIMIT_BURST", 3),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "sisyphus"),
		MetricsTextfile:  env.GetString("METRICS_TEXTFILE", ""),
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
