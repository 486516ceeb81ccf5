package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-mdfront/internal/config"
)

// envPrefix marks the environment variables read by the CLI.
const envPrefix = "MDFRONT_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath   string // MDFRONT_CONFIG: config file name or path
	Format       string // MDFRONT_FORMAT: metadata format (lines, yaml, toml)
	OutputFormat string // MDFRONT_OUTPUT_FORMAT: json or yaml
	OutputDir    string // MDFRONT_OUTPUT_DIR: default render output directory
	DateFormat   string // MDFRONT_DATE_FORMAT: publish_date fallback format
	BufferSize   int    // MDFRONT_BUFFER_SIZE: header scan window in bytes
	Workers      int    // MDFRONT_WORKERS: parallel workers
}

// knownEnvVars lists valid MDFRONT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDFRONT_CONFIG":        true,
	"MDFRONT_FORMAT":        true,
	"MDFRONT_OUTPUT_FORMAT": true,
	"MDFRONT_OUTPUT_DIR":    true,
	"MDFRONT_DATE_FORMAT":   true,
	"MDFRONT_BUFFER_SIZE":   true,
	"MDFRONT_WORKERS":       true,
}

// loadEnvConfig reads configuration from environment variables.
// Invalid numbers are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath:   getenv("MDFRONT_CONFIG"),
		Format:       getenv("MDFRONT_FORMAT"),
		OutputFormat: getenv("MDFRONT_OUTPUT_FORMAT"),
		OutputDir:    getenv("MDFRONT_OUTPUT_DIR"),
		DateFormat:   getenv("MDFRONT_DATE_FORMAT"),
	}

	if size := getenv("MDFRONT_BUFFER_SIZE"); size != "" {
		if n, err := strconv.Atoi(size); err == nil && n > 0 {
			cfg.BufferSize = n
		}
	}

	if workers := getenv("MDFRONT_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MDFRONT_* variables.
// Helps catch typos like MDFRONT_WORKER instead of MDFRONT_WORKERS.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Env vars override the config file; CLI flags are applied later and win.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Format != "" {
		cfg.Extract.Format = env.Format
	}
	if env.DateFormat != "" {
		cfg.Extract.DateFormat = env.DateFormat
	}
	if env.BufferSize > 0 {
		cfg.Extract.BufferSize = env.BufferSize
	}
	if env.OutputFormat != "" {
		cfg.Output.Format = env.OutputFormat
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Workers > 0 {
		cfg.Output.Workers = env.Workers
	}
}

// osEnviron is replaced in tests.
var osEnviron = os.Environ
