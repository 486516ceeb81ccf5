package main

// Notes:
// - loadEnvConfig: we test every MDFRONT_* variable through an injected
//   getenv, and that invalid or negative numbers are ignored, not errors.
// - warnUnknownEnvVars: we test typo detection and that known vars don't warn.
// - applyEnvConfig: we test that set values override the config file and
//   unset values leave it alone.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-mdfront/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("all variables", func(t *testing.T) {
		t.Parallel()

		vars := map[string]string{
			"MDFRONT_CONFIG":        "/path/to/config.yaml",
			"MDFRONT_FORMAT":        "toml",
			"MDFRONT_OUTPUT_FORMAT": "yaml",
			"MDFRONT_OUTPUT_DIR":    "/out",
			"MDFRONT_DATE_FORMAT":   "iso",
			"MDFRONT_BUFFER_SIZE":   "4096",
			"MDFRONT_WORKERS":       "3",
		}
		cfg := loadEnvConfig(func(k string) string { return vars[k] })

		if cfg.ConfigPath != "/path/to/config.yaml" {
			t.Errorf("ConfigPath = %q", cfg.ConfigPath)
		}
		if cfg.Format != "toml" {
			t.Errorf("Format = %q, want toml", cfg.Format)
		}
		if cfg.OutputFormat != "yaml" {
			t.Errorf("OutputFormat = %q, want yaml", cfg.OutputFormat)
		}
		if cfg.OutputDir != "/out" {
			t.Errorf("OutputDir = %q, want /out", cfg.OutputDir)
		}
		if cfg.DateFormat != "iso" {
			t.Errorf("DateFormat = %q, want iso", cfg.DateFormat)
		}
		if cfg.BufferSize != 4096 {
			t.Errorf("BufferSize = %d, want 4096", cfg.BufferSize)
		}
		if cfg.Workers != 3 {
			t.Errorf("Workers = %d, want 3", cfg.Workers)
		}
	})

	t.Run("invalid numbers are ignored", func(t *testing.T) {
		t.Parallel()

		vars := map[string]string{
			"MDFRONT_BUFFER_SIZE": "big",
			"MDFRONT_WORKERS":     "-2",
		}
		cfg := loadEnvConfig(func(k string) string { return vars[k] })

		if cfg.BufferSize != 0 {
			t.Errorf("BufferSize = %d, want 0", cfg.BufferSize)
		}
		if cfg.Workers != 0 {
			t.Errorf("Workers = %d, want 0", cfg.Workers)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf, []string{
		"MDFRONT_WORKER=4",
		"MDFRONT_WORKERS=4",
		"HOME=/root",
	})

	out := buf.String()
	if !strings.Contains(out, "MDFRONT_WORKER ") {
		t.Errorf("expected warning for MDFRONT_WORKER, got %q", out)
	}
	if strings.Contains(out, "MDFRONT_WORKERS") {
		t.Errorf("known variable should not warn, got %q", out)
	}
	if strings.Contains(out, "HOME") {
		t.Errorf("unrelated variable should not warn, got %q", out)
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Env over config file
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("set values override", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(&envConfig{
			Format:       "yaml",
			OutputFormat: "yaml",
			OutputDir:    "public",
			DateFormat:   "us",
			BufferSize:   512,
			Workers:      2,
		}, cfg)

		if cfg.Extract.Format != "yaml" {
			t.Errorf("Extract.Format = %q, want yaml", cfg.Extract.Format)
		}
		if cfg.Extract.DateFormat != "us" {
			t.Errorf("Extract.DateFormat = %q, want us", cfg.Extract.DateFormat)
		}
		if cfg.Extract.BufferSize != 512 {
			t.Errorf("Extract.BufferSize = %d, want 512", cfg.Extract.BufferSize)
		}
		if cfg.Output.Format != "yaml" {
			t.Errorf("Output.Format = %q, want yaml", cfg.Output.Format)
		}
		if cfg.Output.DefaultDir != "public" {
			t.Errorf("Output.DefaultDir = %q, want public", cfg.Output.DefaultDir)
		}
		if cfg.Output.Workers != 2 {
			t.Errorf("Output.Workers = %d, want 2", cfg.Output.Workers)
		}
	})

	t.Run("unset values keep config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Extract.Format = "toml"
		cfg.Output.Workers = 5
		applyEnvConfig(&envConfig{}, cfg)

		if cfg.Extract.Format != "toml" {
			t.Errorf("Extract.Format = %q, want toml", cfg.Extract.Format)
		}
		if cfg.Output.Workers != 5 {
			t.Errorf("Output.Workers = %d, want 5", cfg.Output.Workers)
		}
	})
}
