package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"

	mdfront "github.com/alnah/go-mdfront"
	"github.com/alnah/go-mdfront/internal/config"
)

// loadConfig resolves configuration with the precedence
// flags > environment > config file > defaults. Flags are merged by the caller.
func loadConfig(common commonFlags, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig(env.Getenv)
	if !common.quiet {
		warnUnknownEnvVars(env.Stderr, osEnviron())
	}

	name := common.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	var cfg *config.Config
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	} else if env.Config != nil {
		c := *env.Config
		cfg = &c
	} else {
		cfg = config.DefaultConfig()
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// configureRuntime sizes GOMAXPROCS to the container quota.
// The returned func restores the previous value.
func configureRuntime(common commonFlags, w io.Writer) func() {
	logf := func(string, ...any) {}
	if common.verbose {
		logf = func(format string, args ...any) {
			fmt.Fprintf(w, format+"\n", args...)
		}
	}
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	undo, _ := maxprocs.Set(maxprocs.Logger(logf))
	return undo
}

// newLogger returns the library logger: debug with --verbose, nothing with
// --quiet, warnings otherwise.
func newLogger(common commonFlags, w io.Writer) *slog.Logger {
	if common.quiet {
		return slog.New(slog.DiscardHandler)
	}
	level := slog.LevelWarn
	if common.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// renderOptionsFor maps the render section of the config to goldmark options.
func renderOptionsFor(rc config.RenderConfig) mdfront.RenderOptions {
	if rc.Legacy {
		return mdfront.LegacyRenderOptions()
	}
	opts := mdfront.DefaultRenderOptions()
	opts.Highlight = rc.HighlightEnabled()
	opts.HighlightStyle = rc.HighlightStyle
	return opts
}

// processorOptions translates a validated config into library options.
func processorOptions(cfg *config.Config, logger *slog.Logger) []mdfront.Option {
	opts := []mdfront.Option{
		mdfront.WithLogger(logger),
		mdfront.WithRenderOptions(renderOptionsFor(cfg.Render)),
	}
	if cfg.Extract.BufferSize > 0 {
		opts = append(opts, mdfront.WithBufferSize(cfg.Extract.BufferSize))
	}
	if cfg.Extract.FullBufferSize > 0 {
		opts = append(opts, mdfront.WithFullBufferSize(cfg.Extract.FullBufferSize))
	}
	if cfg.Extract.Format != "" {
		opts = append(opts, mdfront.WithMetadataFormat(cfg.Extract.Format))
	}
	if cfg.Extract.DateFormat != "" {
		opts = append(opts, mdfront.WithDateFormat(cfg.Extract.DateFormat))
	}
	return opts
}

// validateOutputFormat accepts json and yaml, case-insensitively.
func validateOutputFormat(format string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(format)); f {
	case config.OutputFormatJSON, config.OutputFormatYAML:
		return f, nil
	case "":
		return config.OutputFormatJSON, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidOutputFormat, format)
	}
}
