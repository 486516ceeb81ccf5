// Package config loads the YAML configuration of the mdfront CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdfront/internal/assets"
	"github.com/alnah/go-mdfront/internal/dateutil"
	"github.com/alnah/go-mdfront/internal/fileutil"
	"github.com/alnah/go-mdfront/internal/metainfo"
	"github.com/alnah/go-mdfront/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field limits.
const (
	MaxPathLength       = 4096
	MaxStyleLength      = 50
	MaxCSSLength        = 64 * 1024
	MaxBufferSize       = 64 * 1024 * 1024
	MaxWorkers          = 256
	MaxDateFormatLength = dateutil.MaxDateFormatLength
)

// Output formats of the extract command.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

const configDirName = "go-mdfront"

// Config holds all CLI configuration.
type Config struct {
	Extract ExtractConfig `yaml:"extract"`
	Render  RenderConfig  `yaml:"render"`
	Output  OutputConfig  `yaml:"output"`
}

// ExtractConfig controls frontmatter extraction.
type ExtractConfig struct {
	BufferSize     int    `yaml:"bufferSize"`     // Header scan window (0 = library default)
	FullBufferSize int    `yaml:"fullBufferSize"` // Read limit with --full (0 = library default)
	FullBody       bool   `yaml:"fullBody"`       // Always return the body
	Format         string `yaml:"format"`         // "lines", "yaml" or "toml"
	DateFormat     string `yaml:"dateFormat"`     // publish_date fallback format
}

// RenderConfig controls HTML rendering.
type RenderConfig struct {
	Legacy         bool   `yaml:"legacy"`         // Safe mode only
	Highlight      *bool  `yaml:"highlight"`      // nil = enabled
	HighlightStyle string `yaml:"highlightStyle"` // chroma style name
	Standalone     bool   `yaml:"standalone"`     // Wrap in a full HTML document
	Style          string `yaml:"style"`          // Stylesheet name or .css path (empty = none)
	StyleDir       string `yaml:"styleDir"`       // Custom styles directory, searched before built-ins
	CSS            string `yaml:"css"`            // Extra inline CSS appended to the style
	BaseURL        string `yaml:"baseURL"`        // Resolve relative links against this URL
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Format     string `yaml:"format"`     // "json" or "yaml" for extract
	DefaultDir string `yaml:"defaultDir"` // Default render output directory (empty = next to source)
	Workers    int    `yaml:"workers"`    // Batch workers (0 = auto)
}

// HighlightEnabled reports whether syntax highlighting is on.
func (r RenderConfig) HighlightEnabled() bool {
	return r.Highlight == nil || *r.Highlight
}

// Validate checks configuration values.
func (c *Config) Validate() error {
	if c.Extract.BufferSize < 0 || c.Extract.BufferSize > MaxBufferSize {
		return fmt.Errorf("%w: extract.bufferSize must be between 0 and %d, got %d", ErrInvalidValue, MaxBufferSize, c.Extract.BufferSize)
	}
	if c.Extract.FullBufferSize < 0 || c.Extract.FullBufferSize > MaxBufferSize {
		return fmt.Errorf("%w: extract.fullBufferSize must be between 0 and %d, got %d", ErrInvalidValue, MaxBufferSize, c.Extract.FullBufferSize)
	}
	if _, err := metainfo.ParserFor(c.Extract.Format); err != nil {
		return fmt.Errorf("extract.format: %w", err)
	}
	if err := validateFieldLength("extract.dateFormat", c.Extract.DateFormat, MaxDateFormatLength); err != nil {
		return err
	}
	if _, err := dateutil.Layout(c.Extract.DateFormat); err != nil {
		return fmt.Errorf("extract.dateFormat: %w", err)
	}

	if err := validateFieldLength("render.highlightStyle", c.Render.HighlightStyle, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("render.css", c.Render.CSS, MaxCSSLength); err != nil {
		return err
	}
	if err := validateFieldLength("render.style", c.Render.Style, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("render.styleDir", c.Render.StyleDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("render.baseURL", c.Render.BaseURL, MaxPathLength); err != nil {
		return err
	}

	switch strings.ToLower(c.Output.Format) {
	case "", OutputFormatJSON, OutputFormatYAML:
	default:
		return fmt.Errorf("%w: output.format must be json or yaml, got %q", ErrInvalidValue, c.Output.Format)
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if c.Output.Workers < 0 || c.Output.Workers > MaxWorkers {
		return fmt.Errorf("%w: output.workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Output.Workers)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	return &Config{
		Extract: ExtractConfig{Format: metainfo.FormatLines, DateFormat: dateutil.DefaultDateTimeFormat},
		Render:  RenderConfig{Style: assets.DefaultStyleName},
		Output:  OutputConfig{Format: OutputFormatJSON},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Missing fields keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-mdfront/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
