package main

import (
	"errors"
	"maps"
	"os"
	"slices"

	mdfront "github.com/alnah/go-mdfront"
	"github.com/alnah/go-mdfront/internal/assets"
	"github.com/alnah/go-mdfront/internal/config"
	"github.com/alnah/go-mdfront/internal/dateutil"
	"github.com/alnah/go-mdfront/internal/hints"
	"github.com/alnah/go-mdfront/internal/metainfo"
	"github.com/alnah/go-mdfront/internal/pipeline"
)

// Exit codes for mdfront CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Every file processed
	ExitGeneral = 1 // General/unexpected error, or failed files
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, unreadable input
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, mdfront.ErrFileRead) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, mdfront.ErrUnknownFormat) ||
		errors.Is(err, mdfront.ErrInvalidDateFormat) ||
		errors.Is(err, metainfo.ErrUnknownFormat) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidOutputFormat) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidStyleName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrPathTraversal) ||
		errors.Is(err, pipeline.ErrInvalidBaseURL) {
		return ExitUsage
	}

	return ExitGeneral
}

// hintFor returns an actionable hint for err, or "".
// window is the header scan window used, 0 if unknown.
func hintFor(err error, window int) string {
	switch {
	case errors.Is(err, mdfront.ErrMissingHeader):
		return hints.ForMissingHeader()
	case errors.Is(err, mdfront.ErrMissingClosingDelimiter):
		return hints.ForMissingClosingDelimiter(window)
	case errors.Is(err, mdfront.ErrMetadataParse):
		var fe *formatError
		if errors.As(err, &fe) {
			return hints.ForMetadataParse(fe.format)
		}
		return ""
	case errors.Is(err, mdfront.ErrFileRead), errors.Is(err, ErrReadInput):
		var pe *os.PathError
		if errors.As(err, &pe) {
			return hints.ForFileRead(pe.Path)
		}
		return hints.ForFileRead("")
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, mdfront.ErrUnknownFormat), errors.Is(err, metainfo.ErrUnknownFormat):
		return hints.ForAvailable([]string{metainfo.FormatLines, metainfo.FormatYAML, metainfo.FormatTOML})
	case errors.Is(err, mdfront.ErrInvalidDateFormat), errors.Is(err, dateutil.ErrInvalidDateFormat):
		return hints.ForAvailable(slices.Sorted(maps.Keys(dateutil.DatePresets)))
	case errors.Is(err, ErrInvalidOutputFormat):
		return hints.ForAvailable([]string{config.OutputFormatJSON, config.OutputFormatYAML})
	case errors.Is(err, assets.ErrStyleNotFound):
		return hints.ForAvailable(assets.NewEmbeddedLoader().Names())
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}

// formatError records the header format a parse failure happened under.
type formatError struct {
	format string
	err    error
}

func (e *formatError) Error() string { return e.err.Error() }
func (e *formatError) Unwrap() error { return e.err }
