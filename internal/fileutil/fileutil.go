// Package fileutil provides bounded file reads and path helpers.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Sentinel errors for file utility operations.
var (
	ErrInvalidLimit = errors.New("read limit must be positive")
	ErrEmptyPath    = errors.New("path cannot be empty")
)

// ReadPartial reads at most maxBytes from the start of path.
// Files larger than maxBytes are never loaded whole.
func ReadPartial(path string, maxBytes int) ([]byte, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if maxBytes <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, maxBytes)
	}

	f, err := os.Open(path) // #nosec G304 -- caller-provided document path
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, int64(maxBytes)))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// ModTime returns the last modification time of path.
func ModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsMarkdown reports whether path has a .md or .markdown extension.
func IsMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
