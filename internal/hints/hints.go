// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-mdfront/internal/fileutil"
)

// ForMissingHeader explains that a document without frontmatter is only body.
func ForMissingHeader() string {
	return format("document has no leading --- line; its whole text is the body")
}

// ForMissingClosingDelimiter suggests scanning further when the closing
// marker may lie beyond the window.
func ForMissingClosingDelimiter(window int) string {
	if window <= 0 {
		return format("close the header with a --- line")
	}
	return format(fmt.Sprintf("closing --- not found in the first %d bytes; use --buffer-size to scan further", window))
}

// ForMetadataParse suggests the line parser when a structured header fails.
func ForMetadataParse(formatName string) string {
	if formatName == "" || strings.EqualFold(formatName, "lines") {
		return ""
	}
	return format(fmt.Sprintf("header is not valid %s; use --meta-format lines for key: value headers", formatName))
}

// ForFileRead returns hints for unreadable inputs.
func ForFileRead(path string) string {
	if path != "" && !fileutil.FileExists(path) {
		return format("check the path exists and is a regular file")
	}
	return format("check the file is readable and not empty")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag, MDFRONT_CONFIG and creating a config in ~/.config/go-mdfront/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	if os.Getenv("MDFRONT_CONFIG") == "" {
		hint += " or set MDFRONT_CONFIG"
	}

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-mdfront") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForAvailable lists accepted values.
func ForAvailable(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
