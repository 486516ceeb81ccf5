package assets

import (
	"fmt"
	"strings"
)

// ValidateStyleName checks that a style name is safe for use as a filename.
// Names may not be empty or contain path separators or dots.
func ValidateStyleName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidStyleName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidStyleName, name)
	}
	return nil
}
