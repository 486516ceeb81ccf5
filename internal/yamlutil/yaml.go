// Package yamlutil wraps YAML parsing to isolate the external dependency.
// Config loading, frontmatter parsing and CLI output all go through here.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
	ErrNotMapping     = errors.New("yamlutil: document is not a mapping")
)

// MapItem is one key/value pair of an ordered mapping.
type MapItem struct {
	Key   string
	Value any
}

func checkSize(data []byte) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	return nil
}

func Unmarshal(data []byte, v any) error {
	if err := checkSize(data); err != nil {
		return err
	}
	if v == nil {
		return ErrNilDestination
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	if err := checkSize(data); err != nil {
		return err
	}
	if v == nil {
		return ErrNilDestination
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// UnmarshalOrdered decodes a top-level mapping keeping the document's key order.
// Nested mappings are decoded as map[string]any.
func UnmarshalOrdered(data []byte) ([]MapItem, error) {
	if err := checkSize(data); err != nil {
		return nil, err
	}

	var slice yaml.MapSlice
	if err := yaml.Unmarshal(data, &slice); err != nil {
		var shape any
		if shapeErr := yaml.Unmarshal(data, &shape); shapeErr == nil && shape != nil {
			return nil, fmt.Errorf("%w: got %T", ErrNotMapping, shape)
		}
		return nil, fmt.Errorf("yamlutil: %w", err)
	}

	items := make([]MapItem, 0, len(slice))
	for _, item := range slice {
		items = append(items, MapItem{Key: fmt.Sprint(item.Key), Value: item.Value})
	}
	return items, nil
}

func Marshal(v any) ([]byte, error) {
	result, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return result, nil
}

// MarshalOrdered encodes items as a mapping in the given order.
func MarshalOrdered(items []MapItem) ([]byte, error) {
	slice := make(yaml.MapSlice, 0, len(items))
	for _, item := range items {
		slice = append(slice, yaml.MapItem{Key: item.Key, Value: item.Value})
	}
	return Marshal(slice)
}
