// Package metainfo parses frontmatter header text into ordered key/value fields.
//
// Three formats are supported:
//   - lines: "key: value" per line, "[a, b]" values become lists (default)
//   - yaml: a YAML mapping decoded with goccy/go-yaml
//   - toml: a TOML table decoded with pelletier/go-toml/v2
//
// Every parser flattens values to a string or a list of strings. Nested
// structures are rendered with fmt and are not interpreted further.
package metainfo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat indicates an unsupported metadata format name.
var ErrUnknownFormat = errors.New("unknown metadata format")

// Format names accepted by ParserFor.
const (
	FormatLines = "lines"
	FormatYAML  = "yaml"
	FormatTOML  = "toml"
)

// Field is one parsed metadata entry.
type Field struct {
	Key    string
	Value  string
	List   []string
	IsList bool
}

// Parser turns header text into fields, keeping the order of first appearance.
type Parser func(text string) ([]Field, error)

// ParserFor returns the parser registered under name.
func ParserFor(name string) (Parser, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FormatLines:
		return ParseLines, nil
	case FormatYAML, "yml":
		return ParseYAML, nil
	case FormatTOML:
		return ParseTOML, nil
	default:
		return nil, fmt.Errorf("%w: %q (use lines, yaml or toml)", ErrUnknownFormat, name)
	}
}

// SplitList splits a comma-separated string, trimming items and dropping empties.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// toField flattens a decoded YAML/TOML value.
func toField(key string, v any) Field {
	switch val := v.(type) {
	case nil:
		return Field{Key: key}
	case string:
		return Field{Key: key, Value: val}
	case []string:
		return Field{Key: key, List: compact(val), IsList: true}
	case []any:
		items := make([]string, 0, len(val))
		for _, item := range val {
			items = append(items, fmt.Sprint(item))
		}
		return Field{Key: key, List: compact(items), IsList: true}
	default:
		return Field{Key: key, Value: fmt.Sprint(val)}
	}
}

func compact(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
