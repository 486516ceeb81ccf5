package metainfo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ParseTOML decodes a TOML table. go-toml decodes into an unordered map, so
// keys are ordered by the line where they first appear in text; keys that
// cannot be located (dotted or quoted forms) follow in lexical order.
func ParseTOML(text string) ([]Field, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	var table map[string]any
	if err := toml.Unmarshal([]byte(text), &table); err != nil {
		return nil, fmt.Errorf("toml: %w", err)
	}

	positions := keyLines(text)
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.SliceStable(keys, func(i, j int) bool {
		pi, iok := positions[keys[i]]
		pj, jok := positions[keys[j]]
		switch {
		case iok && jok:
			return pi < pj
		case iok != jok:
			return iok
		default:
			return keys[i] < keys[j]
		}
	})

	fields := make([]Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, toField(k, table[k]))
	}
	return fields, nil
}

// keyLines maps bare top-level keys and table headers to their first line number.
func keyLines(text string) map[string]int {
	positions := make(map[string]int)
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		var key string
		switch {
		case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
			key = strings.Trim(line, "[] ")
		default:
			k, _, ok := strings.Cut(line, "=")
			if !ok {
				continue
			}
			key = strings.TrimSpace(k)
		}
		if _, seen := positions[key]; !seen && key != "" {
			positions[key] = n
		}
	}
	return positions
}
