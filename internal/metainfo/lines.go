package metainfo

import "strings"

// ParseLines parses "key: value" lines. It never fails: lines without a colon
// or with an empty key are skipped. A later duplicate key overwrites the value
// but keeps the position of the first occurrence.
func ParseLines(text string) ([]Field, error) {
	var fields []Field
	index := make(map[string]int)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		f := parseValue(key, strings.TrimSpace(value))
		if i, seen := index[key]; seen {
			fields[i] = f
			continue
		}
		index[key] = len(fields)
		fields = append(fields, f)
	}

	return fields, nil
}

func parseValue(key, value string) Field {
	if len(value) >= 2 && value[0] == '[' && value[len(value)-1] == ']' {
		items := SplitList(value[1 : len(value)-1])
		for i, item := range items {
			items[i] = unquote(item)
		}
		return Field{Key: key, List: items, IsList: true}
	}
	return Field{Key: key, Value: unquote(value)}
}

// unquote strips one pair of matching surrounding quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
