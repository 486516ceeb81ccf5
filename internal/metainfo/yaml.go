package metainfo

import (
	"strings"

	"github.com/alnah/go-mdfront/internal/yamlutil"
)

// ParseYAML decodes a YAML mapping. Blank input yields no fields.
func ParseYAML(text string) ([]Field, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	items, err := yamlutil.UnmarshalOrdered([]byte(text))
	if err != nil {
		return nil, err
	}

	fields := make([]Field, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.Key) == "" {
			continue
		}
		fields = append(fields, toField(item.Key, item.Value))
	}
	return fields, nil
}
