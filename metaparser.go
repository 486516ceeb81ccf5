package mdfront

import (
	"errors"
	"fmt"

	"github.com/alnah/go-mdfront/internal/metainfo"
)

// MetaParser turns frontmatter header text into Metadata.
type MetaParser interface {
	ParseMeta(text string) (*Metadata, error)
}

// MetaParserFunc adapts a function to MetaParser.
type MetaParserFunc func(text string) (*Metadata, error)

// ParseMeta implements MetaParser.
func (f MetaParserFunc) ParseMeta(text string) (*Metadata, error) { return f(text) }

// Built-in parsers.
var (
	// LineParser reads "key: value" lines and never fails.
	LineParser MetaParser = fieldParser{parse: metainfo.ParseLines}
	// YAMLParser reads a YAML mapping.
	YAMLParser MetaParser = fieldParser{parse: metainfo.ParseYAML}
	// TOMLParser reads a TOML table.
	TOMLParser MetaParser = fieldParser{parse: metainfo.ParseTOML}
)

// MetaParserFor returns the built-in parser for a format name:
// "lines" (or empty), "yaml" or "toml".
func MetaParserFor(format string) (MetaParser, error) {
	parse, err := metainfo.ParserFor(format)
	if err != nil {
		if errors.Is(err, metainfo.ErrUnknownFormat) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
		}
		return nil, err
	}
	return fieldParser{parse: parse}, nil
}

type fieldParser struct {
	parse metainfo.Parser
}

func (p fieldParser) ParseMeta(text string) (*Metadata, error) {
	fields, err := p.parse(text)
	if err != nil {
		return nil, err
	}
	return metadataFromFields(fields), nil
}
