package mdfront

import (
	"context"
	"strings"
	"unicode"

	"github.com/alnah/go-mdfront/internal/pipeline"
)

// reconcileTitle moves a leading level-1 heading from body into the title
// field and returns the remaining body.
func (e *Extractor) reconcileTitle(_ context.Context, meta *Metadata, body string, hc *HookContext) string {
	title, rest, ok := extractTitle(body, e.cfg.titleLookahead)
	if !ok {
		return body
	}
	meta.SetString(FieldTitle, title)
	hc.TitleExtracted = true
	return rest
}

// extractTitle inspects the first line of body within lookahead bytes.
// A line with exactly one leading '#' and some text yields the title and
// the body without that line. Line endings of the returned body are
// normalized.
func extractTitle(body string, lookahead int) (title, rest string, ok bool) {
	search := pipeline.NormalizeLineEndings(cut(body, lookahead))

	line := search
	nl := strings.IndexByte(search, '\n')
	if nl >= 0 {
		line = search[:nl]
	} else if len(body) > lookahead {
		// First line is longer than the lookahead.
		return "", body, false
	}

	if headingLevel(line) != 1 {
		return "", body, false
	}
	title = trimClosingHashes(strings.TrimSpace(line[1:]))
	if title == "" {
		return "", body, false
	}

	if nl < 0 {
		return title, "", true
	}
	normalized := pipeline.NormalizeLineEndings(body)
	return title, strings.TrimSpace(normalized[nl+1:]), true
}

// headingLevel counts the leading '#' characters of line.
func headingLevel(line string) int {
	return len(line) - len(strings.TrimLeft(line, "#"))
}

// trimClosingHashes drops a closing run of '#' when it stands alone or
// follows whitespace, so "C#" keeps its hash and "Title ##" does not.
func trimClosingHashes(text string) string {
	stripped := strings.TrimRight(text, "#")
	if stripped == "" || stripped != strings.TrimRightFunc(stripped, unicode.IsSpace) {
		return strings.TrimSpace(stripped)
	}
	return text
}
