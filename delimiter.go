package mdfront

import "strings"

const (
	delimiterChar = '-'
	delimiter     = "---"
	// closingMarker is a delimiter at the start of a line.
	closingMarker = "\n" + delimiter
)

// splitHeader strips the opening dashes of content and looks for the closing
// marker within the first window bytes of content. It returns the raw header
// text and everything after the marker.
func splitHeader(content string, window int) (header, rest string, ok bool) {
	trimmed := strings.TrimLeft(content, string(delimiterChar))
	scan := cut(trimmed, window-(len(content)-len(trimmed)))

	pos := strings.Index(scan, closingMarker)
	if pos < 0 {
		return "", "", false
	}
	return trimmed[:pos], trimmed[pos+len(closingMarker):], true
}

// skipFrontMatter drops a leading frontmatter block from content.
// Content without a leading dash or without a closing marker is returned
// unchanged.
func skipFrontMatter(content string) string {
	if content == "" || content[0] != delimiterChar {
		return content
	}
	_, rest, ok := splitHeader(content, len(content))
	if !ok {
		return content
	}
	return strings.TrimLeft(rest, string(delimiterChar))
}

// cut returns at most n leading bytes of s.
func cut(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	return s[:n]
}
