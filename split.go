package mdfront

import "strings"

// Split markers: a dash or plus delimiter on its own line.
const (
	splitDashMarker = "\n---\n"
	splitPlusMarker = "\n+++\n"
)

// Split separates a header from the body the simple way: the header runs up
// to the first "---" or "+++" line, and is parsed with LineParser without
// defaults. When the header has no title, a level-1 heading in the first
// 200 bytes of the body becomes the title and is removed.
//
// A document without a marker line is returned as body with empty metadata.
func (e *Extractor) Split(content string) *SplitResult {
	res := &SplitResult{Meta: NewMetadata(), Body: content}

	pos := strings.Index(content, splitDashMarker)
	if pos < 0 {
		pos = strings.Index(content, splitPlusMarker)
	}
	if pos < 0 {
		return res
	}

	end := pos + len(splitDashMarker)
	res.Header = content[:end]
	res.Body = content[end:]
	if meta, err := LineParser.ParseMeta(res.Header); err == nil {
		res.Meta = meta
	}

	if res.Meta.Title() == "" {
		if title, body, ok := splitTitle(res.Body); ok {
			res.Meta.SetString(FieldTitle, title)
			res.Body = body
		}
	}
	return res
}

// splitTitle finds a level-1 heading at the start of body or at the start
// of a line within the first 200 bytes. The heading line itself may run
// past that window.
func splitTitle(body string) (title, rest string, ok bool) {
	search := cut(body, legacyTitleLookahead)

	start := -1
	if strings.HasPrefix(search, "#") {
		start = 0
	} else if i := strings.Index(search, "\n#"); i >= 0 {
		start = i + 1
	}
	if start < 0 {
		return "", body, false
	}

	line := body[start:]
	end := len(body)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
		end = start + i + 1
	}
	if headingLevel(line) != 1 {
		return "", body, false
	}
	title = strings.TrimSpace(line[1:])
	if title == "" {
		return "", body, false
	}
	return title, body[:start] + body[end:], true
}
