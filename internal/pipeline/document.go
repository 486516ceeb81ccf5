package pipeline

import (
	"fmt"
	"html"
	"strings"
)

// htmlTemplate wraps Goldmark's fragment output in a complete HTML5 document.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
%s</head>
<body>
%s
</body>
</html>`

// defaultDocumentTitle is used when the document carries no title.
const defaultDocumentTitle = "Document"

// DocumentData describes the head of a standalone document.
type DocumentData struct {
	Title       string
	Description string
	Author      string
	Keywords    []string
	CSS         string
}

// WrapDocument embeds an HTML fragment in a standalone HTML5 document.
// All head values are escaped; CSS is sanitized against </style> breakouts.
func WrapDocument(fragment string, data DocumentData) string {
	title := strings.TrimSpace(data.Title)
	if title == "" {
		title = defaultDocumentTitle
	}

	var head strings.Builder
	writeMeta(&head, "description", data.Description)
	writeMeta(&head, "author", data.Author)
	writeMeta(&head, "keywords", strings.Join(data.Keywords, ", "))
	if data.CSS != "" {
		head.WriteString("<style>")
		head.WriteString(sanitizeCSS(data.CSS))
		head.WriteString("</style>\n")
	}

	return fmt.Sprintf(htmlTemplate, html.EscapeString(title), head.String(), strings.TrimRight(fragment, "\n"))
}

func writeMeta(b *strings.Builder, name, content string) {
	if content == "" {
		return
	}
	fmt.Fprintf(b, "<meta name=\"%s\" content=\"%s\">\n", name, html.EscapeString(content))
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
