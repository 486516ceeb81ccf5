// Package pipeline implements the Markdown-to-HTML render capability.
//
// This package handles the stages that touch markdown syntax or HTML markup:
//   - Line ending normalization
//   - Markdown to HTML conversion via Goldmark (safe mode, hard line breaks,
//     escaped raw HTML, syntax highlighting)
//   - Wrapping an HTML fragment in a standalone HTML5 document
//
// Frontmatter handling lives in the root mdfront package. This package never
// looks at metadata delimiters.
package pipeline
