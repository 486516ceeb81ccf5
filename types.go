package mdfront

import (
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdfront/internal/pipeline"
)

// Size defaults in bytes.
const (
	DefaultBufferSize     = 2048            // header scan window
	DefaultFullBufferSize = 5 * 1024 * 1024 // file read limit when the body is requested
	DefaultTitleLookahead = 150             // first-line search for a level-1 heading
)

// legacyTitleLookahead bounds the heading search of Split.
const legacyTitleLookahead = 200

// HTMLConverter converts Markdown to an HTML fragment.
type HTMLConverter = pipeline.HTMLConverter

// RenderOptions configures the built-in goldmark converter.
type RenderOptions = pipeline.RenderOptions

// DefaultRenderOptions enables safe mode, hard line breaks, escaped markup
// and syntax highlighting.
func DefaultRenderOptions() RenderOptions { return pipeline.DefaultRenderOptions() }

// LegacyRenderOptions enables safe mode only.
func LegacyRenderOptions() RenderOptions { return pipeline.LegacyRenderOptions() }

// HookContext describes the document a hook is invoked for.
type HookContext struct {
	File           string // source path, may be empty
	Ext            string // extension without dot, e.g. "md"
	FullBody       bool   // body was requested
	TitleExtracted bool   // a level-1 heading was moved to the title
}

// IsMarkdown reports whether the context extension is "md".
func (hc HookContext) IsMarkdown() bool {
	return strings.EqualFold(strings.TrimPrefix(hc.Ext, "."), "md")
}

// hookContextFor derives Ext from the file name when unset.
func hookContextFor(file string, fullBody bool) HookContext {
	return HookContext{
		File:     file,
		Ext:      strings.TrimPrefix(filepath.Ext(file), "."),
		FullBody: fullBody,
	}
}

// ExtractOptions controls a single extraction.
type ExtractOptions struct {
	File       string // read from this file when content is empty
	FullBody   bool   // also return the body, reading files up to the full limit
	BufferSize int    // header scan window, 0 uses the extractor default
}

// ParseResult is the outcome of an extraction.
// Meta is never nil.
type ParseResult struct {
	Meta *Metadata
	Body string
	Err  error
}

// Success reports whether extraction succeeded.
func (r *ParseResult) Success() bool { return r.Err == nil }

// Message returns the error text, or "" on success.
func (r *ParseResult) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// SplitResult is the outcome of Split.
type SplitResult struct {
	Header string // header including its closing marker line
	Meta   *Metadata
	Body   string
}
