package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// RenderOptions configures the goldmark render capability.
type RenderOptions struct {
	// SafeMode drops raw HTML and dangerous link targets instead of passing them through.
	SafeMode bool
	// HardBreaks renders every newline inside a paragraph as <br />.
	HardBreaks bool
	// EscapeMarkup renders raw HTML as visible escaped text. Takes precedence over SafeMode.
	EscapeMarkup bool
	// Highlight enables chroma syntax highlighting for fenced code blocks.
	Highlight bool
	// HighlightStyle names the chroma style; empty uses the library default.
	HighlightStyle string
}

// DefaultRenderOptions enables every safety feature plus highlighting.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		SafeMode:     true,
		HardBreaks:   true,
		EscapeMarkup: true,
		Highlight:    true,
	}
}

// LegacyRenderOptions is the reduced-feature mode: safe mode only.
func LegacyRenderOptions() RenderOptions {
	return RenderOptions{SafeMode: true}
}

// GoldmarkConverter converts Markdown to HTML fragments using goldmark (pure Go).
type GoldmarkConverter struct {
	md   goldmark.Markdown
	opts RenderOptions
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions.
func NewGoldmarkConverter(opts RenderOptions) *GoldmarkConverter {
	extensions := []goldmark.Extender{
		extension.GFM,      // Tables, strikethrough, autolinks, task lists
		extension.Footnote, // [^1] footnotes
	}
	if opts.Highlight {
		hlOpts := []highlighting.Option{
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true), // CSS classes, styling stays with the site theme
			),
		}
		if opts.HighlightStyle != "" {
			hlOpts = append(hlOpts, highlighting.WithStyle(opts.HighlightStyle))
		}
		extensions = append(extensions, highlighting.NewHighlighting(hlOpts...))
	}

	rendererOpts := []renderer.Option{html.WithXHTML()}
	if opts.HardBreaks {
		rendererOpts = append(rendererOpts, html.WithHardWraps())
	}
	if !opts.SafeMode && !opts.EscapeMarkup {
		rendererOpts = append(rendererOpts, html.WithUnsafe())
	}
	if opts.EscapeMarkup {
		rendererOpts = append(rendererOpts,
			renderer.WithNodeRenderers(util.Prioritized(&escapedHTMLRenderer{}, escapedHTMLPriority)))
	}

	md := goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(rendererOpts...),
	)
	return &GoldmarkConverter{md: md, opts: opts}
}

// Options returns the configuration the converter was built with.
func (c *GoldmarkConverter) Options() RenderOptions {
	return c.opts
}

// ToHTML converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
