package mdfront

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/alnah/go-mdfront/internal/pipeline"
)

// Compile-time interface implementation check.
var _ HTMLConverter = (*pipeline.GoldmarkConverter)(nil)

// Renderer converts Markdown bodies to HTML fragments.
// The converter is built once, on first use. Safe for concurrent use.
type Renderer struct {
	cfg   *settings
	hooks *Hooks

	once sync.Once
	conv HTMLConverter
}

// NewRenderer creates a Renderer.
func NewRenderer(opts ...Option) *Renderer {
	return newRenderer(newSettings(opts))
}

func newRenderer(s *settings) *Renderer {
	return &Renderer{cfg: s, hooks: s.hooks}
}

// converter builds the converter on first call and runs the ConverterInit
// hook on it. Later calls return the same instance, possibly nil.
func (r *Renderer) converter(ctx context.Context, hc HookContext) HTMLConverter {
	r.once.Do(func() {
		var conv HTMLConverter
		switch {
		case r.cfg.converterSet:
			conv = r.cfg.converter
		default:
			conv = pipeline.NewGoldmarkConverter(r.cfg.renderOpts)
		}
		r.conv = r.hooks.ConverterInit.Apply(ctx, conv, hc)
	})
	return r.conv
}

// Render converts content to HTML. A leading frontmatter block is skipped.
// When no converter is available or conversion fails, content is returned
// unchanged.
func (r *Renderer) Render(ctx context.Context, content string, hc HookContext) string {
	conv := r.converter(ctx, hc)
	if conv == nil {
		r.cfg.logger.Warn("no markdown converter, returning content unchanged",
			slog.String("file", hc.File))
		return content
	}

	original := content
	content = r.hooks.PreParse.Apply(ctx, content, hc)
	content = skipFrontMatter(strings.TrimSpace(content))
	content = r.hooks.PreProcess.Apply(ctx, content, hc)

	html, err := conv.ToHTML(ctx, content)
	if err != nil {
		r.cfg.logger.Warn("markdown conversion failed, returning content unchanged",
			slog.String("file", hc.File),
			slog.Any("error", err))
		return original
	}
	return r.hooks.PostProcess.Apply(ctx, html, hc)
}

// FilterPageContent renders content only for Markdown pages (hc.Ext "md").
// Other content passes through.
func (r *Renderer) FilterPageContent(ctx context.Context, content string, hc HookContext) string {
	if !hc.IsMarkdown() {
		return content
	}
	return r.Render(ctx, content, hc)
}
