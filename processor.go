package mdfront

import (
	"context"
	"sync"
)

// Processor coordinates an Extractor and a Renderer sharing one Hooks.
// Create with New, or use the process-wide Default.
type Processor struct {
	hooks     *Hooks
	extractor *Extractor
	renderer  *Renderer
}

// New creates a Processor.
// Returns an error for an unknown metadata format or an invalid date format.
func New(opts ...Option) (*Processor, error) {
	s := newSettings(opts)
	if err := s.resolve(); err != nil {
		return nil, err
	}
	return &Processor{
		hooks:     s.hooks,
		extractor: newExtractor(s),
		renderer:  newRenderer(s),
	}, nil
}

// Default returns the process-wide Processor, built with default options on
// first call.
var Default = sync.OnceValue(func() *Processor {
	p, err := New()
	if err != nil {
		// Defaults are static; a failure here is a programming error.
		panic("mdfront: default processor: " + err.Error())
	}
	return p
})

// Hooks returns the extension points shared by extraction and rendering.
func (p *Processor) Hooks() *Hooks { return p.hooks }

// Extractor returns the underlying Extractor.
func (p *Processor) Extractor() *Extractor { return p.extractor }

// Renderer returns the underlying Renderer.
func (p *Processor) Renderer() *Renderer { return p.renderer }

// ParseFrontMatter extracts metadata and body. See Extractor.Extract.
func (p *Processor) ParseFrontMatter(ctx context.Context, content string, opts ExtractOptions) *ParseResult {
	return p.extractor.Extract(ctx, content, opts)
}

// ProcessMarkdown renders content to HTML. See Renderer.Render.
func (p *Processor) ProcessMarkdown(ctx context.Context, content string, hc HookContext) string {
	return p.renderer.Render(ctx, content, hc)
}

// FilterPageContent renders Markdown pages and passes other content through.
func (p *Processor) FilterPageContent(ctx context.Context, content string, hc HookContext) string {
	return p.renderer.FilterPageContent(ctx, content, hc)
}

// SplitDocument separates header and body the simple way. See Extractor.Split.
func (p *Processor) SplitDocument(content string) *SplitResult {
	return p.extractor.Split(content)
}
