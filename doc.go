// Package mdfront extracts frontmatter metadata from Markdown documents and
// renders Markdown bodies to HTML.
//
// # Quick Start
//
// Extract metadata and the cleaned body, then render the body:
//
//	p := mdfront.Default()
//
//	res := p.ParseFrontMatter(ctx, doc, mdfront.ExtractOptions{FullBody: true})
//	if !res.Success() {
//	    log.Printf("no frontmatter: %v", res.Err)
//	}
//	fmt.Println(res.Meta.Title())
//
//	html := p.ProcessMarkdown(ctx, res.Body, mdfront.HookContext{})
//
// # Frontmatter
//
// A frontmatter block opens with a line of three or more dashes and closes at
// the next line starting with "---". Only the first bytes of a document are
// scanned for the closing marker (DefaultBufferSize); set
// ExtractOptions.FullBody to also return the body, in which case files are
// read up to DefaultFullBufferSize.
//
// The header is parsed line by line as "key: value" pairs by default.
// Values written as "[a, b]" become lists. YAML and TOML headers are
// supported through WithMetaParser or WithMetadataFormat.
//
// Recognized fields (title, summary, creation_date, last_modified,
// publish_date, sort_order, category, tags, author, slug) are always present
// after a successful extraction. A level-1 heading at the top of the body
// overrides the frontmatter title and is removed from the body.
//
// # Rendering
//
// Rendering uses goldmark with safe mode, hard line breaks and escaped raw
// HTML. The converter is built once per Renderer, on first use. Rendering
// never fails: when the converter is unavailable or errors, the input is
// returned unchanged.
//
// # Hooks
//
// Every Processor owns a Hooks value with ordered filter chains that
// transform values at fixed points of extraction and rendering:
//
//	p, _ := mdfront.New()
//	p.Hooks().PostProcess.Add("wrap", 10, func(ctx context.Context, html string, hc mdfront.HookContext) string {
//	    return "<article>" + html + "</article>"
//	})
//
// # Error Handling
//
// Extraction never returns a Go error. Failures are carried in
// ParseResult.Err and match the package sentinels with errors.Is:
//
//	if errors.Is(res.Err, mdfront.ErrMissingHeader) {
//	    // whole document is body
//	}
//
// ParseResult.Meta is never nil, even on failure.
package mdfront
