package mdfront

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Extractor splits frontmatter metadata from Markdown documents.
// Create with NewExtractor. Safe for concurrent use.
type Extractor struct {
	cfg   *settings
	hooks *Hooks
}

// NewExtractor creates an Extractor.
// Returns an error for an unknown metadata format or an invalid date format.
func NewExtractor(opts ...Option) (*Extractor, error) {
	s := newSettings(opts)
	if err := s.resolve(); err != nil {
		return nil, err
	}
	return newExtractor(s), nil
}

func newExtractor(s *settings) *Extractor {
	return &Extractor{cfg: s, hooks: s.hooks}
}

// Extract parses the frontmatter of content, or of opts.File when content
// is blank. Failures are reported in the result, never as a panic or nil
// result.
//
// Without opts.FullBody, Body holds the whole trimmed document. With it,
// Body holds the text after the header, minus a leading level-1 heading
// which then becomes the title.
func (e *Extractor) Extract(ctx context.Context, content string, opts ExtractOptions) *ParseResult {
	hc := hookContextFor(opts.File, opts.FullBody)
	res := &ParseResult{Meta: NewMetadata()}

	if err := e.extract(ctx, content, opts, &hc, res); err != nil {
		res.Err = err
		e.cfg.logger.Debug("frontmatter extraction failed",
			slog.String("file", opts.File),
			slog.Any("error", err))
	}
	return res
}

func (e *Extractor) extract(ctx context.Context, content string, opts ExtractOptions, hc *HookContext, res *ParseResult) error {
	window := e.cfg.bufferSize
	if opts.BufferSize > 0 {
		window = opts.BufferSize
	}
	window = e.hooks.BufferSize.Apply(ctx, window, *hc)
	if window <= 0 {
		window = DefaultBufferSize
	}

	content = strings.TrimSpace(content)
	if content == "" {
		if opts.File == "" {
			return ErrEmptyInput
		}
		data, err := e.readFile(opts.File, window, opts.FullBody)
		if err != nil {
			return err
		}
		content = data
	}
	res.Body = content

	if content[0] != delimiterChar {
		return ErrMissingHeader
	}

	header, rest, ok := splitHeader(content, window)
	if !ok {
		return fmt.Errorf("%w within %d bytes", ErrMissingClosingDelimiter, window)
	}

	header = strings.TrimSpace(strings.Trim(header, string(delimiterChar)))
	if header == "" {
		return nil
	}

	if opts.FullBody {
		res.Body = strings.TrimSpace(strings.TrimLeft(rest, string(delimiterChar)))
	}

	meta, err := e.cfg.metaParser.ParseMeta(header)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMetadataParse, err)
	}
	if meta == nil {
		meta = NewMetadata()
	}
	applyDefaults(meta)

	if opts.FullBody && strings.HasPrefix(res.Body, "#") {
		res.Body = e.reconcileTitle(ctx, meta, res.Body, hc)
		if hooked := e.hooks.Title.Apply(ctx, meta, *hc); hooked != nil {
			meta = hooked
		}
	}

	normalizeTags(meta)
	e.resolvePublishDate(meta, opts.File)

	res.Meta = meta
	return nil
}

// readFile reads the document prefix. The full limit applies when the body
// is requested, unless the window is larger.
func (e *Extractor) readFile(path string, window int, fullBody bool) (string, error) {
	limit := window
	if fullBody {
		limit = max(limit, e.cfg.fullBufferSize)
	}
	data, err := e.cfg.reader.ReadPartial(path, limit)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFileRead, err)
	}
	content := strings.TrimSpace(string(data))
	if content == "" {
		return "", fmt.Errorf("%w: %s: empty content", ErrFileRead, path)
	}
	return content, nil
}

// resolvePublishDate falls back to creation_date, then to the file
// modification time.
func (e *Extractor) resolvePublishDate(meta *Metadata, file string) {
	if meta.GetString(FieldPublishDate) != "" {
		return
	}
	if created := meta.GetString(FieldCreationDate); created != "" {
		meta.SetString(FieldPublishDate, created)
		return
	}
	if file == "" {
		return
	}
	mtime, err := e.cfg.reader.ModTime(file)
	if err != nil {
		e.cfg.logger.Debug("no modification time for publish_date",
			slog.String("file", file),
			slog.Any("error", err))
		return
	}
	meta.SetString(FieldPublishDate, mtime.Format(e.cfg.dateLayout))
}
