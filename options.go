package mdfront

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/alnah/go-mdfront/internal/dateutil"
	"github.com/alnah/go-mdfront/internal/fileutil"
)

// FileReader reads document prefixes and modification times.
type FileReader interface {
	ReadPartial(path string, maxBytes int) ([]byte, error)
	ModTime(path string) (time.Time, error)
}

type osFileReader struct{}

func (osFileReader) ReadPartial(path string, maxBytes int) ([]byte, error) {
	return fileutil.ReadPartial(path, maxBytes)
}

func (osFileReader) ModTime(path string) (time.Time, error) {
	return fileutil.ModTime(path)
}

// Option configures a Processor, Extractor or Renderer.
type Option func(*settings)

// settings holds the configuration shared by all constructors.
type settings struct {
	logger         *slog.Logger
	hooks          *Hooks
	converter      HTMLConverter
	converterSet   bool
	renderOpts     RenderOptions
	bufferSize     int
	fullBufferSize int
	titleLookahead int
	metaParser     MetaParser
	metaFormat     string
	dateFormat     string
	dateLayout     string
	reader         FileReader
}

func newSettings(opts []Option) *settings {
	s := &settings{
		renderOpts:     DefaultRenderOptions(),
		bufferSize:     DefaultBufferSize,
		fullBufferSize: DefaultFullBufferSize,
		titleLookahead: DefaultTitleLookahead,
		reader:         osFileReader{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.hooks == nil {
		s.hooks = NewHooks()
	}
	return s
}

// resolve validates the values that come from user input.
func (s *settings) resolve() error {
	if s.metaParser == nil {
		parser, err := MetaParserFor(s.metaFormat)
		if err != nil {
			return err
		}
		s.metaParser = parser
	}
	layout, err := dateutil.Layout(s.dateFormat)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDateFormat, err)
	}
	s.dateLayout = layout
	return nil
}

// WithLogger sets the logger. Logging is discarded by default.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}

// WithHooks shares an existing Hooks value.
func WithHooks(h *Hooks) Option {
	return func(s *settings) {
		s.hooks = h
	}
}

// WithConverter replaces the goldmark converter. A nil converter disables
// rendering: Render then returns its input unchanged.
func WithConverter(c HTMLConverter) Option {
	return func(s *settings) {
		s.converter = c
		s.converterSet = true
	}
}

// WithRenderOptions configures the goldmark converter.
// Ignored when WithConverter is used.
func WithRenderOptions(o RenderOptions) Option {
	return func(s *settings) {
		s.renderOpts = o
	}
}

// WithBufferSize sets the header scan window in bytes.
// Panics if n <= 0 (programmer error).
func WithBufferSize(n int) Option {
	if n <= 0 {
		panic("mdfront: WithBufferSize size must be positive")
	}
	return func(s *settings) {
		s.bufferSize = n
	}
}

// WithFullBufferSize sets the file read limit used when the body is requested.
// Panics if n <= 0 (programmer error).
func WithFullBufferSize(n int) Option {
	if n <= 0 {
		panic("mdfront: WithFullBufferSize size must be positive")
	}
	return func(s *settings) {
		s.fullBufferSize = n
	}
}

// WithTitleLookahead sets how many body bytes are searched for the title line.
// Panics if n <= 0 (programmer error).
func WithTitleLookahead(n int) Option {
	if n <= 0 {
		panic("mdfront: WithTitleLookahead size must be positive")
	}
	return func(s *settings) {
		s.titleLookahead = n
	}
}

// WithMetaParser sets the header parser. Takes precedence over WithMetadataFormat.
func WithMetaParser(p MetaParser) Option {
	return func(s *settings) {
		s.metaParser = p
	}
}

// WithMetadataFormat selects a built-in header parser: "lines", "yaml" or "toml".
// An unknown name makes the constructor fail with ErrUnknownFormat.
func WithMetadataFormat(name string) Option {
	return func(s *settings) {
		s.metaFormat = name
	}
}

// WithDateFormat sets the format of publish_date derived from file
// modification times, using tokens like "YYYY-MM-DD HH:mm:ss" or a preset
// name (iso, datetime, european, us, long).
func WithDateFormat(format string) Option {
	return func(s *settings) {
		s.dateFormat = format
	}
}

// WithFileReader replaces file access.
func WithFileReader(r FileReader) Option {
	return func(s *settings) {
		if r != nil {
			s.reader = r
		}
	}
}
