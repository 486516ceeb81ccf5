package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for argument handling.
var (
	ErrUsage               = errors.New("invalid usage")
	ErrInvalidOutputFormat = errors.New("output format must be json or yaml")
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// extractFlags holds all flags for the extract command.
type extractFlags struct {
	common       commonFlags
	full         bool
	bufferSize   int
	format       string // output: json or yaml
	metaFormat   string // header: lines, yaml or toml
	dateFormat   string
	workers      int
	allowMissing bool
	set          map[string]bool
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common         commonFlags
	output         string
	standalone     bool
	legacy         bool
	noHighlight    bool
	highlightStyle string
	style          string
	styleDir       string
	noStyle        bool
	css            string
	baseURL        string
	workers        int
	set            map[string]bool
}

// splitFlags holds all flags for the split command.
type splitFlags struct {
	common commonFlags
	format string
	set    map[string]bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

// parseExtractFlags parses extract command flags and returns positional args.
func parseExtractFlags(args []string, w io.Writer) (*extractFlags, []string, error) {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	f := &extractFlags{}

	fs.BoolVarP(&f.full, "full", "f", false, "also return the body after the header")
	fs.IntVar(&f.bufferSize, "buffer-size", 0, "header scan window in bytes (0 = default)")
	fs.StringVar(&f.format, "format", "", "output format: json, yaml")
	fs.StringVar(&f.metaFormat, "meta-format", "", "header format: lines, yaml, toml")
	fs.StringVar(&f.dateFormat, "date-format", "", "publish_date fallback format")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.allowMissing, "allow-missing", false, "treat files without a header as empty metadata")
	addCommonFlags(fs, &f.common)

	fs.SetOutput(w)
	fs.Usage = func() { printExtractUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	f.set = changedFlags(fs)

	return f, fs.Args(), nil
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, w io.Writer) (*renderFlags, []string, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	f := &renderFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file, directory, or - for stdout")
	fs.BoolVar(&f.standalone, "standalone", false, "wrap the fragment in a full HTML document")
	fs.BoolVar(&f.legacy, "legacy", false, "reduced mode: safe mode only")
	fs.BoolVar(&f.noHighlight, "no-highlight", false, "disable code highlighting")
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "chroma style name")
	fs.StringVar(&f.style, "style", "", "stylesheet name or .css path for standalone documents")
	fs.StringVar(&f.styleDir, "style-dir", "", "directory of custom {name}.css styles")
	fs.BoolVar(&f.noStyle, "no-style", false, "no stylesheet in standalone documents")
	fs.StringVar(&f.css, "css", "", "extra CSS file appended to the style")
	fs.StringVar(&f.baseURL, "base-url", "", "resolve relative links and images against this URL")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	addCommonFlags(fs, &f.common)

	fs.SetOutput(w)
	fs.Usage = func() { printRenderUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	f.set = changedFlags(fs)

	return f, fs.Args(), nil
}

// parseSplitFlags parses split command flags and returns positional args.
func parseSplitFlags(args []string, w io.Writer) (*splitFlags, []string, error) {
	fs := flag.NewFlagSet("split", flag.ContinueOnError)
	f := &splitFlags{}

	fs.StringVar(&f.format, "format", "", "output format: json, yaml")
	addCommonFlags(fs, &f.common)

	fs.SetOutput(w)
	fs.Usage = func() { printSplitUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	f.set = changedFlags(fs)

	return f, fs.Args(), nil
}

// changedFlags records the flags given on the command line,
// so zero values can still override the config file.
func changedFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return set
}

// usageError keeps flag.ErrHelp intact so -h exits cleanly.
func usageError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUsage, err)
}
