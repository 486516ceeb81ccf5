package main

import (
	"errors"
	"io"
	"testing"

	flag "github.com/spf13/pflag"
)

// ---------------------------------------------------------------------------
// TestParseExtractFlags - extract command flags
// ---------------------------------------------------------------------------

func TestParseExtractFlags(t *testing.T) {
	t.Parallel()

	f, args, err := parseExtractFlags([]string{
		"-f", "--buffer-size", "4096", "--format", "yaml", "--meta-format", "toml",
		"--date-format", "iso", "-w", "3", "--allow-missing", "-q", "a.md", "docs",
	}, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !f.full || f.bufferSize != 4096 || f.format != "yaml" || f.metaFormat != "toml" {
		t.Errorf("unexpected flags: %+v", f)
	}
	if f.dateFormat != "iso" || f.workers != 3 || !f.allowMissing || !f.common.quiet {
		t.Errorf("unexpected flags: %+v", f)
	}
	if len(args) != 2 || args[0] != "a.md" || args[1] != "docs" {
		t.Errorf("args = %v, want [a.md docs]", args)
	}
	for _, name := range []string{"full", "buffer-size", "format", "workers"} {
		if !f.set[name] {
			t.Errorf("flag %q should be marked as set", name)
		}
	}
	if f.set["verbose"] {
		t.Error("verbose was not given and should not be marked as set")
	}
}

// ---------------------------------------------------------------------------
// TestParseRenderFlags - render command flags
// ---------------------------------------------------------------------------

func TestParseRenderFlags(t *testing.T) {
	t.Parallel()

	f, args, err := parseRenderFlags([]string{
		"--standalone", "-o", "-", "--legacy", "--no-highlight",
		"--highlight-style", "monokai", "--css", "style.css", "-v",
		"--style", "minimal", "--style-dir", "styles", "--no-style", "--base-url", "/blog", "post.md",
	}, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !f.standalone || f.output != "-" || !f.legacy || !f.noHighlight {
		t.Errorf("unexpected flags: %+v", f)
	}
	if f.highlightStyle != "monokai" || f.css != "style.css" || !f.common.verbose {
		t.Errorf("unexpected flags: %+v", f)
	}
	if f.style != "minimal" || f.styleDir != "styles" || !f.noStyle || f.baseURL != "/blog" {
		t.Errorf("unexpected flags: %+v", f)
	}
	if len(args) != 1 || args[0] != "post.md" {
		t.Errorf("args = %v, want [post.md]", args)
	}
}

// ---------------------------------------------------------------------------
// TestParseSplitFlags - split command flags
// ---------------------------------------------------------------------------

func TestParseSplitFlags(t *testing.T) {
	t.Parallel()

	f, args, err := parseSplitFlags([]string{"--format", "yaml", "-c", "site", "post.md"}, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.format != "yaml" || f.common.config != "site" || !f.set["format"] {
		t.Errorf("unexpected flags: %+v", f)
	}
	if len(args) != 1 || args[0] != "post.md" {
		t.Errorf("args = %v, want [post.md]", args)
	}
}

// ---------------------------------------------------------------------------
// TestParseFlags_Errors - Unknown flags and help
// ---------------------------------------------------------------------------

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unknown flag is a usage error", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseExtractFlags([]string{"--nope"}, io.Discard)
		if !errors.Is(err, ErrUsage) {
			t.Errorf("error = %v, want ErrUsage", err)
		}
	})

	t.Run("bad number is a usage error", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseRenderFlags([]string{"-w", "many"}, io.Discard)
		if !errors.Is(err, ErrUsage) {
			t.Errorf("error = %v, want ErrUsage", err)
		}
	})

	t.Run("help is passed through", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseSplitFlags([]string{"-h"}, io.Discard)
		if !errors.Is(err, flag.ErrHelp) {
			t.Errorf("error = %v, want flag.ErrHelp", err)
		}
		if errors.Is(err, ErrUsage) {
			t.Error("help should not be a usage error")
		}
	})
}
