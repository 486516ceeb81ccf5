package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestGoldmarkConverter_ToHTML - Default render mode
// ---------------------------------------------------------------------------

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	conv := NewGoldmarkConverter(DefaultRenderOptions())

	tests := []struct {
		name         string
		input        string
		wantContains []string
		wantNot      []string
	}{
		{
			name:         "plain text is a bare paragraph",
			input:        "Hello world",
			wantContains: []string{"<p>Hello world</p>"},
			wantNot:      []string{"<!DOCTYPE", "<body>"},
		},
		{
			name:         "newline becomes line break",
			input:        "Line one\nLine two",
			wantContains: []string{"Line one<br />", "Line two"},
		},
		{
			name:         "heading gets an id",
			input:        "# Title",
			wantContains: []string{`<h1 id="title">Title</h1>`},
		},
		{
			name:         "inline raw HTML is escaped",
			input:        "Hello <b>bold</b>",
			wantContains: []string{"&lt;b&gt;bold&lt;/b&gt;"},
			wantNot:      []string{"<b>", "raw HTML omitted"},
		},
		{
			name:         "script block is escaped",
			input:        "<script>alert(1)</script>",
			wantContains: []string{"&lt;script&gt;alert(1)&lt;/script&gt;"},
			wantNot:      []string{"<script>"},
		},
		{
			name:         "javascript links are dropped",
			input:        "[x](javascript:alert(1))",
			wantNot:      []string{`href="javascript:`},
			wantContains: []string{"<a"},
		},
		{
			name:         "GFM table",
			input:        "| A | B |\n|---|---|\n| 1 | 2 |",
			wantContains: []string{"<table>", "<th>A</th>", "<td>1</td>"},
		},
		{
			name:         "fenced code uses highlight classes",
			input:        "```go\nfunc main() {}\n```",
			wantContains: []string{"<pre", `class="chroma"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q\ngot: %s", want, got)
				}
			}
			for _, not := range tt.wantNot {
				if strings.Contains(got, not) {
					t.Errorf("output should not contain %q\ngot: %s", not, got)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestGoldmarkConverter_Modes - Option combinations
// ---------------------------------------------------------------------------

func TestGoldmarkConverter_Modes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		opts         RenderOptions
		input        string
		wantContains string
		wantNot      string
	}{
		{
			name:         "legacy mode omits raw HTML",
			opts:         LegacyRenderOptions(),
			input:        "Hi <b>x</b>",
			wantContains: "raw HTML omitted",
			wantNot:      "<b>",
		},
		{
			name:    "legacy mode has no hard breaks",
			opts:    LegacyRenderOptions(),
			input:   "a\nb",
			wantNot: "<br",
		},
		{
			name:         "unsafe mode passes raw HTML",
			opts:         RenderOptions{},
			input:        "Hi <b>x</b>",
			wantContains: "<b>x</b>",
		},
		{
			name:         "escape wins over unsafe",
			opts:         RenderOptions{EscapeMarkup: true},
			input:        "Hi <b>x</b>",
			wantContains: "&lt;b&gt;",
		},
		{
			name:         "highlighting disabled keeps plain code",
			opts:         RenderOptions{SafeMode: true},
			input:        "```go\nx := 1\n```",
			wantContains: `<code class="language-go">`,
			wantNot:      "chroma",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv := NewGoldmarkConverter(tt.opts)
			if conv.Options() != tt.opts {
				t.Errorf("Options() = %+v, want %+v", conv.Options(), tt.opts)
			}

			got, err := conv.ToHTML(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantContains != "" && !strings.Contains(got, tt.wantContains) {
				t.Errorf("output missing %q\ngot: %s", tt.wantContains, got)
			}
			if tt.wantNot != "" && strings.Contains(got, tt.wantNot) {
				t.Errorf("output should not contain %q\ngot: %s", tt.wantNot, got)
			}
		})
	}
}

func TestGoldmarkConverter_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGoldmarkConverter(DefaultRenderOptions()).ToHTML(ctx, "# Hello")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

// ---------------------------------------------------------------------------
// TestNormalizeLineEndings - CR and CRLF handling
// ---------------------------------------------------------------------------

func TestNormalizeLineEndings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"a\r\nb", "a\nb"},
		{"a\rb", "a\nb"},
		{"a\nb", "a\nb"},
		{"a\r\n\r\nb\r", "a\n\nb\n"},
	}

	for _, tt := range tests {
		if got := NormalizeLineEndings(tt.input); got != tt.want {
			t.Errorf("NormalizeLineEndings(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
