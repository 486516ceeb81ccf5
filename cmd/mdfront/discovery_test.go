package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// ---------------------------------------------------------------------------
// TestResolveOutputPath - Output path mapping
// ---------------------------------------------------------------------------

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		outputDir string
		baseDir   string
		ext       string
		want      string
	}{
		{"no output extension", "docs/a.md", "out", "", "", ""},
		{"next to source", "docs/a.md", "", "", ".html", filepath.Join("docs", "a.html")},
		{"markdown extension", "docs/a.markdown", "", "", ".html", filepath.Join("docs", "a.html")},
		{"explicit file", "docs/a.md", "site/index.html", "", ".html", "site/index.html"},
		{"stdout", "docs/a.md", "-", "", ".html", "-"},
		{"output dir", "docs/a.md", "out", "", ".html", filepath.Join("out", "a.html")},
		{"mirrors tree", filepath.Join("docs", "sub", "a.md"), "out", "docs", ".html", filepath.Join("out", "sub", "a.html")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := resolveOutputPath(tt.input, tt.outputDir, tt.baseDir, tt.ext)
			if got != tt.want {
				t.Errorf("resolveOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidateMarkdownExtension - Explicit file filter
// ---------------------------------------------------------------------------

func TestValidateMarkdownExtension(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"a.md", "a.markdown", "A.MD"} {
		if err := validateMarkdownExtension(path); err != nil {
			t.Errorf("validateMarkdownExtension(%q) = %v, want nil", path, err)
		}
	}
	for _, path := range []string{"a.txt", "a", "a.md.bak"} {
		if err := validateMarkdownExtension(path); !errors.Is(err, ErrInvalidExtension) {
			t.Errorf("validateMarkdownExtension(%q) = %v, want ErrInvalidExtension", path, err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestValidateWorkers - Worker bounds
// ---------------------------------------------------------------------------

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n       int
		wantErr bool
	}{
		{0, false},
		{1, false},
		{256, false},
		{-1, true},
		{257, true},
	}

	for _, tt := range tests {
		err := validateWorkers(tt.n)
		if tt.wantErr && !errors.Is(err, ErrInvalidWorkerCount) {
			t.Errorf("validateWorkers(%d) = %v, want ErrInvalidWorkerCount", tt.n, err)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("validateWorkers(%d) = %v, want nil", tt.n, err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestDiscoverFiles - File and directory expansion
// ---------------------------------------------------------------------------

func TestDiscoverFiles(t *testing.T) {
	t.Parallel()

	t.Run("no inputs", func(t *testing.T) {
		t.Parallel()

		if _, err := discoverFiles(nil, "", ""); !errors.Is(err, ErrNoInput) {
			t.Errorf("error = %v, want ErrNoInput", err)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()

		_, err := discoverFiles([]string{filepath.Join(t.TempDir(), "nope.md")}, "", "")
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want os.ErrNotExist", err)
		}
	})

	t.Run("explicit file with wrong extension", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "notes.txt", "text")
		if _, err := discoverFiles([]string{path}, "", ""); !errors.Is(err, ErrInvalidExtension) {
			t.Errorf("error = %v, want ErrInvalidExtension", err)
		}
	})

	t.Run("directory walk keeps markdown only", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "a.md", "a")
		writeFile(t, dir, filepath.Join("sub", "b.markdown"), "b")
		writeFile(t, dir, "c.txt", "c")
		single := writeFile(t, t.TempDir(), "single.md", "s")

		jobs, err := discoverFiles([]string{single, dir}, "out", ".html")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(jobs) != 3 {
			t.Fatalf("got %d jobs, want 3: %+v", len(jobs), jobs)
		}
		if jobs[0].InputPath != single {
			t.Errorf("first job = %q, want explicit file first", jobs[0].InputPath)
		}
		want := filepath.Join("out", "sub", "b.html")
		found := false
		for _, j := range jobs {
			if j.OutputPath == want {
				found = true
			}
		}
		if !found {
			t.Errorf("no job mirrors sub directory to %q: %+v", want, jobs)
		}
	})
}
