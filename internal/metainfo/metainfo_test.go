package metainfo_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/alnah/go-mdfront/internal/metainfo"
)

func fieldMap(fields []metainfo.Field) map[string]metainfo.Field {
	m := make(map[string]metainfo.Field, len(fields))
	for _, f := range fields {
		m[f.Key] = f
	}
	return m
}

func keys(fields []metainfo.Field) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.Key)
	}
	return out
}

// ---------------------------------------------------------------------------
// TestParseLines - Line-based key:value parsing
// ---------------------------------------------------------------------------

func TestParseLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		wantKeys []string
		check    func(t *testing.T, m map[string]metainfo.Field)
	}{
		{
			name:     "simple pairs",
			text:     "title: Hello\nauthor: Jane",
			wantKeys: []string{"title", "author"},
			check: func(t *testing.T, m map[string]metainfo.Field) {
				if m["title"].Value != "Hello" {
					t.Errorf("title = %q, want Hello", m["title"].Value)
				}
			},
		},
		{
			name:     "split on first colon only",
			text:     "url: https://example.com:8080/x",
			wantKeys: []string{"url"},
			check: func(t *testing.T, m map[string]metainfo.Field) {
				if m["url"].Value != "https://example.com:8080/x" {
					t.Errorf("url = %q", m["url"].Value)
				}
			},
		},
		{
			name:     "line without colon is skipped",
			text:     "title: A\nthis line is junk\nauthor: B",
			wantKeys: []string{"title", "author"},
		},
		{
			name:     "empty key is skipped",
			text:     ": orphan\ntitle: A",
			wantKeys: []string{"title"},
		},
		{
			name:     "bracketed list",
			text:     "tags: [red, green, blue]",
			wantKeys: []string{"tags"},
			check: func(t *testing.T, m map[string]metainfo.Field) {
				f := m["tags"]
				if !f.IsList {
					t.Fatal("tags should be a list")
				}
				if !reflect.DeepEqual(f.List, []string{"red", "green", "blue"}) {
					t.Errorf("tags = %v", f.List)
				}
			},
		},
		{
			name:     "list drops empty items and quotes",
			text:     `tags: ["a", , 'b' ,]`,
			wantKeys: []string{"tags"},
			check: func(t *testing.T, m map[string]metainfo.Field) {
				if !reflect.DeepEqual(m["tags"].List, []string{"a", "b"}) {
					t.Errorf("tags = %v", m["tags"].List)
				}
			},
		},
		{
			name:     "empty value kept as empty string",
			text:     "summary:",
			wantKeys: []string{"summary"},
			check: func(t *testing.T, m map[string]metainfo.Field) {
				if m["summary"].Value != "" || m["summary"].IsList {
					t.Errorf("summary = %+v", m["summary"])
				}
			},
		},
		{
			name:     "quoted scalar",
			text:     `title: "Hello: World"`,
			wantKeys: []string{"title"},
			check: func(t *testing.T, m map[string]metainfo.Field) {
				if m["title"].Value != "Hello: World" {
					t.Errorf("title = %q", m["title"].Value)
				}
			},
		},
		{
			name:     "duplicate key keeps first position, last value",
			text:     "a: 1\nb: 2\na: 3\r\n",
			wantKeys: []string{"a", "b"},
			check: func(t *testing.T, m map[string]metainfo.Field) {
				if m["a"].Value != "3" {
					t.Errorf("a = %q, want 3", m["a"].Value)
				}
			},
		},
		{
			name:     "blank text",
			text:     "\n  \n",
			wantKeys: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fields, err := metainfo.ParseLines(tt.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := keys(fields); !reflect.DeepEqual(got, tt.wantKeys) {
				t.Errorf("keys = %v, want %v", got, tt.wantKeys)
			}
			if tt.check != nil {
				tt.check(t, fieldMap(fields))
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParseYAML - YAML mapping parsing
// ---------------------------------------------------------------------------

func TestParseYAML(t *testing.T) {
	t.Parallel()

	t.Run("mapping with list and number", func(t *testing.T) {
		t.Parallel()

		fields, err := metainfo.ParseYAML("title: Hello\ntags:\n  - a\n  - b\nsort_order: 3\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := keys(fields); !reflect.DeepEqual(got, []string{"title", "tags", "sort_order"}) {
			t.Errorf("keys = %v", got)
		}
		m := fieldMap(fields)
		if !reflect.DeepEqual(m["tags"].List, []string{"a", "b"}) {
			t.Errorf("tags = %v", m["tags"].List)
		}
		if m["sort_order"].Value != "3" {
			t.Errorf("sort_order = %q, want 3", m["sort_order"].Value)
		}
	})

	t.Run("invalid YAML fails", func(t *testing.T) {
		t.Parallel()

		if _, err := metainfo.ParseYAML("title: [unclosed"); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("blank text yields nothing", func(t *testing.T) {
		t.Parallel()

		fields, err := metainfo.ParseYAML("  \n")
		if err != nil || len(fields) != 0 {
			t.Errorf("fields = %v, err = %v", fields, err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestParseTOML - TOML table parsing
// ---------------------------------------------------------------------------

func TestParseTOML(t *testing.T) {
	t.Parallel()

	t.Run("keys ordered by appearance", func(t *testing.T) {
		t.Parallel()

		fields, err := metainfo.ParseTOML("title = \"Hello\"\nauthor = \"Jane\"\ntags = [\"x\", \"y\"]\nsort_order = 2\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := keys(fields); !reflect.DeepEqual(got, []string{"title", "author", "tags", "sort_order"}) {
			t.Errorf("keys = %v", got)
		}
		m := fieldMap(fields)
		if m["title"].Value != "Hello" {
			t.Errorf("title = %q", m["title"].Value)
		}
		if !reflect.DeepEqual(m["tags"].List, []string{"x", "y"}) {
			t.Errorf("tags = %v", m["tags"].List)
		}
		if m["sort_order"].Value != "2" {
			t.Errorf("sort_order = %q", m["sort_order"].Value)
		}
	})

	t.Run("invalid TOML fails", func(t *testing.T) {
		t.Parallel()

		if _, err := metainfo.ParseTOML("title = "); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

// ---------------------------------------------------------------------------
// TestParserFor / TestSplitList
// ---------------------------------------------------------------------------

func TestParserFor(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "lines", "YAML", "yml", "toml"} {
		if _, err := metainfo.ParserFor(name); err != nil {
			t.Errorf("ParserFor(%q) error = %v", name, err)
		}
	}

	if _, err := metainfo.ParserFor("json"); !errors.Is(err, metainfo.ErrUnknownFormat) {
		t.Errorf("ParserFor(json) error = %v, want ErrUnknownFormat", err)
	}
}

func TestSplitList(t *testing.T) {
	t.Parallel()

	got := metainfo.SplitList("a, b ,c")
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("SplitList = %v", got)
	}
	if got := metainfo.SplitList(" , ,"); len(got) != 0 {
		t.Errorf("SplitList(blank) = %v, want empty", got)
	}
}
