package mdfront

import (
	"cmp"
	"context"
	"slices"
	"sync"
)

// Filter transforms a value at an extension point.
type Filter[T any] func(ctx context.Context, value T, hc HookContext) T

// FilterChain is an ordered list of named filters.
// Lower priority runs first; equal priorities run in registration order.
// The zero value is an empty chain. Safe for concurrent use.
type FilterChain[T any] struct {
	mu      sync.RWMutex
	entries []filterEntry[T]
	seq     int
}

type filterEntry[T any] struct {
	name     string
	priority int
	seq      int
	fn       Filter[T]
}

// Add registers fn under name. Several filters may share a name.
// A nil fn is ignored.
func (c *FilterChain[T]) Add(name string, priority int, fn Filter[T]) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	c.entries = append(c.entries, filterEntry[T]{name: name, priority: priority, seq: c.seq, fn: fn})
	slices.SortStableFunc(c.entries, func(a, b filterEntry[T]) int {
		if n := cmp.Compare(a.priority, b.priority); n != 0 {
			return n
		}
		return cmp.Compare(a.seq, b.seq)
	})
}

// Remove unregisters every filter named name and reports whether any was found.
func (c *FilterChain[T]) Remove(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.entries)
	c.entries = slices.DeleteFunc(c.entries, func(e filterEntry[T]) bool {
		return e.name == name
	})
	return len(c.entries) != n
}

// Len returns the number of registered filters.
func (c *FilterChain[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Apply runs every filter in order, feeding each the previous result.
// An empty chain returns value unchanged.
func (c *FilterChain[T]) Apply(ctx context.Context, value T, hc HookContext) T {
	c.mu.RLock()
	entries := slices.Clone(c.entries)
	c.mu.RUnlock()

	for _, e := range entries {
		value = e.fn(ctx, value, hc)
	}
	return value
}

// Hooks groups the extension points of extraction and rendering.
type Hooks struct {
	// PreParse receives raw content before the frontmatter skip.
	PreParse FilterChain[string]
	// PreProcess receives content after the frontmatter skip.
	PreProcess FilterChain[string]
	// PostProcess receives the rendered HTML.
	PostProcess FilterChain[string]
	// ConverterInit may replace or wrap the converter once, before first use.
	ConverterInit FilterChain[HTMLConverter]
	// BufferSize may change the header scan window.
	BufferSize FilterChain[int]
	// Title runs when the body starts with a heading.
	Title FilterChain[*Metadata]
}

// NewHooks returns an empty Hooks.
func NewHooks() *Hooks {
	return &Hooks{}
}
