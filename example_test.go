package mdfront_test

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-mdfront"
)

// Example extracts frontmatter and renders the body.
func Example() {
	ctx := context.Background()
	p := mdfront.Default()

	doc := "---\nauthor: Ann\ntags: go, markdown\n---\n# Hello\n\nWorld"
	res := p.ParseFrontMatter(ctx, doc, mdfront.ExtractOptions{FullBody: true})
	if !res.Success() {
		fmt.Println("error:", res.Err)
		return
	}

	fmt.Println(res.Meta.Title())
	fmt.Println(res.Meta.Tags())
	fmt.Println(strings.TrimSpace(p.ProcessMarkdown(ctx, res.Body, mdfront.HookContext{})))
	// Output:
	// Hello
	// [go markdown]
	// <p>World</p>
}

// Example_missingHeader shows how a document without frontmatter is reported.
func Example_missingHeader() {
	res := mdfront.Default().ParseFrontMatter(context.Background(), "Just text", mdfront.ExtractOptions{})
	fmt.Println(errors.Is(res.Err, mdfront.ErrMissingHeader))
	fmt.Println(res.Body)
	// Output:
	// true
	// Just text
}

// Example_hooks registers a post-processing filter.
func Example_hooks() {
	p, err := mdfront.New()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	p.Hooks().PostProcess.Add("article", 10, func(_ context.Context, html string, _ mdfront.HookContext) string {
		return "<article>" + strings.TrimSpace(html) + "</article>"
	})

	fmt.Println(p.ProcessMarkdown(context.Background(), "Hi", mdfront.HookContext{}))
	// Output: <article><p>Hi</p></article>
}
