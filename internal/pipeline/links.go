package pipeline

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var ErrInvalidBaseURL = errors.New("invalid base URL")

// RewriteLinks resolves relative img[src] and a[href] values against baseURL,
// so a rendered page still points at its assets once published elsewhere.
// An empty baseURL returns the HTML unchanged.
//
// Left alone:
//   - references with a scheme, protocol-relative and root-relative paths
//   - anchors and query-only references
//   - references that climb above the base path
func RewriteLinks(htmlContent, baseURL string) (string, error) {
	if baseURL == "" {
		return htmlContent, nil
	}

	base, err := parseBase(baseURL)
	if err != nil {
		return "", err
	}

	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	rewriteNode(doc, base)

	return renderHTML(doc, isFragment)
}

// parseBase parses baseURL and treats its path as a directory.
// The base must be absolute: a URL with a scheme or a path starting with /.
func parseBase(baseURL string) (*url.URL, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if base.Opaque != "" || base.RawQuery != "" || base.Fragment != "" ||
		(base.Scheme == "" && !strings.HasPrefix(base.Path, "/")) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	return base, nil
}

// parseHTML parses a full document or a body fragment.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	// Body context keeps the fragment from gaining an <html><body> wrapper.
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, true, nil
}

// renderHTML renders the tree back; fragments render their children only.
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if !isFragment {
		if err := html.Render(&buf, doc); err != nil {
			return "", err
		}
		return buf.String(), nil
	}

	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func rewriteNode(n *html.Node, base *url.URL) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img:
			rewriteAttr(n, "src", base)
		case atom.A:
			rewriteAttr(n, "href", base)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, base)
	}
}

func rewriteAttr(n *html.Node, attrName string, base *url.URL) {
	for i, attr := range n.Attr {
		if attr.Key != attrName || !isRelativeRef(attr.Val) {
			continue
		}
		ref, err := url.Parse(attr.Val)
		if err != nil {
			continue
		}
		resolved := base.ResolveReference(ref)
		if !isUnderBase(resolved, base) {
			continue
		}
		n.Attr[i].Val = resolved.String()
	}
}

// isRelativeRef reports whether ref is a path relative to the page.
func isRelativeRef(ref string) bool {
	if ref == "" {
		return false
	}
	switch ref[0] {
	case '#', '?', '/':
		return false
	}
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == ""
}

// isUnderBase reports whether resolved stays on base's host below its path.
func isUnderBase(resolved, base *url.URL) bool {
	if resolved.Scheme != base.Scheme || resolved.Host != base.Host {
		return false
	}
	return strings.HasPrefix(path.Clean(resolved.Path)+"/", base.Path)
}
