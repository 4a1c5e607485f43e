// Package extract finds link targets in Markdown and HTML documents and
// classifies them as local paths or external URLs.
package extract

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// HTML finds <a href>, <link href>, and <img>/<script>/<source> src values.
// When baseURL is non-empty, relative references are resolved against it and
// fragments are dropped. Each distinct target is returned once, in document
// order.
func HTML(baseURL string, r io.Reader) ([]string, error) {
	var base *url.URL
	if baseURL != "" {
		var err error
		base, err = url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("parse base url: %w", err)
		}
	}

	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	seen := make(map[string]struct{})
	var out []string

	add := func(raw string) {
		ref := strings.TrimSpace(raw)
		if ref == "" || strings.HasPrefix(ref, "#") {
			return
		}
		if base != nil {
			u, err := url.Parse(ref)
			if err != nil {
				// keep it; the checker reports it as invalid
				out = appendOnce(out, seen, ref)
				return
			}
			resolved := base.ResolveReference(u)
			resolved.Fragment = ""
			ref = resolved.String()
		}
		out = appendOnce(out, seen, ref)
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if key := attrFor(n.Data); key != "" {
				for _, a := range n.Attr {
					if strings.EqualFold(a.Key, key) {
						add(a.Val)
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return out, nil
}

func attrFor(tag string) string {
	switch strings.ToLower(tag) {
	case "a", "link":
		return "href"
	case "img", "script", "source":
		return "src"
	}
	return ""
}

func appendOnce(out []string, seen map[string]struct{}, s string) []string {
	if _, ok := seen[s]; ok {
		return out
	}
	seen[s] = struct{}{}
	return append(out, s)
}
