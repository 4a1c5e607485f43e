package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rojanmagar2001/linkverify/internal/domain"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name, contentType string
		want              Format
	}{
		{"README.md", "", FormatMarkdown},
		{"notes.txt", "", FormatMarkdown},
		{"site/index.HTML", "", FormatHTML},
		{"page.htm", "", FormatHTML},
		{"https://example.com/docs", "text/html; charset=utf-8", FormatHTML},
		{"https://example.com/raw/README.md?plain=1", "", FormatMarkdown},
		{"https://example.com/raw/README.md", "text/plain", FormatMarkdown},
		{"https://example.com/", "", FormatHTML},
		{"https://example.com", "", FormatHTML},
		{"https://example.com/x", "text/markdown", FormatMarkdown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectFormat(tt.name, tt.contentType), "%s (%s)", tt.name, tt.contentType)
	}
}

func TestExtractMarkdownClassifies(t *testing.T) {
	links, err := New().Extract("README.md", "", strings.NewReader(
		"[a](./docs/readme.md) [b](https://example.com) [c](./docs/reedme.md)"))
	require.NoError(t, err)

	assert.Equal(t, []domain.Link{
		{Kind: domain.LinkKindLocal, Target: "./docs/readme.md", Raw: "./docs/readme.md"},
		{Kind: domain.LinkKindExternal, Target: "https://example.com", Raw: "https://example.com"},
		{Kind: domain.LinkKindLocal, Target: "./docs/reedme.md", Raw: "./docs/reedme.md"},
	}, links)
}

func TestExtractRemoteHTMLResolvesRelative(t *testing.T) {
	links, err := New().Extract("https://example.com/docs/", "text/html",
		strings.NewReader(`<a href="guide.html">g</a><a href="https://other.test/">o</a>`))
	require.NoError(t, err)

	require.Len(t, links, 2)
	assert.Equal(t, "https://example.com/docs/guide.html", links[0].Target)
	assert.True(t, links[0].IsExternal())
	assert.True(t, links[1].IsExternal())
}

func TestExtractLocalHTMLKeepsRelativePaths(t *testing.T) {
	links, err := New().Extract("site/index.html", "",
		strings.NewReader(`<a href="about.html">a</a>`))
	require.NoError(t, err)

	require.Len(t, links, 1)
	assert.Equal(t, domain.LinkKindLocal, links[0].Kind)
	assert.Equal(t, "about.html", links[0].Target)
}
