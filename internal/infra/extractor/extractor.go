package extractor

import (
	"io"
	"mime"
	"net/url"
	"path"
	"strings"

	"github.com/pkg/errors"

	"github.com/rojanmagar2001/linkverify/internal/domain"
	"github.com/rojanmagar2001/linkverify/internal/extract"
)

type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

type Adapter struct{}

func New() *Adapter { return &Adapter{} }

// Extract picks the document format from contentType or the extension of
// name, extracts raw targets and classifies them. For HTML fetched over
// http(s), name is the base for relative references.
func (a *Adapter) Extract(name, contentType string, r io.Reader) ([]domain.Link, error) {
	var (
		raws []string
		err  error
	)
	switch DetectFormat(name, contentType) {
	case FormatHTML:
		base := ""
		if isRemote(name) {
			base = name
		}
		raws, err = extract.HTML(base, r)
	default:
		raws, err = extract.Markdown(r)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "extract links from %s", name)
	}
	return extract.ClassifyAll(raws), nil
}

func DetectFormat(name, contentType string) Format {
	if contentType != "" {
		if mt, _, err := mime.ParseMediaType(contentType); err == nil {
			switch mt {
			case "text/html", "application/xhtml+xml":
				return FormatHTML
			case "text/markdown", "text/x-markdown":
				return FormatMarkdown
			}
		}
	}

	p := name
	remote := isRemote(name)
	if remote {
		if u, err := url.Parse(name); err == nil {
			p = u.Path
		}
	}
	switch ext := strings.ToLower(path.Ext(p)); {
	case ext == ".html" || ext == ".htm" || ext == ".xhtml":
		return FormatHTML
	case remote && contentType == "" && ext == "":
		// a bare site URL serves a page
		return FormatHTML
	}
	return FormatMarkdown
}

func isRemote(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
