package extract

import (
	"fmt"
	"io"
	"regexp"
)

// mdLink matches [text](target). Nested brackets in the text are not
// supported.
var mdLink = regexp.MustCompile(`\[(?:[^\[\]]*)\]\((.*?)\)`)

// Markdown returns every inline link target, in document order, duplicates
// included.
func Markdown(r io.Reader) ([]string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read markdown: %w", err)
	}

	matches := mdLink.FindAllSubmatch(content, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, string(m[1]))
	}
	return out, nil
}
