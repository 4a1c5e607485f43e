package ports

import (
	"io"

	"github.com/rojanmagar2001/linkverify/internal/domain"
)

// Extractor pulls classified links out of a document. name is a file path or
// URL, contentType may be empty; together they select the document format.
type Extractor interface {
	Extract(name, contentType string, r io.Reader) ([]domain.Link, error)
}
