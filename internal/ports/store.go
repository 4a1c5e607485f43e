package ports

import "github.com/rojanmagar2001/linkverify/internal/domain"

// Store accumulates probe outcomes written from concurrent workers. Index is
// the position of the URL in the verifier input.
type Store interface {
	Record(index int, res domain.Result)
	Len() int
	Partition() domain.URLLinksResult
}
