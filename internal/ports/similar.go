package ports

import "context"

type SimilarFinder interface {
	FindSimilar(ctx context.Context, target string) []string
}
