package ports

import "context"

// Limiter blocks until a probe of rawURL may start, or ctx is done.
type Limiter interface {
	Take(ctx context.Context, rawURL string) error
}
