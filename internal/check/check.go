// Package check probes a single link: a URL for HTTP reachability or a local
// path for existence.
package check

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rojanmagar2001/linkverify/internal/domain"
	"github.com/rojanmagar2001/linkverify/internal/ports"
)

type Options struct {
	// HeadFirst tries HEAD before GET. Off by default: one plain GET per link.
	HeadFirst bool
	// UserAgent is only sent when non-empty.
	UserAgent   string
	MaxBodyRead int64
}

type Checker struct {
	client ports.HTTPClient
	opts   Options
}

func NewChecker(client ports.HTTPClient, opts Options) *Checker {
	if opts.MaxBodyRead <= 0 {
		opts.MaxBodyRead = 1 << 20 // 1MB safety cap
	}
	return &Checker{client: client, opts: opts}
}

// Check never returns an error of its own; every failure is carried in the
// Result and makes it unreachable.
func (c *Checker) Check(ctx context.Context, link string) domain.Result {
	if c.opts.HeadFirst {
		res := c.do(ctx, http.MethodHead, link)
		// Some servers reject HEAD; fall back to GET
		if res.Err == nil && (res.StatusCode == http.StatusMethodNotAllowed || res.StatusCode == http.StatusBadRequest) {
			return c.do(ctx, http.MethodGet, link)
		}
		var pe *http.ProtocolError
		if res.Err != nil && errors.As(res.Err, &pe) {
			return c.do(ctx, http.MethodGet, link)
		}
		return res
	}

	return c.do(ctx, http.MethodGet, link)
}

func (c *Checker) do(ctx context.Context, method, link string) domain.Result {
	req, err := http.NewRequestWithContext(ctx, method, link, nil)
	if err != nil {
		return domain.Result{URL: link, Err: fmt.Errorf("new request: %w", err)}
	}
	if c.opts.UserAgent != "" {
		req.Header.Set("User-Agent", c.opts.UserAgent)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	elapsed := time.Since(start)

	if err != nil {
		return domain.Result{URL: link, Err: fmt.Errorf("%s request: %w", method, err), Elapsed: elapsed}
	}
	defer resp.Body.Close()

	// Drain a little body on GET so the connection can be reused.
	if method == http.MethodGet {
		_, _ = io.CopyN(io.Discard, resp.Body, c.opts.MaxBodyRead)
	}

	return domain.Result{URL: link, StatusCode: resp.StatusCode, Elapsed: time.Since(start)}
}
