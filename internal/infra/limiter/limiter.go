// Package limiter throttles outbound probes globally and per host.
package limiter

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/time/rate"

	"github.com/rojanmagar2001/linkverify/internal/ports"
)

type PerHost struct {
	global *rate.Limiter

	mu   sync.Mutex
	rate int
	host map[string]*rate.Limiter
}

// New returns a limiter allowing globalRate probes per second overall and
// perHostRate per second to any single host. A rate <= 0 disables that
// dimension; both disabled gives a no-op limiter.
func New(globalRate, perHostRate int) ports.Limiter {
	if globalRate <= 0 && perHostRate <= 0 {
		return Nop{}
	}
	p := &PerHost{
		rate: perHostRate,
		host: make(map[string]*rate.Limiter),
	}
	if globalRate > 0 {
		p.global = rate.NewLimiter(rate.Limit(globalRate), globalRate)
	}
	return p
}

func (h *PerHost) Take(ctx context.Context, rawURL string) error {
	if h.global != nil {
		if err := h.global.Wait(ctx); err != nil {
			return err
		}
	}
	if h.rate <= 0 {
		return nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil // the probe itself will report the bad URL
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return nil
	}

	h.mu.Lock()
	lim, ok := h.host[host]
	if !ok {
		lim = rate.NewLimiter(rate.Limit(h.rate), h.rate)
		h.host[host] = lim
	}
	h.mu.Unlock()

	return lim.Wait(ctx)
}

// Nop never blocks.
type Nop struct{}

func (Nop) Take(context.Context, string) error { return nil }
