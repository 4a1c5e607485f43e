package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rojanmagar2001/linkverify/internal/check"
	"github.com/rojanmagar2001/linkverify/internal/domain"
	"github.com/rojanmagar2001/linkverify/internal/ports"
)

// LinkCheckerService wraps a Checker with rate limiting and a per-link
// deadline.
type LinkCheckerService struct {
	chk     *check.Checker
	limiter ports.Limiter
	timeout time.Duration
}

func NewLinkChecker(chk *check.Checker, limiter ports.Limiter, timeout time.Duration) *LinkCheckerService {
	return &LinkCheckerService{
		chk:     chk,
		limiter: limiter,
		timeout: timeout,
	}
}

func (s *LinkCheckerService) Check(ctx context.Context, url string) domain.Result {
	// Limiting happens before network call
	if err := s.limiter.Take(ctx, url); err != nil {
		return domain.Result{URL: url, Err: fmt.Errorf("rate limit: %w", err)}
	}

	// Per-link timeout, so one slow host cannot eat the others' budget.
	linkCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.chk.Check(linkCtx, url)
}
