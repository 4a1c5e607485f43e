package domain

import "time"

// Result is the outcome of a single reachability probe.
type Result struct {
	URL        string
	StatusCode int
	Err        error
	Elapsed    time.Duration
}

// Reachable reports whether the probe completed with a 2xx status.
func (r Result) Reachable() bool {
	return r.Err == nil && r.StatusCode >= 200 && r.StatusCode <= 299
}

func (r Result) IsDead() bool {
	return !r.Reachable()
}
