package config

import (
	"github.com/pkg/errors"
)

var (
	ErrTimeout     = errors.New("http.timeout must be positive")
	ErrConcurrency = errors.New("remote.concurrency must not be negative")
	ErrRate        = errors.New("remote.rate and remote.per_host_rate must not be negative")
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.HTTP.timeout <= 0 {
		return ErrTimeout
	}
	if c.Remote.Concurrency < 0 {
		return ErrConcurrency
	}
	if c.Remote.Rate < 0 || c.Remote.PerHostRate < 0 {
		return ErrRate
	}
	return nil
}
