package config

import (
	"os"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// HTTP controls the reachability probes.
type HTTP struct {
	Timeout   string `toml:"timeout" default:"10s"`
	HeadFirst bool   `toml:"head_first"`
	UserAgent string `toml:"user_agent"`

	timeout time.Duration
}

// Remote controls the URL fan-out.
type Remote struct {
	Concurrency int `toml:"concurrency" default:"20"`
	Rate        int `toml:"rate"`
	PerHostRate int `toml:"per_host_rate"`
}

// Local controls existence checks and the suggestion search.
type Local struct {
	Root       string   `toml:"root" default:"."`
	IgnoreDirs []string `toml:"ignore_dirs"`
}

type Log struct {
	Level       string `toml:"level" default:"warn"`
	Development bool   `toml:"development"`
}

type Output struct {
	JSON  bool `toml:"json"`
	Color bool `toml:"color" default:"true"`
}

type Config struct {
	HTTP   HTTP   `toml:"http"`
	Remote Remote `toml:"remote"`
	Local  Local  `toml:"local"`
	Log    Log    `toml:"log"`
	Output Output `toml:"output"`
}

// Default returns a Config populated from the default tags.
func Default() Config {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		panic(err)
	}
	cfg.HTTP.timeout = 10 * time.Second
	return cfg
}

// Load starts from Default, decodes the TOML file at path over it when path is
// non-empty, applies environment overrides, normalizes and validates.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Finalize normalizes and validates. Callers that mutate the config after Load
// (for example from flags) must call it again.
func (c *Config) Finalize() error {
	if err := c.normalize(); err != nil {
		return err
	}
	return c.Validate()
}

// Timeout is the parsed HTTP.Timeout. Valid after Finalize.
func (c *Config) Timeout() time.Duration {
	return c.HTTP.timeout
}

func (c *Config) normalize() error {
	c.HTTP.Timeout = strings.TrimSpace(c.HTTP.Timeout)
	d, err := time.ParseDuration(c.HTTP.Timeout)
	if err != nil {
		return errors.Wrapf(err, "http.timeout %q", c.HTTP.Timeout)
	}
	c.HTTP.timeout = d

	c.Local.Root = strings.TrimSpace(c.Local.Root)
	if c.Local.Root == "" {
		c.Local.Root = "."
	}
	dirs := c.Local.IgnoreDirs[:0]
	for _, d := range c.Local.IgnoreDirs {
		if d = strings.TrimSpace(d); d != "" {
			dirs = append(dirs, d)
		}
	}
	c.Local.IgnoreDirs = dirs

	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	return nil
}
