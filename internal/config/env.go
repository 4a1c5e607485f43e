package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const envPrefix = "LINKVERIFY_"

// LoadDotEnv loads .env from the working directory if present. Variables
// already set in the environment win.
func LoadDotEnv() {
	_ = godotenv.Load()
}

func (c *Config) applyEnv() error {
	if v, ok := lookup("TIMEOUT"); ok {
		c.HTTP.Timeout = v
	}
	if v, ok := lookup("USER_AGENT"); ok {
		c.HTTP.UserAgent = v
	}
	if v, ok := lookup("ROOT"); ok {
		c.Local.Root = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := lookup("IGNORE_DIRS"); ok {
		c.Local.IgnoreDirs = strings.Split(v, ",")
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"CONCURRENCY", &c.Remote.Concurrency},
		{"RATE", &c.Remote.Rate},
		{"PER_HOST_RATE", &c.Remote.PerHostRate},
	}
	for _, it := range ints {
		v, ok := lookup(it.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "%s%s", envPrefix, it.key)
		}
		*it.dst = n
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}
