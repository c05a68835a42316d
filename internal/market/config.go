package market

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Source identifies one marketplace search endpoint.
type Source struct {
	Name    string `toml:"name"`
	BaseURL string `toml:"base_url"`
}

// Config holds market client parameters.
type Config struct {
	Sources        []Source `toml:"sources"`
	RequestTimeout string   `toml:"request_timeout"`
	MaxConcurrent  int      `toml:"max_concurrent"`
}

// Env maps config fields to environment variable names for override injection.
// Sources accepts a comma-separated list of name=url pairs.
type Env struct {
	Sources        string
	RequestTimeout string
}

// RequestTimeoutDuration returns RequestTimeout as a time.Duration.
func (c *Config) RequestTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.RequestTimeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if len(overlay.Sources) > 0 {
		c.Sources = overlay.Sources
	}
	if overlay.RequestTimeout != "" {
		c.RequestTimeout = overlay.RequestTimeout
	}
	if overlay.MaxConcurrent != 0 {
		c.MaxConcurrent = overlay.MaxConcurrent
	}
}

func (c *Config) loadDefaults() {
	if c.RequestTimeout == "" {
		c.RequestTimeout = "10s"
	}
	if c.MaxConcurrent == 0 {
		c.MaxConcurrent = 4
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Sources != "" {
		if v := os.Getenv(env.Sources); v != "" {
			c.Sources = parseSources(v)
		}
	}
	if env.RequestTimeout != "" {
		if v := os.Getenv(env.RequestTimeout); v != "" {
			c.RequestTimeout = v
		}
	}
}

func parseSources(v string) []Source {
	var sources []Source
	for _, pair := range strings.Split(v, ",") {
		name, url, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || name == "" || url == "" {
			continue
		}
		sources = append(sources, Source{Name: name, BaseURL: url})
	}
	return sources
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.RequestTimeout); err != nil {
		return fmt.Errorf("invalid request_timeout: %w", err)
	}
	for _, s := range c.Sources {
		if s.Name == "" || s.BaseURL == "" {
			return fmt.Errorf("source requires name and base_url")
		}
	}
	return nil
}
