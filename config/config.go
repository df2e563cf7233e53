// Package config handles olsq client configuration files.
package config

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/reoring/ols"
)

// Environment variables read by ApplyEnv.
const (
	EnvBaseURL    = "OLS_BASE_URL"
	EnvAPIVersion = "OLS_API_VERSION"
)

// DefaultTimeout bounds a single request when the file sets no timeout.
const DefaultTimeout = 30 * time.Second

// Config represents an olsq.yaml client configuration file.
type Config struct {
	// BaseURL is an API root URL or a short instance name such as "tib".
	BaseURL    string        `yaml:"base_url"`
	APIVersion string        `yaml:"api_version,omitempty"`
	Timeout    time.Duration `yaml:"timeout,omitempty"`
	UserAgent  string        `yaml:"user_agent,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		BaseURL:    ols.EBIOLS4,
		APIVersion: string(ols.V4),
		Timeout:    DefaultTimeout,
	}
}

// Load reads a Config from a file path. Keys missing from the file keep
// their Default values.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	cfg := Default()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

// ApplyEnv overrides fields from OLS_BASE_URL and OLS_API_VERSION when set.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvBaseURL)); v != "" {
		c.BaseURL = v
	}
	if v := strings.TrimSpace(getenv(EnvAPIVersion)); v != "" {
		c.APIVersion = v
	}
}

// ResolvedBaseURL returns BaseURL with instance short names expanded.
func (c *Config) ResolvedBaseURL() string {
	if u, ok := ols.Instances[strings.ToLower(c.BaseURL)]; ok {
		return u
	}
	return c.BaseURL
}

// Version returns the parsed API version, V4 when unset.
func (c *Config) Version() (ols.APIVersion, error) {
	if c.APIVersion == "" {
		return ols.V4, nil
	}
	return ols.ParseAPIVersion(c.APIVersion)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base_url is required")
	}
	u, err := url.Parse(c.ResolvedBaseURL())
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base_url %q: want an http(s) URL or one of the known instance names", c.BaseURL)
	}
	if _, err := c.Version(); err != nil {
		return fmt.Errorf("api_version: %w", err)
	}
	if c.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}
	return nil
}

// ClientOptions converts the configuration into client options. The HTTP
// client carries Timeout; zero means no timeout.
func (c *Config) ClientOptions() ([]ols.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	v, _ := c.Version()
	opts := []ols.Option{
		ols.WithAPIVersion(v),
		ols.WithHTTPClient(&http.Client{Timeout: c.Timeout}),
	}
	if c.UserAgent != "" {
		opts = append(opts, ols.WithUserAgent(c.UserAgent))
	}
	return opts, nil
}

// NewClient validates the configuration and builds a client. extra options
// are applied after the configured ones.
func (c *Config) NewClient(extra ...ols.Option) (*ols.Client, error) {
	opts, err := c.ClientOptions()
	if err != nil {
		return nil, err
	}
	return ols.New(c.ResolvedBaseURL(), append(opts, extra...)...), nil
}
