package ollama

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the address a locally installed Ollama server listens on.
	DefaultBaseURL = "http://localhost:11434"

	// DefaultTimeoutSeconds bounds every request, streaming ones included.
	DefaultTimeoutSeconds = 30
)

// Config holds the connection settings of the Ollama client.
//
// The base URL never carries a trailing slash: both NewConfig and SetBaseURL
// strip it so endpoint paths can be appended verbatim. No other validation
// is performed.
//
// Example:
//
//	cfg := ollama.DefaultConfig().
//	    SetBaseURL("http://gpu-box:11434/").
//	    SetTimeoutSeconds(120)
type Config struct {
	// baseURL is the root of the Ollama HTTP API, e.g. "http://localhost:11434".
	baseURL string

	// timeoutSeconds is the per-request timeout handed to the HTTP client.
	timeoutSeconds int
}

// NewConfig builds a Config from an explicit base URL and timeout.
func NewConfig(baseURL string, timeoutSeconds int) *Config {
	return &Config{
		baseURL:        trimBaseURL(baseURL),
		timeoutSeconds: timeoutSeconds,
	}
}

// DefaultConfig returns a Config pointing at a local Ollama server.
func DefaultConfig() *Config {
	return NewConfig(DefaultBaseURL, DefaultTimeoutSeconds)
}

// NewConfigFromEnv reads the configuration from environment variables.
//
//	OLLAMA_BASE_URL          base URL (default: http://localhost:11434)
//	OLLAMA_TIMEOUT_SECONDS   request timeout in seconds (default: 30)
//
// Unparsable or non-positive timeouts fall back to the default.
func NewConfigFromEnv() *Config {
	timeout := DefaultTimeoutSeconds
	if v := os.Getenv("OLLAMA_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}

	baseURL := DefaultBaseURL
	if v := os.Getenv("OLLAMA_BASE_URL"); v != "" {
		baseURL = v
	}

	return NewConfig(baseURL, timeout)
}

// BaseURL returns the configured base URL without trailing slash.
func (c *Config) BaseURL() string {
	return c.baseURL
}

// SetBaseURL replaces the base URL, stripping any trailing slashes.
func (c *Config) SetBaseURL(baseURL string) *Config {
	c.baseURL = trimBaseURL(baseURL)
	return c
}

// TimeoutSeconds returns the request timeout in seconds.
func (c *Config) TimeoutSeconds() int {
	return c.timeoutSeconds
}

// SetTimeoutSeconds replaces the request timeout.
func (c *Config) SetTimeoutSeconds(seconds int) *Config {
	c.timeoutSeconds = seconds
	return c
}

// Timeout returns the request timeout as a time.Duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.timeoutSeconds) * time.Second
}

func trimBaseURL(u string) string {
	return strings.TrimRight(u, "/")
}
