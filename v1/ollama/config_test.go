package ollama

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "http://localhost:11434", cfg.BaseURL())
	assert.Equal(t, 30, cfg.TimeoutSeconds())
	assert.Equal(t, 30*time.Second, cfg.Timeout())
}

func TestConfigStripsTrailingSlashes(t *testing.T) {
	assert.Equal(t, "https://x.com", NewConfig("https://x.com/", 10).BaseURL())
	assert.Equal(t, "https://x.com", NewConfig("https://x.com///", 10).BaseURL())
	assert.Equal(t, "https://x.com/base", NewConfig("https://x.com/base/", 10).BaseURL())

	cfg := DefaultConfig().SetBaseURL("http://gpu-box:11434/")
	assert.Equal(t, "http://gpu-box:11434", cfg.BaseURL())
}

func TestConfigSetters(t *testing.T) {
	cfg := DefaultConfig()
	out := cfg.SetTimeoutSeconds(120)

	assert.Same(t, cfg, out)
	assert.Equal(t, 120, cfg.TimeoutSeconds())
	assert.Equal(t, 2*time.Minute, cfg.Timeout())
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("OLLAMA_BASE_URL", "")
		t.Setenv("OLLAMA_TIMEOUT_SECONDS", "")

		cfg := NewConfigFromEnv()
		assert.Equal(t, DefaultBaseURL, cfg.BaseURL())
		assert.Equal(t, DefaultTimeoutSeconds, cfg.TimeoutSeconds())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("OLLAMA_BASE_URL", "http://ollama.internal:8080/")
		t.Setenv("OLLAMA_TIMEOUT_SECONDS", "90")

		cfg := NewConfigFromEnv()
		assert.Equal(t, "http://ollama.internal:8080", cfg.BaseURL())
		assert.Equal(t, 90, cfg.TimeoutSeconds())
	})

	t.Run("invalid timeout falls back", func(t *testing.T) {
		t.Setenv("OLLAMA_TIMEOUT_SECONDS", "-5")
		assert.Equal(t, DefaultTimeoutSeconds, NewConfigFromEnv().TimeoutSeconds())

		t.Setenv("OLLAMA_TIMEOUT_SECONDS", "soon")
		assert.Equal(t, DefaultTimeoutSeconds, NewConfigFromEnv().TimeoutSeconds())
	})
}
