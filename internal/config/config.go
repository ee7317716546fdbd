// ABOUTME: Centralized configuration for the FLIPFLOPS assistant
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
)

// Config holds all configuration for the assistant
type Config struct {
	// Anthropic settings (generation)
	AnthropicKey string
	Model        string
	MaxTokens    int
	Temperature  float64
	Timeout      time.Duration

	// OpenAI settings (embeddings)
	OpenAIKey      string
	EmbeddingModel string
	MaxRetries     int
	RetryDelay     time.Duration

	// Retrieval settings
	MinScoreThreshold float64
	MaxContextLength  int
	TopK              int
	VectorDimension   int

	// Storage settings
	DataDir string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		AnthropicKey:      os.Getenv("ANTHROPIC_API_KEY"),
		Model:             getEnv("FLIPFLOPS_MODEL", "claude-3-sonnet-20240229"),
		MaxTokens:         getEnvInt("FLIPFLOPS_MAX_TOKENS", 1024),
		Temperature:       getEnvFloat("FLIPFLOPS_TEMPERATURE", 0.7),
		Timeout:           getEnvDuration("FLIPFLOPS_TIMEOUT", 60*time.Second),
		OpenAIKey:         os.Getenv("OPENAI_API_KEY"),
		EmbeddingModel:    getEnv("FLIPFLOPS_EMBEDDING_MODEL", "text-embedding-3-small"),
		MaxRetries:        getEnvInt("FLIPFLOPS_MAX_RETRIES", 3),
		RetryDelay:        getEnvDuration("FLIPFLOPS_RETRY_DELAY", 2*time.Second),
		MinScoreThreshold: getEnvFloat("FLIPFLOPS_MIN_SCORE", 0.6),
		MaxContextLength:  getEnvInt("FLIPFLOPS_MAX_CONTEXT", 5000),
		TopK:              getEnvInt("FLIPFLOPS_TOP_K", 5),
		VectorDimension:   getEnvInt("FLIPFLOPS_VECTOR_DIM", 1536),
		DataDir:           getEnv("FLIPFLOPS_DATA_DIR", defaultDataDir()),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.MinScoreThreshold < 0 || c.MinScoreThreshold > 1 {
		return fmt.Errorf("FLIPFLOPS_MIN_SCORE must be 0-1, got %f", c.MinScoreThreshold)
	}
	if c.Temperature < 0 || c.Temperature > 1 {
		return fmt.Errorf("FLIPFLOPS_TEMPERATURE must be 0-1, got %f", c.Temperature)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("FLIPFLOPS_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.MaxContextLength <= 0 {
		return fmt.Errorf("FLIPFLOPS_MAX_CONTEXT must be positive, got %d", c.MaxContextLength)
	}
	if c.TopK <= 0 {
		return fmt.Errorf("FLIPFLOPS_TOP_K must be positive, got %d", c.TopK)
	}
	return nil
}

// defaultDataDir follows the XDG spec: ~/.local/share/flipflops unless
// XDG_DATA_HOME overrides it.
func defaultDataDir() string {
	return filepath.Join(xdg.DataHome, "flipflops")
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
