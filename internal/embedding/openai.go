// ABOUTME: OpenAI client for embedding generation
// ABOUTME: Uses text-embedding-3-small with retry and exponential backoff
package embedding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"flipflops/internal/util"
)

// DefaultModel is the default embedding model
const DefaultModel = openai.SmallEmbedding3

// ErrEmptyText is returned when embedding is requested for empty input.
var ErrEmptyText = errors.New("cannot generate embedding for empty text")

// ClientConfig holds configuration for the embedding client
type ClientConfig struct {
	APIKey     string
	Model      openai.EmbeddingModel
	MaxRetries int
	RetryDelay time.Duration
	Timeout    time.Duration
	Logger     *slog.Logger
}

// DefaultConfig returns the default client configuration
func DefaultConfig(apiKey string) *ClientConfig {
	return &ClientConfig{
		APIKey:     apiKey,
		Model:      DefaultModel,
		MaxRetries: 3,
		RetryDelay: time.Second * 2,
		Timeout:    30 * time.Second,
	}
}

// Client wraps the OpenAI embeddings API with retry logic
type Client struct {
	api        *openai.Client
	model      openai.EmbeddingModel
	maxRetries int
	retryDelay time.Duration
	timeout    time.Duration
	logger     *slog.Logger
}

// NewClient creates an embedding client with default configuration
func NewClient(apiKey string) (*Client, error) {
	return NewClientWithConfig(DefaultConfig(apiKey))
}

// NewClientWithConfig creates an embedding client with custom configuration
func NewClientWithConfig(config *ClientConfig) (*Client, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	model := config.Model
	if model == "" {
		model = DefaultModel
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		api:        openai.NewClient(config.APIKey),
		model:      model,
		maxRetries: config.MaxRetries,
		retryDelay: config.RetryDelay,
		timeout:    timeout,
		logger:     logger,
	}, nil
}

// Embed generates an embedding vector for the given text.
// Empty or whitespace-only input fails with ErrEmptyText before any
// network call.
func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	if isBlank(text) {
		return nil, ErrEmptyText
	}

	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(util.CalculateBackoff(c.retryDelay, attempt)):
			}
		}

		callCtx, cancel := context.WithTimeout(ctx, c.timeout)

		resp, err := c.api.CreateEmbeddings(callCtx, openai.EmbeddingRequestStrings{
			Input: []string{text},
			Model: c.model,
		})

		if err != nil {
			cancel()
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			c.logger.Debug("embedding attempt failed", "attempt", attempt+1, "error", err)
			continue
		}

		if len(resp.Data) == 0 {
			cancel()
			lastErr = fmt.Errorf("attempt %d: no embeddings returned", attempt+1)
			continue
		}

		// Convert []float32 to []float64
		embedding32 := resp.Data[0].Embedding
		embedding64 := make([]float64, len(embedding32))
		for i, v := range embedding32 {
			embedding64[i] = float64(v)
		}

		cancel()
		return embedding64, nil
	}

	return nil, fmt.Errorf("failed to generate embedding after %d attempts: %w", c.maxRetries+1, lastErr)
}

// EmbedBatch generates embeddings for multiple texts in one request.
// Blank entries fail the whole batch with ErrEmptyText.
func (c *Client) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	for _, text := range texts {
		if isBlank(text) {
			return nil, ErrEmptyText
		}
	}

	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(util.CalculateBackoff(c.retryDelay, attempt)):
			}
		}

		callCtx, cancel := context.WithTimeout(ctx, c.timeout)

		resp, err := c.api.CreateEmbeddings(callCtx, openai.EmbeddingRequestStrings{
			Input: texts,
			Model: c.model,
		})
		cancel()

		if err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}

		if len(resp.Data) != len(texts) {
			lastErr = fmt.Errorf("attempt %d: got %d embeddings for %d texts", attempt+1, len(resp.Data), len(texts))
			continue
		}

		vectors := make([][]float64, len(resp.Data))
		for i, data := range resp.Data {
			vec := make([]float64, len(data.Embedding))
			for j, v := range data.Embedding {
				vec[j] = float64(v)
			}
			vectors[i] = vec
		}

		return vectors, nil
	}

	return nil, fmt.Errorf("failed to generate batch embeddings after %d attempts: %w", c.maxRetries+1, lastErr)
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
