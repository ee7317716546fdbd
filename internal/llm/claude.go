// ABOUTME: Client for the Anthropic Claude messages API
// ABOUTME: Classifies transport, API and response-format failures separately
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL   = "https://api.anthropic.com"
	messagesEndpoint = "/v1/messages"
	apiVersion       = "2023-06-01"

	// Model options
	ModelSonnet = "claude-3-sonnet-20240229"
	ModelHaiku  = "claude-3-haiku-20240307"
	ModelOpus   = "claude-3-opus-20240229"
)

// ErrEmptyPrompt is returned when generation is requested for a blank prompt.
// Checked before any network call.
var ErrEmptyPrompt = errors.New("prompt cannot be empty")

// TransportError wraps network-level failures (connection refused, timeout).
// Retryable in principle; the client performs no automatic retry.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("claude transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError is a non-2xx response with a structured error body.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("claude API error (status %d, type %s): %s", e.StatusCode, e.Type, e.Message)
}

// ResponseFormatError is a 2xx response whose payload could not be used
// (unparsable JSON or no text content blocks).
type ResponseFormatError struct {
	Reason string
}

func (e *ResponseFormatError) Error() string {
	return fmt.Sprintf("claude response format error: %s", e.Reason)
}

// GenerateOptions override per-call sampling parameters. Zero values fall
// back to the client defaults.
type GenerateOptions struct {
	MaxTokens    int
	Temperature  float64
	SystemPrompt string
}

// ClientConfig holds configuration for the Claude client
type ClientConfig struct {
	APIKey       string
	BaseURL      string
	Model        string
	MaxTokens    int
	Temperature  float64
	SystemPrompt string
	Timeout      time.Duration
	Logger       *slog.Logger
}

// Client calls the Anthropic messages API
type Client struct {
	httpClient   *http.Client
	baseURL      string
	apiKey       string
	model        string
	maxTokens    int
	temperature  float64
	systemPrompt string
	logger       *slog.Logger
}

// NewClient creates a Claude client. The API key is required.
func NewClient(config *ClientConfig) (*Client, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("Anthropic API key is required")
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	model := config.Model
	if model == "" {
		model = ModelSonnet
	}

	maxTokens := config.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		httpClient:   &http.Client{Timeout: timeout},
		baseURL:      baseURL,
		apiKey:       config.APIKey,
		model:        model,
		maxTokens:    maxTokens,
		temperature:  config.Temperature,
		systemPrompt: config.SystemPrompt,
		logger:       logger,
	}, nil
}

// messagesRequest is the wire format for the messages endpoint.
type messagesRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	System      string    `json:"system,omitempty"`
	Messages    []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
}

type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateText sends the prompt (optionally preceded by context passages)
// to Claude and returns the concatenated text content blocks. Context
// passages are each prefixed with a CONTEXT marker. A single network round
// trip per call; no internal retry.
func (c *Client) GenerateText(ctx context.Context, prompt string, contextPassages []string, opts *GenerateOptions) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}

	userContent := prompt
	if len(contextPassages) > 0 {
		formatted := make([]string, len(contextPassages))
		for i, passage := range contextPassages {
			formatted[i] = "CONTEXT: " + passage
		}
		userContent = strings.Join(formatted, "\n\n") + "\n\n" + prompt
	}

	req := messagesRequest{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		System:      c.systemPrompt,
		Messages:    []message{{Role: "user", Content: userContent}},
	}

	if opts != nil {
		if opts.MaxTokens > 0 {
			req.MaxTokens = opts.MaxTokens
		}
		if opts.Temperature > 0 {
			req.Temperature = opts.Temperature
		}
		if opts.SystemPrompt != "" {
			req.System = opts.SystemPrompt
		}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+messagesEndpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", apiVersion)
	httpReq.Header.Set("content-type", "application/json")

	c.logger.Debug("sending request to Claude API", "model", req.Model, "max_tokens", req.MaxTokens)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Type: "unknown", Message: string(respBody)}
		var parsed errorResponse
		if err := json.Unmarshal(respBody, &parsed); err == nil && parsed.Error.Message != "" {
			apiErr.Type = parsed.Error.Type
			apiErr.Message = parsed.Error.Message
		}
		return "", apiErr
	}

	var result messagesResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", &ResponseFormatError{Reason: fmt.Sprintf("unparsable payload: %v", err)}
	}

	text := extractText(result.Content)
	if text == "" {
		return "", &ResponseFormatError{Reason: "no text content blocks in response"}
	}

	return text, nil
}

// extractText concatenates the text of all blocks with type "text",
// in order. Other block types are ignored.
func extractText(blocks []contentBlock) string {
	var sb strings.Builder
	for _, block := range blocks {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String()
}
