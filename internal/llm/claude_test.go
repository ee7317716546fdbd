// ABOUTME: Tests for the Claude messages API client
// ABOUTME: Uses httptest servers to exercise request shaping and error handling
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(&ClientConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL,
	})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return client, srv
}

func textResponse(texts ...string) string {
	blocks := make([]map[string]string, 0, len(texts))
	for _, txt := range texts {
		blocks = append(blocks, map[string]string{"type": "text", "text": txt})
	}
	body, _ := json.Marshal(map[string]any{"content": blocks})
	return string(body)
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	if _, err := NewClient(&ClientConfig{}); err == nil {
		t.Error("expected error for empty API key")
	}
}

func TestGenerateTextEmptyPrompt(t *testing.T) {
	called := false
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	for _, prompt := range []string{"", "   ", "\n\t"} {
		_, err := client.GenerateText(context.Background(), prompt, nil, nil)
		if !errors.Is(err, ErrEmptyPrompt) {
			t.Errorf("prompt %q: expected ErrEmptyPrompt, got %v", prompt, err)
		}
	}
	if called {
		t.Error("blank prompts must not reach the API")
	}
}

func TestGenerateTextSuccess(t *testing.T) {
	var gotReq messagesRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "test-key" {
			t.Errorf("missing x-api-key header, got %q", r.Header.Get("x-api-key"))
		}
		if r.Header.Get("anthropic-version") == "" {
			t.Error("missing anthropic-version header")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		w.Write([]byte(textResponse("A fotossíntese é o processo...")))
	})

	answer, err := client.GenerateText(context.Background(), "O que é fotossíntese?", nil, nil)
	if err != nil {
		t.Fatalf("GenerateText failed: %v", err)
	}
	if answer != "A fotossíntese é o processo..." {
		t.Errorf("unexpected answer: %q", answer)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Role != "user" {
		t.Errorf("expected single user message, got %+v", gotReq.Messages)
	}
}

func TestGenerateTextPrefixesContext(t *testing.T) {
	var userContent string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req messagesRequest
		json.NewDecoder(r.Body).Decode(&req)
		userContent = req.Messages[0].Content
		w.Write([]byte(textResponse("ok")))
	})

	passages := []string{"As plantas produzem glicose.", "A clorofila absorve luz."}
	_, err := client.GenerateText(context.Background(), "Explique.", passages, nil)
	if err != nil {
		t.Fatalf("GenerateText failed: %v", err)
	}

	for _, p := range passages {
		if !strings.Contains(userContent, "CONTEXT: "+p) {
			t.Errorf("user content missing context passage %q:\n%s", p, userContent)
		}
	}
	if !strings.HasSuffix(userContent, "Explique.") {
		t.Errorf("prompt should come after the context passages:\n%s", userContent)
	}
	if strings.Index(userContent, passages[0]) > strings.Index(userContent, passages[1]) {
		t.Error("context passages out of order")
	}
}

func TestGenerateTextAPIError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"type":"rate_limit_error","message":"slow down"}}`))
	})

	_, err := client.GenerateText(context.Background(), "pergunta", nil, nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", apiErr.StatusCode)
	}
	if apiErr.Type != "rate_limit_error" || apiErr.Message != "slow down" {
		t.Errorf("unexpected API error details: %+v", apiErr)
	}
}

func TestGenerateTextTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client, err := NewClient(&ClientConfig{APIKey: "test-key", BaseURL: url, Timeout: time.Second})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	_, err = client.GenerateText(context.Background(), "pergunta", nil, nil)
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *TransportError, got %v", err)
	}
	if transportErr.Unwrap() == nil {
		t.Error("transport error should wrap the underlying cause")
	}
}

func TestGenerateTextConcatenatesTextBlocks(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := json.Marshal(map[string]any{"content": []map[string]string{
			{"type": "text", "text": "Primeira parte. "},
			{"type": "tool_use", "text": "ignored"},
			{"type": "text", "text": "Segunda parte."},
		}})
		w.Write(body)
	})

	answer, err := client.GenerateText(context.Background(), "pergunta", nil, nil)
	if err != nil {
		t.Fatalf("GenerateText failed: %v", err)
	}
	if answer != "Primeira parte. Segunda parte." {
		t.Errorf("unexpected answer: %q", answer)
	}
}

func TestGenerateTextEmptyContent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":[]}`))
	})

	_, err := client.GenerateText(context.Background(), "pergunta", nil, nil)
	var formatErr *ResponseFormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected *ResponseFormatError, got %v", err)
	}
}

func TestGenerateTextOptionsOverrideDefaults(t *testing.T) {
	var gotReq messagesRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.Write([]byte(textResponse("ok")))
	})

	opts := &GenerateOptions{MaxTokens: 2048, Temperature: 0.2, SystemPrompt: "Seja breve."}
	if _, err := client.GenerateText(context.Background(), "pergunta", nil, opts); err != nil {
		t.Fatalf("GenerateText failed: %v", err)
	}
	if gotReq.MaxTokens != 2048 {
		t.Errorf("max_tokens = %d, want 2048", gotReq.MaxTokens)
	}
	if gotReq.Temperature != 0.2 {
		t.Errorf("temperature = %v, want 0.2", gotReq.Temperature)
	}
	if gotReq.System != "Seja breve." {
		t.Errorf("system = %q, want override", gotReq.System)
	}
}
