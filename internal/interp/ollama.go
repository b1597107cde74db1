package interp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	ollamaTimeout         = 60 * time.Second
	ollamaMaxResponseSize = 64 * 1024 // 64KB limit for the reply body
)

// OllamaAdapter talks to a local Ollama instance over its HTTP API.
type OllamaAdapter struct {
	host   string
	model  string
	client *http.Client
}

// NewOllama creates an adapter for the given Ollama host and model.
func NewOllama(host, model string) *OllamaAdapter {
	return &OllamaAdapter{
		host:   strings.TrimRight(host, "/"),
		model:  model,
		client: &http.Client{Timeout: ollamaTimeout},
	}
}

// Name implements Adapter.
func (o *OllamaAdapter) Name() string { return "ollama/" + o.model }

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
}

type ollamaChatResponse struct {
	Message ollamaMessage `json:"message"`
	Error   string        `json:"error,omitempty"`
}

// Infer implements Adapter using the /api/chat endpoint.
func (o *OllamaAdapter) Infer(ctx context.Context, system, user string) (string, error) {
	reqBody := ollamaChatRequest{
		Model: o.model,
		Messages: []ollamaMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Stream: false,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint, err := url.JoinPath(o.host, "api/chat")
	if err != nil {
		return "", fmt.Errorf("build ollama URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, ollamaMaxResponseSize))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama returned status %d: %.200s", resp.StatusCode, string(respBody))
	}

	var chatResp ollamaChatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if chatResp.Error != "" {
		return "", fmt.Errorf("ollama error: %s", chatResp.Error)
	}
	if chatResp.Message.Content == "" {
		return "", fmt.Errorf("empty reply from ollama")
	}

	return strings.TrimSpace(chatResp.Message.Content), nil
}

// Reachable reports whether the Ollama host answers at all. Used by
// startup and doctor diagnostics, never on the command path.
func (o *OllamaAdapter) Reachable(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, "GET", o.host+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := o.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
