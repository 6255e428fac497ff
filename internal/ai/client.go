package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"dotdo/internal/apperr"
	"dotdo/internal/config"
)

// Client calls the OpenRouter chat-completions API. It is treated as an
// opaque, best-effort text generator: one request, no retries.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	referer string
	http    *http.Client
}

// New builds the OpenRouter client from config.
func New(cfg *config.Config) *Client {
	return &Client{
		apiKey:  cfg.OpenRouterKey,
		model:   cfg.OpenRouterModel,
		baseURL: cfg.OpenRouterURL,
		referer: cfg.AppURL,
		http:    &http.Client{Timeout: cfg.AITimeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model            string        `json:"model"`
	Messages         []chatMessage `json:"messages"`
	Temperature      float64       `json:"temperature"`
	MaxTokens        int           `json:"max_tokens"`
	PresencePenalty  float64       `json:"presence_penalty"`
	FrequencyPenalty float64       `json:"frequency_penalty"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends one system+user message pair and returns the first
// completion's text. Auth rejections and other upstream failures come
// back as apperr kinds; local state is never touched on this path.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	if c.apiKey == "" {
		return "", apperr.UpstreamAuth("Invalid API key", "OPENROUTER_API_KEY is not set")
	}

	body, err := json.Marshal(completionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature:      0.7,
		MaxTokens:        200,
		PresencePenalty:  0.6,
		FrequencyPenalty: 0.3,
	})
	if err != nil {
		return "", apperr.Internal(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", apperr.Internal(err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("HTTP-Referer", c.referer)
	req.Header.Set("X-Title", "Remindy Chatbot")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", apperr.Upstream("Failed to get chatbot response", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return "", apperr.UpstreamAuth("Invalid API key", "Please check your OpenRouter API key")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", apperr.Upstream("Failed to get chatbot response", &statusError{resp.StatusCode, string(raw)})
	}

	var out completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", apperr.Upstream("Failed to get chatbot response", err)
	}
	if len(out.Choices) == 0 {
		return "", apperr.Upstream("Failed to get chatbot response", errNoChoices)
	}
	return out.Choices[0].Message.Content, nil
}

type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("openrouter status %d: %s", e.code, e.body)
}

var errNoChoices = errors.New("openrouter response contained no choices")
