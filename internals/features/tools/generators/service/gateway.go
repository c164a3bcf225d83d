package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"capacitajun_backend/internals/configs"
)

var (
	ErrRateLimited      = errors.New("ai gateway rate limited")
	ErrCreditsExhausted = errors.New("ai credits exhausted")
	ErrUnavailable      = errors.New("ai gateway unavailable")
	ErrNotConfigured    = errors.New("ai gateway not configured")
)

// Gateway sends one system+user prompt and returns the assistant text.
type Gateway interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// ChatGateway talks to an OpenAI-compatible chat-completions endpoint.
type ChatGateway struct {
	URL    string
	APIKey string
	Model  string
	Client *http.Client
}

func NewChatGateway(cfg configs.AIConfig) *ChatGateway {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ChatGateway{
		URL:    cfg.GatewayURL,
		APIKey: cfg.APIKey,
		Model:  cfg.Model,
		Client: &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (g *ChatGateway) Complete(ctx context.Context, system, user string) (string, error) {
	if g.APIKey == "" {
		return "", ErrNotConfigured
	}

	body, err := sonic.Marshal(chatRequest{
		Model: g.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.4,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.URL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.APIKey)

	resp, err := g.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", ErrRateLimited
	case resp.StatusCode == http.StatusPaymentRequired:
		return "", ErrCreditsExhausted
	case resp.StatusCode >= 300:
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var out chatResponse
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("%w: %s", ErrUnavailable, out.Error.Message)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", ErrUnavailable)
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
