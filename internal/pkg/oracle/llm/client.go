// Package llm talks to an OpenAI-compatible chat completion endpoint.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/ougirez/luxcompare/internal/pkg/logger"
	"github.com/ougirez/luxcompare/internal/pkg/oracle"
)

var ErrNoChoices = errors.New("no choices in completion response")

type Client struct {
	client *openai.Client
	model  string
}

func NewClient(baseURL, token, model string, timeout time.Duration) *Client {
	cfg := openai.DefaultConfig(token)
	cfg.BaseURL = baseURL
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	return &Client{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *Client) Complete(ctx context.Context, messages []oracle.Message, maxTokens int) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:     c.model,
		Messages:  make([]openai.ChatCompletionMessage, 0, len(messages)),
		MaxTokens: maxTokens,
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("client.CreateChatCompletion: %w", err)
	}

	logger.Debugf(ctx, "llm completion model=%s tokens=%d took=%s", c.model, resp.Usage.TotalTokens, time.Since(start))

	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}

	return resp.Choices[0].Message.Content, nil
}
