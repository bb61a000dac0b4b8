// Package oracle holds the contracts of the external services the app consults:
// an LLM chat completion endpoint, a web search endpoint and an FX rate endpoint.
package oracle

import (
	"context"
	"fmt"
	"strings"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role" validate:"required,oneof=system user assistant"`
	Content string `json:"content"`
}

func System(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

func User(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// Completer returns the text of the first completion choice.
type Completer interface {
	Complete(ctx context.Context, messages []Message, maxTokens int) (string, error)
}

type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

type Searcher interface {
	Search(ctx context.Context, keyword string, maxResults int) ([]SearchResult, error)
}

// RateFetcher returns currency units per one USD, keyed by ISO code.
type RateFetcher interface {
	LatestRates(ctx context.Context) (map[string]float64, error)
}

// FormatEvidence renders search results as plain text blocks for a prompt,
// cutting each content field to maxChars runes.
func FormatEvidence(results []SearchResult, maxChars int) string {
	blocks := make([]string, 0, len(results))
	for _, r := range results {
		blocks = append(blocks, fmt.Sprintf("TITLE: %s\nURL: %s\nCONTENT: %s", r.Title, r.URL, truncate(r.Content, maxChars)))
	}
	return strings.Join(blocks, "\n---\n")
}

func truncate(s string, maxChars int) string {
	if maxChars <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	return string(runes[:maxChars])
}
