// Package search talks to the Tavily-style web search endpoint.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/ougirez/luxcompare/internal/pkg/oracle"
)

type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
}

type request struct {
	Keywords   []string `json:"keywords"`
	MaxResults int      `json:"max_results"`
}

// response covers both shapes the endpoint is known to return: results nested
// per keyword under "queries", or a flat top-level "results" array.
type response struct {
	Queries []struct {
		Response struct {
			Results []oracle.SearchResult `json:"results"`
		} `json:"response"`
	} `json:"queries"`
	Results []oracle.SearchResult `json:"results"`
}

func NewClient(baseURL, token string, timeout time.Duration, ratePerSecond float64, burst int) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(token).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	httpClient.JSONMarshal = sonic.Marshal
	httpClient.JSONUnmarshal = sonic.Unmarshal

	limit := rate.Inf
	if ratePerSecond > 0 {
		limit = rate.Limit(ratePerSecond)
	}

	return &Client{
		http:    httpClient,
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (c *Client) Search(ctx context.Context, keyword string, maxResults int) ([]oracle.SearchResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("limiter.Wait: %w", err)
	}

	var out response
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(request{Keywords: []string{keyword}, MaxResults: maxResults}).
		SetResult(&out).
		Post("/search/")
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("search status %d: %s", resp.StatusCode(), resp.String())
	}

	results := make([]oracle.SearchResult, 0, maxResults)
	for _, q := range out.Queries {
		results = append(results, q.Response.Results...)
	}
	results = append(results, out.Results...)

	return results, nil
}
