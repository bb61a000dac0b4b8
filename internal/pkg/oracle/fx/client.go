// Package fx fetches USD-based exchange rates.
package fx

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
)

type Client struct {
	http *resty.Client
	url  string
}

type latestResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

func NewClient(url string, timeout time.Duration) *Client {
	httpClient := resty.New().SetTimeout(timeout)
	httpClient.JSONUnmarshal = sonic.Unmarshal

	return &Client{http: httpClient, url: url}
}

func (c *Client) LatestRates(ctx context.Context) (map[string]float64, error) {
	var out latestResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("fx request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fx status %d", resp.StatusCode())
	}

	return out.Rates, nil
}
