package identify

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
)

const userAgent = "Mozilla/5.0 (compatible; luxcompare/1.0)"

// PageMeta is what a brand product page says about itself in its head.
type PageMeta struct {
	Title       string
	Description string
	Price       *float64
	Currency    string
}

func (m *PageMeta) Evidence() string {
	var b strings.Builder
	if m.Title != "" {
		fmt.Fprintf(&b, "PAGE TITLE: %s\n", m.Title)
	}
	if m.Description != "" {
		fmt.Fprintf(&b, "PAGE DESCRIPTION: %s\n", m.Description)
	}
	if m.Price != nil {
		fmt.Fprintf(&b, "PAGE PRICE: %s %s\n", strconv.FormatFloat(*m.Price, 'f', -1, 64), m.Currency)
	}
	return strings.TrimSpace(b.String())
}

type PageFetcher struct {
	client     *http.Client
	maxRetries uint64
	retryDelay time.Duration
}

func NewPageFetcher(timeout time.Duration, maxRetries uint64, retryDelay time.Duration) *PageFetcher {
	return &PageFetcher{
		client:     &http.Client{Timeout: timeout},
		maxRetries: maxRetries,
		retryDelay: retryDelay,
	}
}

// Fetch downloads pageURL and reads its metadata. Server errors are retried
// with a constant delay; client errors are not.
func (f *PageFetcher) Fetch(ctx context.Context, pageURL string) (meta *PageMeta, err error) {
	var resp *http.Response
	err = backoff.Retry(
		func() error {
			req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
			if reqErr != nil {
				return backoff.Permanent(fmt.Errorf("http.NewRequest: %w", reqErr))
			}
			req.Header.Set("User-Agent", userAgent)
			req.Header.Set("Accept", "text/html")

			var httpErr error
			resp, httpErr = f.client.Do(req)
			if httpErr != nil {
				return fmt.Errorf("client.Do: %w", httpErr)
			}
			if resp.StatusCode != http.StatusOK {
				_ = resp.Body.Close()
				statusErr := fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
				if resp.StatusCode < http.StatusInternalServerError {
					return backoff.Permanent(statusErr)
				}
				return statusErr
			}

			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(f.retryDelay), f.maxRetries),
			ctx,
		),
	)
	if err != nil {
		return nil, err
	}

	defer func() {
		closeErr := resp.Body.Close()
		if closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close reader: %w", closeErr)
		}
	}()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("goquery.NewDocumentFromReader: %w", err)
	}

	return parsePageMeta(doc), nil
}

func parsePageMeta(doc *goquery.Document) *PageMeta {
	meta := &PageMeta{
		Title:       firstNonEmpty(metaContent(doc, "og:title"), strings.TrimSpace(doc.Find("head title").First().Text())),
		Description: firstNonEmpty(metaContent(doc, "description"), metaContent(doc, "og:description")),
		Currency:    strings.ToUpper(firstNonEmpty(metaContent(doc, "product:price:currency"), metaContent(doc, "og:price:currency"))),
	}

	rawPrice := firstNonEmpty(metaContent(doc, "product:price:amount"), metaContent(doc, "og:price:amount"))
	if price, ok := parsePrice(rawPrice); ok {
		meta.Price = &price
	}

	return meta
}

// metaContent looks a <meta> tag up by property or name.
func metaContent(doc *goquery.Document, key string) string {
	var content string
	doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		prop, _ := s.Attr("property")
		name, _ := s.Attr("name")
		if !strings.EqualFold(prop, key) && !strings.EqualFold(name, key) {
			return true
		}
		content = strings.TrimSpace(s.AttrOr("content", ""))
		return content == ""
	})
	return content
}

// parsePrice accepts "7100", "7100.00" and "7,100".
func parsePrice(raw string) (float64, bool) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if raw == "" {
		return 0, false
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || price <= 0 {
		return 0, false
	}
	return price, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
