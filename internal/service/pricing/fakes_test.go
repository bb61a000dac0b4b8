package pricing

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/ougirez/luxcompare/internal/pkg/oracle"
)

type fakeSearcher struct {
	mu      sync.Mutex
	queries []string
	// respond picks a reply by keyword; nil means no results.
	respond func(ctx context.Context, keyword string) ([]oracle.SearchResult, error)
}

func (f *fakeSearcher) Search(ctx context.Context, keyword string, _ int) ([]oracle.SearchResult, error) {
	f.mu.Lock()
	f.queries = append(f.queries, keyword)
	f.mu.Unlock()

	if f.respond == nil {
		return nil, nil
	}
	return f.respond(ctx, keyword)
}

func (f *fakeSearcher) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.queries))
	copy(out, f.queries)
	return out
}

func (f *fakeSearcher) searched(substr string) bool {
	for _, q := range f.calls() {
		if strings.Contains(q, substr) {
			return true
		}
	}
	return false
}

type fakeLLM struct {
	content  string
	err      error
	calls    int
	messages []oracle.Message
}

func (f *fakeLLM) Complete(_ context.Context, messages []oracle.Message, _ int) (string, error) {
	f.calls++
	f.messages = messages
	return f.content, f.err
}

func (f *fakeLLM) userPrompt() string {
	for _, m := range f.messages {
		if m.Role == oracle.RoleUser {
			return m.Content
		}
	}
	return ""
}

type fakeRates struct {
	rates map[string]float64
	err   error
}

func (f *fakeRates) LatestRates(context.Context) (map[string]float64, error) {
	return f.rates, f.err
}

var errUpstream = errors.New("upstream down")

func ptr(v float64) *float64 {
	return &v
}

const chanelExtraction = `{"product":"Classic Flap Bag Medium","brand":"Chanel","regions":[
{"region":"US","currency":"USD","rawPrice":5200,"taxInclusive":false,"officialUrl":"https://www.chanel.com/us/","confidence":"high","notes":null},
{"region":"Hong Kong","currency":"HKD","rawPrice":41000,"taxInclusive":false,"officialUrl":"https://www.chanel.com/hk/","confidence":"high","notes":null},
{"region":"Japan","currency":"JPY","rawPrice":968000,"taxInclusive":true,"officialUrl":"https://www.chanel.com/ja_JP/","confidence":"high","notes":null},
{"region":"France","currency":"EUR","rawPrice":7140,"taxInclusive":true,"officialUrl":"https://www.chanel.com/fr_FR/","confidence":"medium","notes":"resale listing"}]}`
