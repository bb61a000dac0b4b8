package locations

import (
	"context"
	"errors"

	"github.com/ougirez/luxcompare/internal/pkg/oracle"
)

type fakeSearcher struct {
	keyword    string
	maxResults int
	results    []oracle.SearchResult
	err        error
}

func (f *fakeSearcher) Search(_ context.Context, keyword string, maxResults int) ([]oracle.SearchResult, error) {
	f.keyword = keyword
	f.maxResults = maxResults
	return f.results, f.err
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

var errUpstream = errors.New("upstream down")

var sampleResults = []oracle.SearchResult{{Title: "Best school districts", URL: "https://example.com/schools", Content: "Irvine, CA tops the list"}}
