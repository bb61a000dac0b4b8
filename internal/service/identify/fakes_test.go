package identify

import (
	"context"
	"errors"
	"sync"

	"github.com/ougirez/luxcompare/internal/pkg/oracle"
)

type fakeSearcher struct {
	mu       sync.Mutex
	keywords []string
	results  []oracle.SearchResult
	err      error
}

func (f *fakeSearcher) Search(_ context.Context, keyword string, _ int) ([]oracle.SearchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keywords = append(f.keywords, keyword)
	return f.results, f.err
}

type fakeLLM struct {
	content  string
	err      error
	messages []oracle.Message
}

func (f *fakeLLM) Complete(_ context.Context, messages []oracle.Message, _ int) (string, error) {
	f.messages = messages
	return f.content, f.err
}

func (f *fakeLLM) prompt() string {
	if len(f.messages) == 0 {
		return ""
	}
	return f.messages[len(f.messages)-1].Content
}

type fakePages struct {
	meta *PageMeta
	err  error
	urls []string
}

func (f *fakePages) Fetch(_ context.Context, pageURL string) (*PageMeta, error) {
	f.urls = append(f.urls, pageURL)
	return f.meta, f.err
}

var errUpstream = errors.New("upstream down")
