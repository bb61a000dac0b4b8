package research

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ougirez/luxcompare/internal/domain"
	"github.com/ougirez/luxcompare/internal/pkg/constants"
	"github.com/ougirez/luxcompare/internal/pkg/oracle"
)

type fakeSearcher struct {
	maxResults int
	results    []oracle.SearchResult
	err        error
}

func (f *fakeSearcher) Search(_ context.Context, _ string, maxResults int) ([]oracle.SearchResult, error) {
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

func sources() []oracle.SearchResult {
	return []oracle.SearchResult{
		{Title: "Bag prices 2025", URL: "https://a.example", Content: "Chanel raised prices"},
		{Title: "Resale report", URL: "https://b.example", Content: "Flap bags hold value"},
	}
}

func TestSearchWithSummary(t *testing.T) {
	searcher := &fakeSearcher{results: sources()}
	llm := &fakeLLM{content: "  Prices rose [1] and resale is strong [2].  "}

	resp, err := NewResearchService(searcher, llm).Search(context.Background(), &domain.ResearchSearchRequest{Query: " chanel price increase ", MaxResults: 40})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if resp.Query != "chanel price increase" || resp.MaxResults != 5 || resp.SearchDepth != "basic" {
		t.Fatalf("unexpected defaults %+v", resp)
	}
	if searcher.maxResults != 5 || len(resp.Results) != 2 || resp.Results[1].URL != "https://b.example" {
		t.Fatalf("unexpected results %+v", resp.Results)
	}
	if resp.Summary != "Prices rose [1] and resale is strong [2]." {
		t.Fatalf("unexpected summary %q", resp.Summary)
	}
	prompt := llm.messages[1].Content
	if !strings.Contains(prompt, "[1] TITLE: Bag prices 2025") || !strings.Contains(prompt, "[2] TITLE: Resale report") {
		t.Fatalf("sources not numbered:\n%s", prompt)
	}
}

func TestSearchWithoutSummary(t *testing.T) {
	off := false
	llm := &fakeLLM{}

	resp, err := NewResearchService(&fakeSearcher{results: sources()}, llm).Search(context.Background(), &domain.ResearchSearchRequest{
		Query: "q", Topic: " news ", MaxResults: 3, SearchDepth: "advanced", Summarize: &off,
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if llm.calls != 0 || resp.Summary != "" {
		t.Fatalf("summary must be skipped")
	}
	if resp.Topic != "news" || resp.MaxResults != 3 || resp.SearchDepth != "advanced" {
		t.Fatalf("unexpected echo %+v", resp)
	}
}

func TestSearchErrors(t *testing.T) {
	svc := NewResearchService(&fakeSearcher{}, &fakeLLM{})
	if _, err := svc.Search(context.Background(), &domain.ResearchSearchRequest{Query: "   "}); !errors.Is(err, constants.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}

	svc = NewResearchService(&fakeSearcher{err: errUpstream}, &fakeLLM{})
	_, err := svc.Search(context.Background(), &domain.ResearchSearchRequest{Query: "q"})
	if !errors.Is(err, constants.ErrUpstreamFailed) || constants.CodeOf(err) != 502 {
		t.Fatalf("expected 502 upstream failure, got %v", err)
	}

	svc = NewResearchService(&fakeSearcher{}, &fakeLLM{err: errUpstream})
	if _, err = svc.Search(context.Background(), &domain.ResearchSearchRequest{Query: "q"}); !errors.Is(err, constants.ErrUpstreamFailed) {
		t.Fatalf("expected summary failure to be 502, got %v", err)
	}
}

func TestTitle(t *testing.T) {
	cases := []struct{ raw, want string }{
		{`"Chanel Flap Price Comparison"`, "Chanel Flap Price Comparison"},
		{"“Best Metro For Schools”\n", "Best Metro For Schools"},
		{"Comparing luxury bag prices across four markets", "Comparing luxury bag prices across four"},
		{`  ""  `, "New chat"},
		{"", "New chat"},
	}

	for _, c := range cases {
		raw, want := c.raw, c.want
		llm := &fakeLLM{content: raw}
		resp, err := NewResearchService(&fakeSearcher{}, llm).Title(context.Background(), &domain.TitleRequest{
			Messages: []domain.ChatMessage{{Role: "user", Content: "where is the flap bag cheapest?"}},
		})
		if err != nil {
			t.Fatalf("Title(%q): %v", raw, err)
		}
		if resp.Title != want {
			t.Fatalf("Title(%q) = %q, want %q", raw, resp.Title, want)
		}
		if len(llm.messages) != 2 || llm.messages[0].Role != oracle.RoleSystem || llm.messages[1].Role != oracle.RoleUser {
			t.Fatalf("unexpected messages %+v", llm.messages)
		}
	}
}

func TestTitleValidation(t *testing.T) {
	svc := NewResearchService(&fakeSearcher{}, &fakeLLM{content: "x"})
	for _, req := range []*domain.TitleRequest{{}, {Messages: []domain.ChatMessage{{Role: "robot", Content: "hi"}}}} {
		if _, err := svc.Title(context.Background(), req); !errors.Is(err, constants.ErrBadRequest) {
			t.Fatalf("expected ErrBadRequest, got %v", err)
		}
	}
}
