// Package research backs the general research chat: web search with an optional
// model summary, and short titles for conversations.
package research

import (
	"context"
	"fmt"
	"strings"

	"github.com/ougirez/luxcompare/internal/domain"
	"github.com/ougirez/luxcompare/internal/pkg/constants"
	"github.com/ougirez/luxcompare/internal/pkg/logger"
	"github.com/ougirez/luxcompare/internal/pkg/oracle"
	"github.com/ougirez/luxcompare/internal/pkg/utils"
)

const (
	defaultMaxResults  = 5
	maxResultsLimit    = 20
	defaultSearchDepth = "basic"
	summaryTokens      = 800
	summaryChars       = 1500
	titleTokens        = 32
	titleMaxWords      = 6
	defaultTitle       = "New chat"
)

const summarySystemPrompt = `You are a careful research summarizer.
You receive results from a web search (sources with URL, title and content). You must:
- Synthesize a concise answer to the user's query.
- Highlight 3-7 key findings.
- Mention any major disagreements across sources.
- Include inline source markers like [1], [2] that correspond to the order of the sources.`

const titleSystemPrompt = "You generate very short, descriptive titles for chat conversations.\n" +
	"- Output a title of at most 6 words.\n" +
	"- Capture the main topic or task.\n" +
	"- Do not include quotes or punctuation at the ends.\n" +
	"- Return only the title text."

type Service struct {
	searcher oracle.Searcher
	llm      oracle.Completer
}

func NewResearchService(searcher oracle.Searcher, llm oracle.Completer) *Service {
	return &Service{searcher: searcher, llm: llm}
}

func (s *Service) Search(ctx context.Context, req *domain.ResearchSearchRequest) (*domain.ResearchSearchResponse, error) {
	req.Query = strings.TrimSpace(req.Query)
	if err := utils.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: query is required", constants.ErrBadRequest)
	}

	resp := &domain.ResearchSearchResponse{
		Query:       req.Query,
		Topic:       strings.TrimSpace(req.Topic),
		MaxResults:  req.MaxResults,
		SearchDepth: strings.TrimSpace(req.SearchDepth),
	}
	if resp.MaxResults <= 0 || resp.MaxResults > maxResultsLimit {
		resp.MaxResults = defaultMaxResults
	}
	if resp.SearchDepth == "" {
		resp.SearchDepth = defaultSearchDepth
	}

	results, err := s.searcher.Search(ctx, req.Query, resp.MaxResults)
	if err != nil {
		return nil, fmt.Errorf("%w: search: %s", constants.ErrUpstreamFailed, err.Error())
	}

	resp.Results = make([]domain.ResearchSearchResult, 0, len(results))
	for _, r := range results {
		resp.Results = append(resp.Results, domain.ResearchSearchResult{Title: r.Title, URL: r.URL, Content: r.Content})
	}

	if req.Summarize != nil && !*req.Summarize {
		return resp, nil
	}

	content, err := s.llm.Complete(ctx, []oracle.Message{
		oracle.System(summarySystemPrompt),
		oracle.User(fmt.Sprintf("User query:\n%s\n\nSearch results:\n%s", req.Query, numberedEvidence(results))),
	}, summaryTokens)
	if err != nil {
		return nil, fmt.Errorf("%w: summary: %s", constants.ErrUpstreamFailed, err.Error())
	}
	resp.Summary = strings.TrimSpace(content)

	return resp, nil
}

// numberedEvidence prefixes every source with its [n] marker.
func numberedEvidence(results []oracle.SearchResult) string {
	if len(results) == 0 {
		return "No results"
	}
	blocks := make([]string, 0, len(results))
	for i, r := range results {
		blocks = append(blocks, fmt.Sprintf("[%d] %s", i+1, oracle.FormatEvidence([]oracle.SearchResult{r}, summaryChars)))
	}
	return strings.Join(blocks, "\n---\n")
}

// Title names a conversation in at most six words.
func (s *Service) Title(ctx context.Context, req *domain.TitleRequest) (*domain.TitleResponse, error) {
	if err := utils.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: messages array is required", constants.ErrBadRequest)
	}

	messages := make([]oracle.Message, 0, len(req.Messages)+1)
	messages = append(messages, oracle.System(titleSystemPrompt))
	for _, m := range req.Messages {
		messages = append(messages, oracle.Message{Role: m.Role, Content: m.Content})
	}

	content, err := s.llm.Complete(ctx, messages, titleTokens)
	if err != nil {
		return nil, fmt.Errorf("llm.Complete: %w", err)
	}

	title := cleanTitle(content)
	logger.Debugf(ctx, "titled conversation %q", title)

	return &domain.TitleResponse{Title: title}, nil
}

func cleanTitle(raw string) string {
	title := strings.TrimSpace(raw)
	title = strings.TrimLeft(title, "\"“'")
	title = strings.TrimRight(title, "\"”'")

	words := strings.Fields(title)
	if len(words) > titleMaxWords {
		words = words[:titleMaxWords]
	}
	title = strings.Join(words, " ")

	if title == "" {
		return defaultTitle
	}
	return title
}
