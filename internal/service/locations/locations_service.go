// Package locations ranks US metros for a long-term plan that combines strong
// public schools with owner-occupied short term rentals, and drills a chosen
// metro down to ZIP codes and listings.
package locations

import (
	"context"
	"fmt"
	"strings"

	"github.com/ougirez/luxcompare/internal/pkg/constants"
	"github.com/ougirez/luxcompare/internal/pkg/logger"
	"github.com/ougirez/luxcompare/internal/pkg/oracle"
	"github.com/ougirez/luxcompare/internal/pkg/utils"
)

const (
	completionTokens    = 2000
	defaultSnippetChars = 600
)

type Service struct {
	searcher     oracle.Searcher
	llm          oracle.Completer
	snippetChars int
}

func NewLocationsService(searcher oracle.Searcher, llm oracle.Completer, snippetChars int) *Service {
	if snippetChars <= 0 {
		snippetChars = defaultSnippetChars
	}
	return &Service{
		searcher:     searcher,
		llm:          llm,
		snippetChars: snippetChars,
	}
}

// consult runs one search, hands the evidence to the model and decodes its
// answer into dst. Anything unusable coming back from upstream is a 502.
func (s *Service) consult(
	ctx context.Context,
	keyword string,
	maxResults int,
	systemPrompt string,
	userPrompt func(evidence string) string,
	dst any,
) error {
	results, err := s.searcher.Search(ctx, keyword, maxResults)
	if err != nil {
		return fmt.Errorf("%w: search: %s", constants.ErrUpstreamFailed, err.Error())
	}

	evidence := oracle.FormatEvidence(results, s.snippetChars)
	if evidence == "" {
		evidence = "No results"
	}

	content, err := s.llm.Complete(ctx, []oracle.Message{
		oracle.System(systemPrompt),
		oracle.User(userPrompt(evidence)),
	}, completionTokens)
	if err != nil {
		return fmt.Errorf("llm.Complete: %w", err)
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: empty model response", constants.ErrUpstreamPayload)
	}

	if err = utils.DecodeModelJSON(content, dst, constants.ErrUpstreamPayload); err != nil {
		logger.Errorf(ctx, "model output rejected: %s; raw: %q", err.Error(), content)
		return err
	}

	return nil
}
