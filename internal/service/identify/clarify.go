package identify

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

const clarifySystemPrompt = `You are a luxury goods expert. Given a product description, return ONLY valid JSON with clarifying questions to identify the exact SKU. No markdown, no code blocks. Format:
{"brand":"Chanel","productSummary":"Classic Flap Mini","questions":[{"id":"size","label":"Size","type":"select","options":["Mini 20cm","Small 23cm","Medium 25cm"],"required":true},{"id":"material","label":"Leather","type":"select","options":["Caviar","Lambskin","Tweed","Patent"],"required":true},{"id":"hardware","label":"Hardware","type":"select","options":["Gold","Silver","Ruthenium"],"required":true},{"id":"color","label":"Color","type":"text","required":true}]}
Tailor questions to the specific brand and product type. For jewelry include metal, stone, ring size optional. For bags include size, material, hardware, handle type, color.`

// Clarify asks the model which attributes pin a vague description down to one SKU.
func (s *Service) Clarify(ctx context.Context, req *domain.ClarifyRequest) (*domain.ClarifyResponse, error) {
	if err := utils.Validate(req); err != nil || strings.TrimSpace(req.Query) == "" {
		return nil, fmt.Errorf("%w: query is required", constants.ErrBadRequest)
	}

	content, err := s.llm.Complete(ctx, []oracle.Message{
		oracle.System(clarifySystemPrompt),
		oracle.User(strings.TrimSpace(req.Query)),
	}, clarifyTokens)
	if err != nil {
		return nil, fmt.Errorf("llm.Complete: %w", err)
	}

	var resp domain.ClarifyResponse
	if err = utils.DecodeModelJSON(content, &resp, constants.ErrExtractionParse); err != nil {
		logger.Errorf(ctx, "clarify output rejected: %s", err.Error())
		return nil, err
	}

	return &resp, nil
}
