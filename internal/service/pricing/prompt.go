package pricing

import (
	"fmt"
	"strings"

	"github.com/ougirez/luxcompare/internal/pkg/oracle"
)

const extractionSystemPrompt = "You are a luxury goods pricing expert. Extract prices from search results. " +
	"Return ONLY valid JSON, no markdown. For each region return the price AS FOUND on the website " +
	"(may be tax-inclusive). Set taxInclusive:true if the price includes tax. " +
	"Use confidence \"high\" for official brand sources and \"medium\" for press or resale sources. " +
	"If no price found set rawPrice:null and confidence:\"unavailable\"."

func (a *Aggregator) extractionMessages(req AggregateRequest, evidence []string) []oracle.Message {
	var b strings.Builder

	fmt.Fprintf(&b, "Product: %s\nBrand: %s\n", req.Query, req.Brand)

	for i, region := range a.cfg.Regions {
		b.WriteString("\n")
		if req.Home != nil && req.Home.Region.Name == region.Name {
			fmt.Fprintf(&b, "%s price already known from the brand page: %s %.0f\n",
				region.Name, region.Currency, req.Home.Price)
			continue
		}

		text := evidence[i]
		if text == "" {
			text = "No results"
		}
		fmt.Fprintf(&b, "%s search results:\n%s\n", region.Name, text)
	}

	entries := make([]string, 0, len(a.cfg.Regions))
	for _, region := range a.cfg.Regions {
		entries = append(entries, fmt.Sprintf(
			`{"region":%q,"currency":%q,"rawPrice":<number or null>,"taxInclusive":<bool>,"officialUrl":"<url>","confidence":"high|medium|unavailable","notes":<string or null>}`,
			region.Name, region.Currency,
		))
	}
	fmt.Fprintf(&b, "\nReturn JSON: {\"product\":\"full product name\",\"brand\":\"brand name\",\"regions\":[%s]}",
		strings.Join(entries, ","))

	return []oracle.Message{
		oracle.System(extractionSystemPrompt),
		oracle.User(b.String()),
	}
}
