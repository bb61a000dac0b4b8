package shortlist

import (
	"context"
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/ougirez/luxcompare/internal/domain"
	"github.com/ougirez/luxcompare/internal/pkg/constants"
)

const (
	ExportSheet       = "Comparison"
	ExportFileName    = "metro-comparison.xlsx"
	ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type exportRow struct {
	label string
	score func(*domain.ShortlistItem) float64
}

var exportRows = []exportRow{
	{"Total", func(i *domain.ShortlistItem) float64 { return i.TotalScore }},
	{"Education", func(i *domain.ShortlistItem) float64 { return i.EducationScore }},
	{"Financial", func(i *domain.ShortlistItem) float64 { return i.FinancialScore }},
	{"STR", func(i *domain.ShortlistItem) float64 { return i.STRViabilityScore }},
	{"Lifestyle", func(i *domain.ShortlistItem) float64 { return i.LifestyleScore }},
}

// Export renders the two saved metros side by side, scores rounded to whole
// numbers.
func (s *Service) Export(ctx context.Context, userID string) ([]byte, error) {
	items, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) < MaxItems {
		return nil, constants.ErrShortlistIncomplete
	}
	a, b := items[0], items[1]

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err = f.SetSheetName(f.GetSheetName(0), ExportSheet); err != nil {
		return nil, fmt.Errorf("SetSheetName: %w", err)
	}

	if err = f.SetSheetRow(ExportSheet, "A1", &[]any{"Category", a.Label, b.Label}); err != nil {
		return nil, fmt.Errorf("SetSheetRow: %w", err)
	}
	for i, row := range exportRows {
		cell, cellErr := excelize.CoordinatesToCellName(1, i+2)
		if cellErr != nil {
			return nil, fmt.Errorf("CoordinatesToCellName: %w", cellErr)
		}
		values := []any{row.label, int(math.Round(row.score(a))), int(math.Round(row.score(b)))}
		if err = f.SetSheetRow(ExportSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("SetSheetRow: %w", err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("NewStyle: %w", err)
	}
	if err = f.SetCellStyle(ExportSheet, "A1", "C1", bold); err != nil {
		return nil, fmt.Errorf("SetCellStyle: %w", err)
	}
	if err = f.SetColWidth(ExportSheet, "A", "C", 28); err != nil {
		return nil, fmt.Errorf("SetColWidth: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("WriteToBuffer: %w", err)
	}
	return buf.Bytes(), nil
}
