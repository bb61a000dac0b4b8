package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ougirez/luxcompare/internal/domain"
)

// SearchPrices compares one confirmed product across all configured regions.
func (c *Controller) SearchPrices(ctx echo.Context) error {
	req := new(domain.PriceSearchRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	result, err := c.pricing.Compare(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, result)
}

func (c *Controller) GetFXSnapshot(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.pricing.Rates(ctx.Request().Context()))
}
