package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ougirez/luxcompare/internal/domain"
)

func (c *Controller) ScoreLocations(ctx echo.Context) error {
	req := new(domain.LocationScoresRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}

	resp, err := c.locations.Scores(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, resp)
}

func (c *Controller) SuggestZips(ctx echo.Context) error {
	req := new(domain.ZipSuggestionsRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}

	resp, err := c.locations.Zips(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, resp)
}

func (c *Controller) ListZipListings(ctx echo.Context) error {
	req := new(domain.ZipListingsRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}

	resp, err := c.locations.Listings(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, resp)
}
