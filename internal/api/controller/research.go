package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ougirez/luxcompare/internal/domain"
)

func (c *Controller) SearchResearch(ctx echo.Context) error {
	req := new(domain.ResearchSearchRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}

	resp, err := c.research.Search(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, resp)
}

func (c *Controller) GenerateTitle(ctx echo.Context) error {
	req := new(domain.TitleRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}

	resp, err := c.research.Title(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, resp)
}
