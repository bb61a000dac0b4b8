package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ougirez/luxcompare/internal/domain"
)

func (c *Controller) IdentifyProduct(ctx echo.Context) error {
	req := new(domain.IdentifyRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}

	info, err := c.identify.Identify(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, info)
}

func (c *Controller) ClarifyProduct(ctx echo.Context) error {
	req := new(domain.ClarifyRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}

	resp, err := c.identify.Clarify(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, resp)
}
