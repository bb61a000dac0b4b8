package controller

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ougirez/luxcompare/internal/domain"
	"github.com/ougirez/luxcompare/internal/pkg/constants"
	"github.com/ougirez/luxcompare/internal/service/shortlist"
)

func userID(ctx echo.Context) (string, error) {
	id, ok := ctx.Get(constants.CtxKeyUserID).(string)
	if !ok || id == "" {
		return "", constants.ErrUnauthorized
	}
	return id, nil
}

func (c *Controller) ListShortlist(ctx echo.Context) error {
	uid, err := userID(ctx)
	if err != nil {
		return err
	}

	items, err := c.shortlist.List(ctx.Request().Context(), uid)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, items)
}

func (c *Controller) AddToShortlist(ctx echo.Context) error {
	uid, err := userID(ctx)
	if err != nil {
		return err
	}

	loc := new(domain.LocationScore)
	if err = ctx.Bind(loc); err != nil {
		return err
	}
	if err = ctx.Validate(loc); err != nil {
		return err
	}

	items, err := c.shortlist.Add(ctx.Request().Context(), uid, loc)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, items)
}

func (c *Controller) RemoveFromShortlist(ctx echo.Context) error {
	uid, err := userID(ctx)
	if err != nil {
		return err
	}

	items, err := c.shortlist.Remove(ctx.Request().Context(), uid, ctx.Param("locationId"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, items)
}

// ExportShortlist sends the side-by-side comparison as an xlsx attachment.
func (c *Controller) ExportShortlist(ctx echo.Context) error {
	uid, err := userID(ctx)
	if err != nil {
		return err
	}

	data, err := c.shortlist.Export(ctx.Request().Context(), uid)
	if err != nil {
		return err
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", shortlist.ExportFileName))

	return ctx.Blob(http.StatusOK, shortlist.ExportContentType, data)
}
