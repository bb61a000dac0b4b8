package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ougirez/luxcompare/internal/domain"
	"github.com/ougirez/luxcompare/internal/pkg/constants"
)

// CreateSession issues an anonymous session as a cookie and in the body.
func (c *Controller) CreateSession(ctx echo.Context) error {
	session, err := c.auth.IssueSession(ctx.Request().Context())
	if err != nil {
		return err
	}

	ctx.SetCookie(sessionCookie(ctx, constants.CookieKeyAuthToken, session))

	return ctx.JSON(http.StatusOK, session)
}

func (c *Controller) LoginAdmin(ctx echo.Context) error {
	req := new(domain.AdminLoginRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	session, err := c.auth.LoginAdmin(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	ctx.SetCookie(sessionCookie(ctx, constants.CookieKeySecretToken, session))

	return ctx.JSON(http.StatusOK, session)
}

func sessionCookie(ctx echo.Context, name string, session *domain.Session) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   ctx.Scheme() == "https",
		SameSite: http.SameSiteLaxMode,
	}
}
