package api

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ougirez/luxcompare/internal/pkg/constants"
	"github.com/ougirez/luxcompare/internal/pkg/logger"
)

// RequestContext puts a logger carrying the request id into the request context.
func RequestContext(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		ctx := logger.WithFields(req.Context(),
			"request_id", c.Response().Header().Get(constants.HeaderRequestID),
			"method", req.Method,
			"path", req.URL.Path,
		)
		c.SetRequest(req.WithContext(ctx))
		return next(c)
	}
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ctx := c.Request().Context()
			if v.Error != nil {
				logger.Warn(ctx, "request failed", "status", v.Status, "latency", v.Latency.String(), "error", v.Error.Error())
				return nil
			}
			logger.Info(ctx, "request", "status", v.Status, "latency", v.Latency.String())
			return nil
		},
	})
}

// AuthMiddleware requires a session, from the session cookie or a bearer token,
// and stores its user id under constants.CtxKeyUserID.
func (svc *APIService) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		token := bearerToken(ctx)
		if token == "" {
			cookie, err := ctx.Cookie(constants.CookieKeyAuthToken)
			if err != nil || cookie.Value == "" {
				return constants.ErrMissingAuthCookie
			}
			token = cookie.Value
		}

		userID, err := svc.auth.Authenticate(token)
		if err != nil {
			return err
		}

		ctx.Set(constants.CtxKeyUserID, userID)
		ctx.SetRequest(ctx.Request().WithContext(logger.WithFields(ctx.Request().Context(), "user_id", userID)))

		return next(ctx)
	}
}

func (svc *APIService) AdminMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		token := ctx.Request().Header.Get(constants.HeaderAdminToken)
		if token == "" {
			cookie, err := ctx.Cookie(constants.CookieKeySecretToken)
			if err != nil {
				return constants.ErrUnauthorized
			}
			token = cookie.Value
		}

		if err := svc.auth.AuthenticateAdmin(token); err != nil {
			return err
		}

		return next(ctx)
	}
}

func bearerToken(ctx echo.Context) string {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if len(header) > len("Bearer ") && strings.EqualFold(header[:len("Bearer ")], "Bearer ") {
		return strings.TrimSpace(header[len("Bearer "):])
	}
	return ""
}
