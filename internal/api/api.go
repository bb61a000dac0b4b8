package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/ougirez/luxcompare/internal/api/controller"
	"github.com/ougirez/luxcompare/internal/pkg/config"
	"github.com/ougirez/luxcompare/internal/pkg/constants"
	"github.com/ougirez/luxcompare/internal/service/auth"
)

type APIService struct {
	router *echo.Echo
	auth   *auth.Service
}

// Serve blocks until the server stops. A clean Shutdown is not an error.
func (svc *APIService) Serve(addr string) error {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func (svc *APIService) Handler() http.Handler {
	return svc.router
}

func NewAPIService(cfg *config.Config, services controller.Services) (*APIService, error) {
	if services.Auth == nil {
		return nil, errors.New("auth service is required")
	}

	svc := &APIService{router: echo.New(), auth: services.Auth}

	svc.router.HideBanner = true
	svc.router.Logger.SetLevel(echoLogLevel(cfg.Log.Level))
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = JSONSerializer{}
	svc.router.HTTPErrorHandler = httpErrorHandler

	svc.router.Use(middleware.Recover())
	svc.router.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator:    uuid.NewString,
		TargetHeader: constants.HeaderRequestID,
	}))
	svc.router.Use(RequestContext)
	svc.router.Use(requestLogger())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{echo.GET, echo.POST, echo.DELETE},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, constants.HeaderAdminToken},
		ExposeHeaders:    []string{constants.HeaderRequestID, echo.HeaderContentDisposition},
		AllowCredentials: true,
	}))

	cntrl := controller.NewController(services)

	svc.router.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := svc.router.Group("/api/v1")

	prices := api.Group("/prices")
	prices.POST("/search", cntrl.SearchPrices)

	products := api.Group("/products")
	products.POST("/identify", cntrl.IdentifyProduct)
	products.POST("/clarify", cntrl.ClarifyProduct)

	locations := api.Group("/locations")
	locations.POST("/scores", cntrl.ScoreLocations)
	locations.POST("/zips", cntrl.SuggestZips)
	locations.POST("/listings", cntrl.ListZipListings)

	research := api.Group("/research")
	research.POST("/search", cntrl.SearchResearch)
	research.POST("/title", cntrl.GenerateTitle)

	api.POST("/session", cntrl.CreateSession)

	shortlist := api.Group("/shortlist", svc.AuthMiddleware)
	shortlist.GET("", cntrl.ListShortlist)
	shortlist.POST("", cntrl.AddToShortlist)
	shortlist.GET("/export", cntrl.ExportShortlist)
	shortlist.DELETE("/:locationId", cntrl.RemoveFromShortlist)

	admin := api.Group("/admin")
	admin.POST("/login", cntrl.LoginAdmin)
	admin.GET("/fx", cntrl.GetFXSnapshot, svc.AdminMiddleware)

	return svc, nil
}

func echoLogLevel(level string) log.Lvl {
	switch level {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}
