package main

import (
	"context"
	"fmt"

	"github.com/ougirez/luxcompare/internal/api/controller"
	"github.com/ougirez/luxcompare/internal/pkg/config"
	"github.com/ougirez/luxcompare/internal/pkg/logger"
	"github.com/ougirez/luxcompare/internal/pkg/oracle/fx"
	"github.com/ougirez/luxcompare/internal/pkg/oracle/llm"
	"github.com/ougirez/luxcompare/internal/pkg/oracle/search"
	"github.com/ougirez/luxcompare/internal/pkg/store"
	"github.com/ougirez/luxcompare/internal/pkg/store/xpgx"
	"github.com/ougirez/luxcompare/internal/service/auth"
	"github.com/ougirez/luxcompare/internal/service/identify"
	"github.com/ougirez/luxcompare/internal/service/locations"
	"github.com/ougirez/luxcompare/internal/service/pricing"
	"github.com/ougirez/luxcompare/internal/service/research"
	"github.com/ougirez/luxcompare/internal/service/shortlist"
)

type app struct {
	cfg      *config.Config
	services controller.Services
	pool     *store.Pool
}

func (a *app) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
	logger.Sync()
}

// newApp loads configuration and wires every service. withStore connects to
// Postgres when a DSN is configured; the one-off commands skip it.
func newApp(ctx context.Context, configPath string, withStore bool) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	if err = logger.Init(cfg.Log.Level, cfg.Log.Dev); err != nil {
		return nil, fmt.Errorf("logger.Init: %w", err)
	}

	if cfg.Oracle.Token == "" {
		logger.Warnf(ctx, "no oracle token configured, upstream calls will be rejected")
	}

	llmClient := llm.NewClient(cfg.Oracle.BaseURL, cfg.Oracle.Token, cfg.Oracle.Model, cfg.Oracle.Timeout)
	searchClient := search.NewClient(cfg.Oracle.BaseURL, cfg.Oracle.Token, cfg.Oracle.Timeout,
		cfg.Search.RatePerSecond, cfg.Search.Burst)
	fxClient := fx.NewClient(cfg.FX.URL, cfg.FX.Timeout)

	regions := pricing.DefaultConfig().WithFallbackRates(cfg.FX.FallbackRates)

	pricingService, err := pricing.NewService(regions, searchClient, llmClient, fxClient, pricing.Options{
		MaxResults:   cfg.Search.MaxResults,
		SnippetChars: cfg.Search.SnippetChars,
	})
	if err != nil {
		return nil, fmt.Errorf("pricing.NewService: %w", err)
	}

	a := &app{cfg: cfg}

	var st store.Store
	if withStore && cfg.Database.DSN != "" {
		a.pool, err = xpgx.New(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("xpgx.New: %w", err)
		}
		st = store.NewStore(a.pool)
		if err = st.EnsureSchema(ctx); err != nil {
			a.Close()
			return nil, fmt.Errorf("store.EnsureSchema: %w", err)
		}
	} else if withStore {
		logger.Warnf(ctx, "database.dsn is empty, shortlist routes are disabled")
	}

	a.services = controller.Services{
		Pricing:   pricingService,
		Identify:  identify.NewIdentifyService(regions, searchClient, llmClient, identify.NewPageFetcher(cfg.Page.Timeout, cfg.Page.MaxRetries, cfg.Page.RetryDelay)),
		Locations: locations.NewLocationsService(searchClient, llmClient, 0),
		Research:  research.NewResearchService(searchClient, llmClient),
		Shortlist: shortlist.NewShortlistService(st),
		Auth:      auth.NewService(cfg.Auth.JWTKey, cfg.Auth.AdminSecret, cfg.Auth.SessionTTL),
	}

	return a, nil
}
