package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/urfave/cli/v2"

	"github.com/ougirez/luxcompare/internal/api"
	"github.com/ougirez/luxcompare/internal/domain"
	"github.com/ougirez/luxcompare/internal/pkg/logger"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "listen address, overrides server.addr",
			},
		},
		Action: func(c *cli.Context) error {
			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, c.String("config"), true)
			if err != nil {
				return err
			}
			defer a.Close()

			svc, err := api.NewAPIService(a.cfg, a.services)
			if err != nil {
				return fmt.Errorf("api.NewAPIService: %w", err)
			}

			addr := a.cfg.Server.Addr
			if c.String("addr") != "" {
				addr = c.String("addr")
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Infof(ctx, "listening on %s", addr)
				errCh <- svc.Serve(addr)
			}()

			select {
			case err = <-errCh:
				return err
			case <-ctx.Done():
			}

			logger.Infof(context.Background(), "shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
			defer cancel()
			if err = svc.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("svc.Shutdown: %w", err)
			}
			return <-errCh
		},
	}
}

func compareCommand() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "compare one product across regions and print the result as JSON",
		ArgsUsage: "<product query>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "brand", Usage: "brand name"},
			&cli.StringFlag{Name: "url", Usage: "official product page the query came from"},
			&cli.StringFlag{Name: "home-region", Usage: "region the known price belongs to"},
			&cli.Float64Flag{Name: "home-price", Usage: "price already known for the home region"},
		},
		Action: func(c *cli.Context) error {
			query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
			if query == "" {
				return cli.Exit("a product query is required", 2)
			}

			a, err := newApp(c.Context, c.String("config"), false)
			if err != nil {
				return err
			}
			defer a.Close()

			req := &domain.PriceSearchRequest{
				ConfirmedQuery: query,
				Brand:          c.String("brand"),
				ProductURL:     c.String("url"),
				HomeRegion:     c.String("home-region"),
			}
			if c.IsSet("home-price") {
				price := c.Float64("home-price")
				req.HomePrice = &price
			}

			result, err := a.services.Pricing.Compare(c.Context, req)
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}
}

func identifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "identify",
		Usage:     "identify a product from a URL or a free-text description",
		ArgsUsage: "<url or description>",
		Action: func(c *cli.Context) error {
			input := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
			if input == "" {
				return cli.Exit("a URL or description is required", 2)
			}

			a, err := newApp(c.Context, c.String("config"), false)
			if err != nil {
				return err
			}
			defer a.Close()

			info, err := a.services.Identify.Identify(c.Context, &domain.IdentifyRequest{Input: input})
			if err != nil {
				return err
			}
			return printJSON(info)
		},
	}
}

func printJSON(v any) error {
	enc := sonic.ConfigDefault.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
