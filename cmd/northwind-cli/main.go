package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"

	"github.com/goliatone/go-northwind"
	"github.com/goliatone/go-northwind/internal/logging"
	"github.com/goliatone/go-northwind/pkg/admin"
	"github.com/goliatone/go-northwind/pkg/renderers/tui"
)

func main() {
	var (
		configFlag = flag.String("config", "", "YAML configuration file")
		envFlag    = flag.String("env", ".env", "dotenv file loaded before reading NORTHWIND_* variables")
		layoutFlag = flag.String("layout", "", "OpenAPI document describing the customer fields (bundled when empty)")
	)
	flag.Parse()

	cfg, err := northwind.LoadConfig(*configFlag, *envFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logger, err := logging.New("northwind-cli", cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("init logging")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	backend, err := northwind.NewClient(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("build client")
	}
	layout, err := northwind.LoadLayout(ctx, *layoutFlag)
	if err != nil {
		logger.Fatal().Err(err).Msg("load layout")
	}
	renderer, err := tui.New()
	if err != nil {
		logger.Fatal().Err(err).Msg("build renderer")
	}

	prompts := tui.NewPrompts(tui.WithInfoOutput(os.Stdout))
	opts := []admin.Option{
		admin.WithLogger(logger),
		admin.WithTimeout(cfg.Timeout),
		admin.WithConfirmer(prompts),
		admin.WithNotifier(prompts),
		admin.WithLimit(cfg.RevenueLimit),
	}
	customers, err := admin.NewCustomerTable(backend, layout, opts...)
	if err != nil {
		logger.Fatal().Err(err).Msg("build customer table")
	}
	revenue, err := admin.NewRevenueTable(backend, opts...)
	if err != nil {
		logger.Fatal().Err(err).Msg("build revenue table")
	}

	c := &console{
		customers: customers,
		revenue:   revenue,
		prompts:   prompts,
		renderer:  renderer,
		out:       os.Stdout,
	}
	if err := c.run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("console")
	}
}
