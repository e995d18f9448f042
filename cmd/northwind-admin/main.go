package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/goliatone/go-northwind"
	"github.com/goliatone/go-northwind/internal/logging"
)

func main() {
	var (
		configFlag = flag.String("config", "", "YAML configuration file")
		envFlag    = flag.String("env", ".env", "dotenv file loaded before reading NORTHWIND_* variables")
		addrFlag   = flag.String("addr", "", "HTTP listen address (overrides config)")
		layoutFlag = flag.String("layout", "", "OpenAPI document describing the customer fields (bundled when empty)")
	)
	flag.Parse()

	cfg, err := northwind.LoadConfig(*configFlag, *envFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if *addrFlag != "" {
		cfg.Addr = *addrFlag
	}

	logger, err := logging.Init("northwind-admin", cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("init logging")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	layout, err := northwind.LoadLayout(ctx, *layoutFlag)
	if err != nil {
		logger.Fatal().Err(err).Msg("load layout")
	}

	handler, err := northwind.NewHandler(ctx, cfg, logger, northwind.Options{Layout: layout})
	if err != nil {
		logger.Fatal().Err(err).Msg("build handler")
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info().
		Str("addr", cfg.Addr).
		Str("base_url", cfg.BaseURL).
		Str("base_path", cfg.BasePath).
		Dur("timeout", cfg.Timeout).
		Msg("listening")

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		logger.Fatal().Err(err).Msg("listen")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
		return
	}
	logger.Info().Msg("stopped")
}
