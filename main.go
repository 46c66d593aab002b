package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"searchlens/internal/compare"
	"searchlens/internal/config"
	"searchlens/internal/exa"
	"searchlens/internal/server"
	"searchlens/internal/traditional"
)

func main() {
	// Set the GetEnv function for config
	config.GetEnv = os.Getenv

	cfg := parseFlags()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if !cfg.ExaConfigured() {
		logger.Warn("EXA_API_KEY is not set; comparisons will fail until a key is configured")
	}

	// Initialize components
	exaClient := exa.NewClient(cfg.ExaBaseURL, cfg.ExaAPIKey, cfg.RequestTimeout)
	searcher := newTraditionalSearcher(cfg)
	service := compare.NewService(exaClient, searcher, logger, cfg.DefaultMaxResults)
	srv := server.New(cfg, service, logger)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("listening",
			zap.Int("port", cfg.Port),
			zap.String("traditional_provider", cfg.TraditionalProvider),
			zap.Bool("exa_api_configured", cfg.ExaConfigured()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Warn("shutdown incomplete", zap.Error(err))
	}
}

// parseFlags layers command-line flags over environment configuration
func parseFlags() *config.Config {
	cfg := config.NewConfig()
	cfg.ApplyEnv()

	flag.StringVar(&cfg.ExaBaseURL, "exa-url", cfg.ExaBaseURL, "Exa API base URL")
	flag.IntVar(&cfg.Port, "port", cfg.Port, "HTTP listen port")
	flag.IntVar(&cfg.DefaultMaxResults, "max-results", cfg.DefaultMaxResults, "Default number of results per side")
	flag.StringVar(&cfg.TraditionalProvider, "traditional", cfg.TraditionalProvider, "Traditional search provider (mock or searxng)")
	flag.StringVar(&cfg.SearXNGURL, "searxng-url", cfg.SearXNGURL, "SearXNG instance URL")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable debug logging")

	timeoutSeconds := flag.Int("timeout", int(cfg.RequestTimeout/time.Second), "Outbound request timeout in seconds")

	flag.Parse()

	cfg.RequestTimeout = time.Duration(*timeoutSeconds) * time.Second

	return cfg
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newTraditionalSearcher(cfg *config.Config) traditional.Searcher {
	if cfg.TraditionalProvider == config.ProviderSearXNG {
		return traditional.NewSearXNG(cfg.SearXNGURL, cfg.RequestTimeout)
	}
	return traditional.NewMock()
}
