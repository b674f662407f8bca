// Pollinate - Family Curriculum Local Opportunity Discovery
// Copyright 2026 hajjbbee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hajjbbee/Pollinate-HE-Curriculum-sub001

// Package main is the entry point for the Pollinate discovery server.
//
// Pollinate discovers local learning opportunities for homeschooling
// families: given a family's location and the theme of their current
// curriculum week, it queries ticketed event and points-of-interest
// providers, deduplicates the results, and returns an annotated shortlist
// suitable for embedding in a weekly plan.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables and config files (Koanf v2)
//  2. Source adapters: Ticketmaster and Google Places clients, each behind
//     its own circuit breaker
//  3. Discovery engine: concurrent fan-out, dedupe, and annotation
//  4. Result cache: in-memory TTL cache keyed by the discovery parameters
//  5. HTTP server: REST API with Prometheus metrics, supervised by suture
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables
//   - Config file (config.yaml)
//   - Built-in defaults
//
// Typical setup:
//
//	export TICKETMASTER_ENABLED=true
//	export TICKETMASTER_API_KEY=your-key
//	export PLACES_ENABLED=true
//	export PLACES_API_KEY=your-key
//	./pollinate
//
// Either provider can run alone; a disabled or failing provider degrades
// to an empty contribution rather than failing the discovery run.
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//   - Stops the result cache's cleanup goroutine
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/api"
	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/cache"
	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/config"
	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/discovery"
	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/logging"
	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/sources/places"
	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/sources/ticketmaster"
	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/supervisor"
	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Msg("Starting Pollinate discovery server")
	logging.Info().
		Bool("ticketmaster_enabled", cfg.Ticketmaster.Enabled).
		Bool("places_enabled", cfg.Places.Enabled).
		Int("max_events", cfg.Discovery.MaxEvents).
		Int("default_radius_km", cfg.Discovery.DefaultRadiusKm).
		Msg("Configuration loaded")

	if !cfg.Ticketmaster.Enabled && !cfg.Places.Enabled {
		logging.Warn().Msg("All source providers are disabled - discovery will return empty results")
	}

	// Source adapters. A disabled provider contributes an untyped nil so the
	// engine skips it entirely.
	var (
		ticketed  discovery.SourceAdapter
		placesSrc discovery.SourceAdapter
		reporters []api.BreakerReporter
	)
	if cfg.Ticketmaster.Enabled {
		a := ticketmaster.NewAdapter(cfg.Ticketmaster)
		ticketed = a
		reporters = append(reporters, a)
		logging.Info().
			Str("base_url", cfg.Ticketmaster.BaseURL).
			Float64("rate_limit", cfg.Ticketmaster.RateLimit).
			Msg("Ticketmaster provider enabled")
	}
	if cfg.Places.Enabled {
		a := places.NewAdapter(cfg.Places)
		placesSrc = a
		reporters = append(reporters, a)
		logging.Info().
			Str("base_url", cfg.Places.BaseURL).
			Float64("rate_limit", cfg.Places.RateLimit).
			Msg("Places provider enabled")
	}

	engine := discovery.NewEngine(ticketed, placesSrc, cfg.Discovery)

	// Result cache for repeated discovery requests within a week
	var resultCache *cache.Cache
	if cfg.Cache.Enabled {
		resultCache = cache.New("discovery", cfg.Cache.TTL)
		defer resultCache.Stop()
		logging.Info().Dur("ttl", cfg.Cache.TTL).Msg("Result cache enabled")
	} else {
		logging.Info().Msg("Result cache disabled (CACHE_ENABLED=false)")
	}

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	handler := api.NewHandler(engine, resultCache, cfg, reporters...)
	middleware := api.NewChiMiddleware(api.MiddlewareConfigFromSecurity(cfg.Security))
	router := api.NewRouter(handler, middleware)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for sutureslog compatibility
	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// Wait for supervisor to finish (either from signal or error)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Wait for the error channel to close (supervisor finished)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}
