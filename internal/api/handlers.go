// Pollinate - Family Curriculum Local Opportunity Discovery
// Copyright 2026 hajjbbee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hajjbbee/Pollinate-HE-Curriculum-sub001

package api

import (
	"context"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/cache"
	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/config"
	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/discovery"
	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/logging"
	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/models"
	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/validation"
)

// Discoverer is the engine surface the handlers depend on; the concrete
// engine satisfies it and tests substitute stubs.
type Discoverer interface {
	Discover(ctx context.Context, req discovery.Request) []models.CanonicalEvent
}

// BreakerReporter exposes one provider's circuit state for readiness checks.
type BreakerReporter interface {
	Name() string
	BreakerState() string
}

// DiscoveryResult is the data payload of a discovery response.
type DiscoveryResult struct {
	Events []models.CanonicalEvent `json:"events"`
	Count  int                     `json:"count"`
}

// Handler holds the dependencies of all HTTP handlers.
type Handler struct {
	engine      Discoverer
	resultCache *cache.Cache
	cfg         *config.Config
	reporters   []BreakerReporter
}

// NewHandler creates the handler set. resultCache may be nil when caching is
// disabled.
func NewHandler(engine Discoverer, resultCache *cache.Cache, cfg *config.Config, reporters ...BreakerReporter) *Handler {
	return &Handler{
		engine:      engine,
		resultCache: resultCache,
		cfg:         cfg,
		reporters:   reporters,
	}
}

// HandleDiscovery runs one weekly discovery for a family.
// POST /api/v1/discovery
func (h *Handler) HandleDiscovery(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req DiscoveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rw.BadRequest("Invalid JSON body: " + err.Error())
		return
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	dreq, err := req.ToDiscovery(h.cfg.Discovery.DefaultRadiusKm)
	if err != nil {
		rw.BadRequest("week_start must be an RFC3339 timestamp")
		return
	}

	key := cache.GenerateKey("discovery", req.cacheParams())

	if h.resultCache != nil && !req.Refresh {
		if cached, ok := h.resultCache.Get(key); ok {
			if result, ok := cached.(DiscoveryResult); ok {
				rw.SuccessWithMeta(result, &APIMeta{Cached: true})
				return
			}
		}
	}

	events := h.engine.Discover(r.Context(), dreq)
	result := DiscoveryResult{
		Events: events,
		Count:  len(events),
	}

	if h.resultCache != nil {
		h.resultCache.Set(key, result)
	}

	rw.Success(result)
}

// HandleHealth reports overall service health.
// GET /api/v1/health
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	providers := make(map[string]string, len(h.reporters))
	for _, rep := range h.reporters {
		providers[rep.Name()] = rep.BreakerState()
	}

	status := map[string]interface{}{
		"status":    "healthy",
		"providers": providers,
	}

	if h.resultCache != nil {
		status["cache_hit_rate"] = h.resultCache.HitRate()
	}

	WriteSuccess(w, r, status)
}

// HandleLiveness is the bare liveness probe.
// GET /api/v1/health/live
func (h *Handler) HandleLiveness(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, map[string]string{"status": "alive"})
}

// HandleReadiness reports readiness. The service can always accept traffic
// once started (providers degrade gracefully), so open breakers are surfaced
// for operators without failing the probe.
// GET /api/v1/health/ready
func (h *Handler) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	providers := make(map[string]string, len(h.reporters))
	for _, rep := range h.reporters {
		state := rep.BreakerState()
		providers[rep.Name()] = state
		if state == "open" {
			logger := logging.Ctx(r.Context())
			logger.Warn().Str("provider", rep.Name()).Msg("Provider circuit open during readiness check")
		}
	}

	WriteSuccess(w, r, map[string]interface{}{
		"status":    "ready",
		"providers": providers,
	})
}
