// Pollinate - Family Curriculum Local Opportunity Discovery
// Copyright 2026 hajjbbee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hajjbbee/Pollinate-HE-Curriculum-sub001

package discovery

import (
	"context"
	"sync"
	"time"

	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/config"
	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/keywords"
	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/logging"
	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/metrics"
	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/models"
)

// weekDays is the length of the discovery window.
const weekDays = 7

// Engine is the weekly discovery orchestrator. It fans out to the ticketed
// and places adapters concurrently, merges and deduplicates their output
// with ticketed records first, caps the result, and annotates survivors.
//
// The engine is stateless across invocations and holds no shared mutable
// state; each Discover call is independent.
type Engine struct {
	ticketed  SourceAdapter
	places    SourceAdapter
	maxEvents int
	timeout   time.Duration
}

// NewEngine creates the orchestrator over the two source adapters.
func NewEngine(ticketed, places SourceAdapter, cfg config.DiscoveryConfig) *Engine {
	return &Engine{
		ticketed:  ticketed,
		places:    places,
		maxEvents: cfg.MaxEvents,
		timeout:   cfg.RunTimeout,
	}
}

// Discover runs one weekly discovery. Adapter failures degrade to an empty
// contribution from that source and never surface to the caller: the worst
// outcome of total upstream failure is an empty list, not a failed
// curriculum regeneration.
func (e *Engine) Discover(ctx context.Context, req Request) []models.CanonicalEvent {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	weekEnd := req.WeekStart.AddDate(0, 0, weekDays)
	q := models.SearchQuery{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		RadiusKm:  req.RadiusKm,
		Theme:     req.Theme,
		Keywords:  keywords.Extract(req.Theme),
		WeekStart: req.WeekStart,
		WeekEnd:   weekEnd,
	}

	// Fan out to both adapters concurrently; each is an independent
	// network-bound call and neither blocks the other.
	var (
		wg             sync.WaitGroup
		ticketedEvents []models.CanonicalEvent
		placesEvents   []models.CanonicalEvent
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		ticketedEvents = e.fetchSource(ctx, e.ticketed, q)
	}()
	go func() {
		defer wg.Done()
		placesEvents = e.fetchSource(ctx, e.places, q)
	}()
	wg.Wait()

	// Ticketed records always precede places records in the merged order.
	merged := make([]models.CanonicalEvent, 0, len(ticketedEvents)+len(placesEvents))
	merged = append(merged, ticketedEvents...)
	merged = append(merged, placesEvents...)

	deduped := Deduplicate(merged)
	if drops := len(merged) - len(deduped); drops > 0 {
		metrics.DedupeDropsTotal.Add(float64(drops))
	}

	if len(deduped) > e.maxEvents {
		deduped = deduped[:e.maxEvents]
	}

	for i := range deduped {
		annotate(&deduped[i], req)
	}

	metrics.RecordDiscovery(len(deduped), time.Since(start))
	logger := logging.Ctx(ctx)
	logger.Info().
		Str("family_id", req.FamilyID).
		Str("theme", req.Theme).
		Int("ticketed", len(ticketedEvents)).
		Int("places", len(placesEvents)).
		Int("returned", len(deduped)).
		Dur("duration", time.Since(start)).
		Msg("Weekly discovery completed")

	return deduped
}

// fetchSource is the collapse point for adapter failures: any error becomes
// an empty contribution plus a warning, so one broken provider cannot fail
// the run.
func (e *Engine) fetchSource(ctx context.Context, adapter SourceAdapter, q models.SearchQuery) []models.CanonicalEvent {
	if adapter == nil {
		return nil
	}

	events, err := adapter.Fetch(ctx, q)
	if err != nil {
		logger := logging.Ctx(ctx)
		logger.Warn().
			Str("source", adapter.Name()).
			Err(err).
			Msg("Source adapter degraded to empty contribution")
		return nil
	}

	return events
}
