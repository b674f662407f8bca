// Pollinate - Family Curriculum Local Opportunity Discovery
// Copyright 2026 hajjbbee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hajjbbee/Pollinate-HE-Curriculum-sub001

package places

import (
	"context"
	"time"

	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/config"
	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/metrics"
	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/models"
	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/sources"
)

// AdapterName labels this provider in logs, metrics, and breaker state.
const AdapterName = "places"

// Adapter wraps the nearby-search client with circuit breaker protection and
// provider metrics. It satisfies the discovery engine's source interface.
type Adapter struct {
	client  *Client
	breaker *sources.Breaker
}

// NewAdapter creates the places source adapter.
func NewAdapter(cfg config.PlacesConfig) *Adapter {
	return &Adapter{
		client:  NewClient(cfg),
		breaker: sources.NewBreaker(AdapterName),
	}
}

// Name returns the provider label.
func (a *Adapter) Name() string {
	return AdapterName
}

// Fetch runs one search through the circuit breaker. Errors are returned to
// the caller; the discovery engine collapses them to an empty contribution.
func (a *Adapter) Fetch(ctx context.Context, q models.SearchQuery) ([]models.CanonicalEvent, error) {
	start := time.Now()

	events, err := a.breaker.Execute(func() ([]models.CanonicalEvent, error) {
		return a.client.SearchPlaces(ctx, q)
	})

	metrics.RecordProviderRequest(AdapterName, err, time.Since(start))
	if err != nil {
		return nil, err
	}

	metrics.ProviderEventsFetched.WithLabelValues(AdapterName).Add(float64(len(events)))
	return events, nil
}

// BreakerState reports the circuit breaker state for health checks.
func (a *Adapter) BreakerState() string {
	return a.breaker.State()
}
