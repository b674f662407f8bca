// Pollinate - Family Curriculum Local Opportunity Discovery
// Copyright 2026 hajjbbee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hajjbbee/Pollinate-HE-Curriculum-sub001

package discovery

import (
	"context"
	"time"

	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/models"
)

// Request carries one weekly discovery invocation: the family identity, its
// home location and travel radius, the AI-generated weekly theme, and the
// start of the target week.
type Request struct {
	FamilyID string

	// HasHome reports whether the family configured a home location.
	// Latitude and Longitude are only meaningful when it is true; an
	// explicit flag avoids treating a family at (0, 0) as location-less.
	HasHome   bool
	Latitude  float64
	Longitude float64

	RadiusKm  int
	Theme     string
	WeekStart time.Time
}

// SourceAdapter is one upstream provider of partial canonical events.
// Implementations return their raw contribution or an error; the engine is
// the single point where adapter failures collapse to an empty contribution.
type SourceAdapter interface {
	Name() string
	Fetch(ctx context.Context, q models.SearchQuery) ([]models.CanonicalEvent, error)
}
