// Pollinate - Family Curriculum Local Opportunity Discovery
// Copyright 2026 hajjbbee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hajjbbee/Pollinate-HE-Curriculum-sub001

package models

import "time"

// SearchQuery carries the per-week search parameters handed to each source
// adapter. Adapters are family-agnostic; the family identifier is attached
// later during annotation.
type SearchQuery struct {
	Latitude  float64
	Longitude float64
	RadiusKm  int
	Theme     string
	Keywords  []string
	WeekStart time.Time
	WeekEnd   time.Time
}

// RadiusMeters returns the travel radius converted to meters, used by
// providers that take metric radii.
func (q SearchQuery) RadiusMeters() int {
	return q.RadiusKm * 1000
}
