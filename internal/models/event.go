// Pollinate - Family Curriculum Local Opportunity Discovery
// Copyright 2026 hajjbbee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hajjbbee/Pollinate-HE-Curriculum-sub001

// Package models defines the canonical event record shared by the source
// adapters, the discovery engine, and the API layer.
package models

import (
	"strings"
	"time"
)

// Source identifies which adapter produced a canonical event.
type Source string

const (
	// SourceTicketed marks events from the ticketed-events provider.
	SourceTicketed Source = "ticketed"

	// SourcePlaces marks synthesized visit suggestions from the places provider.
	SourcePlaces Source = "places"
)

// Category values form a small controlled vocabulary. Adapters map upstream
// identifiers into this set; unmapped identifiers default to CategoryEducation.
const (
	CategoryEducation = "education"
	CategoryScience   = "science"
	CategoryArt       = "art"
	CategoryFamily    = "family"
	CategoryHistory   = "history"
	CategoryMusic     = "music"
	CategoryTheatre   = "theatre"
)

// CanonicalEvent is the unified representation of one discoverable local
// activity, regardless of originating source.
//
// Adapters produce partial records: EventName, Location, EventDate, Source
// and the descriptive fields. FamilyID, DriveMinutes and WhyItFits are
// populated only by the discovery engine after merge — never by adapters.
type CanonicalEvent struct {
	// ExternalID is the provider-scoped identifier, when the provider has one.
	ExternalID string `json:"external_id,omitempty"`

	// Source tags the adapter that produced this record.
	Source Source `json:"source"`

	// EventName is always present.
	EventName string `json:"event_name"`

	// Description is optional and truncated by adapters to a bounded length.
	Description string `json:"description,omitempty"`

	// Category is drawn from the controlled vocabulary above.
	Category string `json:"category"`

	// EventDate is required. EndDate, when present, is >= EventDate.
	EventDate time.Time  `json:"event_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	// Location is a human-readable address string, always present.
	Location string `json:"location"`

	// Latitude/Longitude are optional; when absent, drive-time annotation
	// is skipped.
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	// Cost is a free-form display string: "FREE", "$10", "$5-15", "Varies".
	Cost string `json:"cost,omitempty"`

	// FamilyID attaches the record to exactly one family. Set by the engine.
	FamilyID string `json:"family_id,omitempty"`

	// DriveMinutes is a one-way drive-time planning estimate, not a live
	// traffic query. Present only when both home and event coordinates
	// were known at annotation time.
	DriveMinutes *int `json:"drive_minutes,omitempty"`

	// WhyItFits is a one-line rationale connecting the event to the
	// weekly theme. Set by the engine.
	WhyItFits string `json:"why_it_fits,omitempty"`
}

// DedupeKey returns the identity key used by the deduplicator:
// lowercase(name) + "-" + lowercase(location). Two records sharing this key
// are considered the same event; the first seen survives.
func (e *CanonicalEvent) DedupeKey() string {
	return strings.ToLower(e.EventName) + "-" + strings.ToLower(e.Location)
}

// HasCoordinates reports whether the record carries a usable lat/lng pair.
func (e *CanonicalEvent) HasCoordinates() bool {
	return e.Latitude != nil && e.Longitude != nil
}
