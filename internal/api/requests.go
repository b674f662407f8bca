// Pollinate - Family Curriculum Local Opportunity Discovery
// Copyright 2026 hajjbbee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hajjbbee/Pollinate-HE-Curriculum-sub001

package api

import (
	"time"

	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/discovery"
)

// DiscoveryRequest is the request body for POST /api/v1/discovery.
// Latitude and Longitude are pointers so a family with no configured home
// location (fields absent) is distinguishable from one at the equator or
// prime meridian (explicit zero).
type DiscoveryRequest struct {
	FamilyID  string   `json:"family_id" validate:"required"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	RadiusKm  int      `json:"radius_km" validate:"omitempty,min=1,max=500"`
	Theme     string   `json:"theme" validate:"required,max=200"`
	WeekStart string   `json:"week_start" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`

	// Refresh bypasses the result cache for this invocation.
	Refresh bool `json:"refresh,omitempty"`
}

// ToDiscovery converts a validated request into the engine's input, applying
// the configured default radius when the caller omitted one.
func (dr DiscoveryRequest) ToDiscovery(defaultRadiusKm int) (discovery.Request, error) {
	weekStart, err := time.Parse(time.RFC3339, dr.WeekStart)
	if err != nil {
		return discovery.Request{}, err
	}

	radius := dr.RadiusKm
	if radius == 0 {
		radius = defaultRadiusKm
	}

	req := discovery.Request{
		FamilyID:  dr.FamilyID,
		RadiusKm:  radius,
		Theme:     dr.Theme,
		WeekStart: weekStart,
	}
	if dr.Latitude != nil && dr.Longitude != nil {
		req.HasHome = true
		req.Latitude = *dr.Latitude
		req.Longitude = *dr.Longitude
	}
	return req, nil
}

// cacheKeyParams is the subset of request fields that identify a cacheable
// result. Refresh is deliberately excluded so a forced refresh repopulates
// the same key.
type cacheKeyParams struct {
	FamilyID  string
	Latitude  *float64
	Longitude *float64
	RadiusKm  int
	Theme     string
	WeekStart string
}

func (dr DiscoveryRequest) cacheParams() cacheKeyParams {
	return cacheKeyParams{
		FamilyID:  dr.FamilyID,
		Latitude:  dr.Latitude,
		Longitude: dr.Longitude,
		RadiusKm:  dr.RadiusKm,
		Theme:     dr.Theme,
		WeekStart: dr.WeekStart,
	}
}
