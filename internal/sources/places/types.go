// Pollinate - Family Curriculum Local Opportunity Discovery
// Copyright 2026 hajjbbee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hajjbbee/Pollinate-HE-Curriculum-sub001

package places

// Response shapes for the Places Nearby Search API. Only the fields the
// mapper consumes are modeled.
//
// API Reference: https://developers.google.com/maps/documentation/places/web-service/search-nearby

type nearbyResponse struct {
	Status       string     `json:"status"`
	ErrorMessage string     `json:"error_message"`
	Results      []apiPlace `json:"results"`
}

type apiPlace struct {
	PlaceID  string      `json:"place_id"`
	Name     string      `json:"name"`
	Vicinity string      `json:"vicinity"`
	Geometry apiGeometry `json:"geometry"`
	Types    []string    `json:"types"`
	Rating   float64     `json:"rating"`
}

type apiGeometry struct {
	Location apiLatLng `json:"location"`
}

type apiLatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
