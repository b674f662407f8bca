// Pollinate - Family Curriculum Local Opportunity Discovery
// Copyright 2026 hajjbbee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hajjbbee/Pollinate-HE-Curriculum-sub001

package ticketmaster

// Response shapes for the Ticketmaster Discovery API v2 event search.
// Only the fields the mapper consumes are modeled; everything else in the
// upstream payload is ignored during decoding.
//
// API Reference: https://developer.ticketmaster.com/products-and-docs/apis/discovery-api/v2/

type searchResponse struct {
	Embedded *searchEmbedded `json:"_embedded"`
	Page     pageInfo        `json:"page"`
}

type searchEmbedded struct {
	Events []apiEvent `json:"events"`
}

type pageInfo struct {
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
}

type apiEvent struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Info            string           `json:"info"`
	Description     string           `json:"description"`
	Dates           apiDates         `json:"dates"`
	PriceRanges     []apiPriceRange  `json:"priceRanges"`
	Classifications []classification `json:"classifications"`
	Embedded        *eventEmbedded   `json:"_embedded"`
}

type apiDates struct {
	Start apiDate `json:"start"`
	End   apiDate `json:"end"`
}

type apiDate struct {
	DateTime  string `json:"dateTime"`
	LocalDate string `json:"localDate"`
}

type apiPriceRange struct {
	Type     string  `json:"type"`
	Currency string  `json:"currency"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

type classification struct {
	Primary bool       `json:"primary"`
	Segment namedEntry `json:"segment"`
	Genre   namedEntry `json:"genre"`
}

type namedEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type eventEmbedded struct {
	Venues []apiVenue `json:"venues"`
}

type apiVenue struct {
	Name     string      `json:"name"`
	Address  apiAddress  `json:"address"`
	City     namedEntry  `json:"city"`
	State    apiState    `json:"state"`
	Location apiLocation `json:"location"`
}

type apiAddress struct {
	Line1 string `json:"line1"`
}

type apiState struct {
	StateCode string `json:"stateCode"`
}

// Coordinates arrive as strings in the Discovery API payload.
type apiLocation struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}
