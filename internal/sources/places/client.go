// Pollinate - Family Curriculum Local Opportunity Discovery
// Copyright 2026 hajjbbee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hajjbbee/Pollinate-HE-Curriculum-sub001

/*
client.go - Places Nearby Search client

Queries the nearby-places endpoint for attraction-type venues matching theme
keywords and synthesizes self-guided "Visit" pseudo-events. These are not
calendar-scheduled events; they are suggestions the family can take any day,
dated one week out by convention.
*/

package places

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/config"
	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/models"
)

// ErrMissingCredential is returned when no API key is configured.
var ErrMissingCredential = errors.New("places: api key not configured")

const (
	// maxQueryKeywords caps theme keywords in the nearby-search keyword param.
	maxQueryKeywords = 2

	// maxResultsPerType caps synthesized visits per place type.
	maxResultsPerType = 3

	// visitLeadDays dates each suggested visit one week from invocation.
	visitLeadDays = 7
)

// placeTypeQuery is one of the fixed place-type searches run per invocation.
type placeTypeQuery struct {
	placeType string
	category  string
}

// placeTypeQueries is the fixed pair of searches: attraction-like venues map
// to education, museum-like venues to history. Not user-configurable.
var placeTypeQueries = []placeTypeQuery{
	{placeType: "tourist_attraction", category: models.CategoryEducation},
	{placeType: "museum", category: models.CategoryHistory},
}

// Client provides access to the Places Nearby Search API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter

	// now is swappable for tests; one reading per search invocation dates
	// every synthesized visit identically.
	now func() time.Time
}

// NewClient creates a nearby-search client from provider configuration.
func NewClient(cfg config.PlacesConfig) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), 1),
		now:     time.Now,
	}
}

// SearchPlaces runs the fixed place-type searches around the query center
// and synthesizes visit pseudo-events tagged with the places source.
func (c *Client) SearchPlaces(ctx context.Context, q models.SearchQuery) ([]models.CanonicalEvent, error) {
	if c.apiKey == "" {
		return nil, ErrMissingCredential
	}

	visitDate := c.now().AddDate(0, 0, visitLeadDays)

	var events []models.CanonicalEvent
	for _, ptq := range placeTypeQueries {
		places, err := c.nearbySearch(ctx, q, ptq.placeType)
		if err != nil {
			return nil, err
		}

		if len(places) > maxResultsPerType {
			places = places[:maxResultsPerType]
		}
		for _, p := range places {
			ev, ok := mapPlace(p, ptq.category, visitDate)
			if !ok {
				continue
			}
			events = append(events, ev)
		}
	}

	return events, nil
}

// nearbySearch performs one place-type query.
func (c *Client) nearbySearch(ctx context.Context, q models.SearchQuery, placeType string) ([]apiPlace, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("places rate limiter: %w", err)
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("location", fmt.Sprintf("%f,%f", q.Latitude, q.Longitude))
	params.Set("radius", strconv.Itoa(q.RadiusMeters()))
	params.Set("type", placeType)
	if kw := queryKeyword(q.Keywords); kw != "" {
		params.Set("keyword", kw)
	}

	resp, err := c.doRequest(ctx, "/nearbysearch/json", params)
	if err != nil {
		return nil, fmt.Errorf("places nearby search failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("places search returned status %d (failed to read body)", resp.StatusCode)
		}
		return nil, fmt.Errorf("places search returned status %d: %s", resp.StatusCode, string(body))
	}

	var nearby nearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&nearby); err != nil {
		return nil, fmt.Errorf("failed to decode places response: %w", err)
	}

	switch nearby.Status {
	case "OK":
		return nearby.Results, nil
	case "ZERO_RESULTS":
		return nil, nil
	default:
		return nil, fmt.Errorf("places search returned status %s: %s", nearby.Status, nearby.ErrorMessage)
	}
}

// queryKeyword joins up to two keywords for the nearby-search keyword param.
func queryKeyword(keywords []string) string {
	if len(keywords) > maxQueryKeywords {
		keywords = keywords[:maxQueryKeywords]
	}
	return strings.Join(keywords, " ")
}

// doRequest performs an HTTP GET against the Places API.
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values) (*http.Response, error) {
	fullURL := c.baseURL + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	return c.httpClient.Do(req)
}

// mapPlace synthesizes a visit pseudo-event from one place result. Returns
// false when the place lacks a name or address.
func mapPlace(p apiPlace, category string, visitDate time.Time) (models.CanonicalEvent, bool) {
	if p.Name == "" || p.Vicinity == "" {
		return models.CanonicalEvent{}, false
	}

	ev := models.CanonicalEvent{
		ExternalID: p.PlaceID,
		Source:     models.SourcePlaces,
		EventName:  "Visit: " + p.Name,
		Category:   category,
		EventDate:  visitDate,
		Location:   p.Vicinity,
		Cost:       "Varies",
	}

	// A zeroed geometry means the payload omitted coordinates entirely.
	lat := p.Geometry.Location.Lat
	lng := p.Geometry.Location.Lng
	if lat != 0 || lng != 0 {
		ev.Latitude = &lat
		ev.Longitude = &lng
	}

	return ev, true
}
