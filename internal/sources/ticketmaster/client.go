// Pollinate - Family Curriculum Local Opportunity Discovery
// Copyright 2026 hajjbbee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hajjbbee/Pollinate-HE-Curriculum-sub001

/*
client.go - Ticketmaster Discovery API client

Queries the event search endpoint within a radius and date window, scoped to
a fixed allowlist of family-appropriate classifications, and maps results
into canonical event records.
*/

package ticketmaster

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

// ErrMissingCredential is returned when no API key is configured. The
// discovery engine treats it like any other adapter failure: the source
// contributes nothing for that week.
var ErrMissingCredential = errors.New("ticketmaster: api key not configured")

// maxQueryKeywords caps the number of theme keywords joined into the free-text
// query parameter.
const maxQueryKeywords = 3

// maxDescriptionLen bounds the description carried into canonical records.
const maxDescriptionLen = 500

// classificationAllowlist scopes every search to family-appropriate segments.
// Not user-configurable.
var classificationAllowlist = []string{
	"Arts & Theatre",
	"Family",
	"Music",
	"Miscellaneous",
}

// categoryBySegment maps upstream segment names onto the controlled category
// vocabulary. Unmapped segments default to education.
var categoryBySegment = map[string]string{
	"Arts & Theatre": models.CategoryArt,
	"Film":           models.CategoryArt,
	"Music":          models.CategoryMusic,
	"Family":         models.CategoryFamily,
	"Miscellaneous":  models.CategoryEducation,
}

// Client provides access to the Ticketmaster Discovery API.
type Client struct {
	baseURL    string
	apiKey     string
	pageSize   int
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a Discovery API client from provider configuration.
func NewClient(cfg config.TicketmasterConfig) *Client {
	return &Client{
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:   cfg.APIKey,
		pageSize: cfg.PageSize,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), 1),
	}
}

// SearchEvents queries the event search endpoint for the given week and
// location, returning canonical records tagged with the ticketed source.
func (c *Client) SearchEvents(ctx context.Context, q models.SearchQuery) ([]models.CanonicalEvent, error) {
	if c.apiKey == "" {
		return nil, ErrMissingCredential
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("ticketmaster rate limiter: %w", err)
	}

	resp, err := c.doRequest(ctx, "/events.json", c.buildQuery(q))
	if err != nil {
		return nil, fmt.Errorf("ticketmaster search request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("ticketmaster search returned status %d (failed to read body)", resp.StatusCode)
		}
		return nil, fmt.Errorf("ticketmaster search returned status %d: %s", resp.StatusCode, string(body))
	}

	var search searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		return nil, fmt.Errorf("failed to decode ticketmaster response: %w", err)
	}

	if search.Embedded == nil {
		return nil, nil
	}

	events := make([]models.CanonicalEvent, 0, len(search.Embedded.Events))
	for _, apiEv := range search.Embedded.Events {
		ev, ok := mapEvent(apiEv)
		if !ok {
			continue
		}
		events = append(events, ev)
	}

	return events, nil
}

// buildQuery assembles the search parameters for one weekly window.
func (c *Client) buildQuery(q models.SearchQuery) url.Values {
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("latlong", fmt.Sprintf("%f,%f", q.Latitude, q.Longitude))
	params.Set("radius", strconv.Itoa(q.RadiusKm))
	params.Set("unit", "km")
	params.Set("size", strconv.Itoa(c.pageSize))
	params.Set("sort", "date,asc")
	params.Set("classificationName", strings.Join(classificationAllowlist, ","))

	// Upstream treats endDateTime as inclusive; the discovery window is
	// half-open, so the end is pulled back one second.
	params.Set("startDateTime", q.WeekStart.UTC().Format("2006-01-02T15:04:05Z"))
	params.Set("endDateTime", q.WeekEnd.UTC().Add(-time.Second).Format("2006-01-02T15:04:05Z"))

	if kw := queryKeyword(q.Keywords); kw != "" {
		params.Set("keyword", kw)
	}

	return params
}

// queryKeyword OR-joins up to three keywords into the free-text parameter.
// Returns empty when no keywords were extracted, in which case the parameter
// is omitted entirely.
func queryKeyword(keywords []string) string {
	if len(keywords) == 0 {
		return ""
	}
	if len(keywords) > maxQueryKeywords {
		keywords = keywords[:maxQueryKeywords]
	}
	return strings.Join(keywords, " OR ")
}

// doRequest performs an HTTP GET against the Discovery API.
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values) (*http.Response, error) {
	fullURL := c.baseURL + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	return c.httpClient.Do(req)
}

// mapEvent converts one upstream event into a canonical record. Returns
// false when the record lacks the required name, venue, or start date.
func mapEvent(e apiEvent) (models.CanonicalEvent, bool) {
	if e.Name == "" || e.Embedded == nil || len(e.Embedded.Venues) == 0 {
		return models.CanonicalEvent{}, false
	}

	start, ok := parseEventTime(e.Dates.Start)
	if !ok {
		return models.CanonicalEvent{}, false
	}

	venue := e.Embedded.Venues[0]

	ev := models.CanonicalEvent{
		ExternalID:  e.ID,
		Source:      models.SourceTicketed,
		EventName:   e.Name,
		Description: truncate(pickDescription(e), maxDescriptionLen),
		Category:    mapCategory(e.Classifications),
		EventDate:   start,
		Location:    formatLocation(venue),
		Cost:        costString(e.PriceRanges),
	}

	if end, ok := parseEventTime(e.Dates.End); ok && !end.Before(start) {
		ev.EndDate = &end
	}

	if lat, lng, ok := parseCoordinates(venue.Location); ok {
		ev.Latitude = &lat
		ev.Longitude = &lng
	}

	return ev, true
}

func pickDescription(e apiEvent) string {
	if e.Info != "" {
		return e.Info
	}
	return e.Description
}

func parseEventTime(d apiDate) (time.Time, bool) {
	if d.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, d.DateTime); err == nil {
			return t, true
		}
	}
	if d.LocalDate != "" {
		if t, err := time.Parse("2006-01-02", d.LocalDate); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseCoordinates(loc apiLocation) (float64, float64, bool) {
	lat, err := strconv.ParseFloat(loc.Latitude, 64)
	if err != nil {
		return 0, 0, false
	}
	lng, err := strconv.ParseFloat(loc.Longitude, 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lng, true
}

// formatLocation builds the human-readable address from venue parts.
func formatLocation(v apiVenue) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{v.Name, v.Address.Line1, v.City.Name, v.State.StateCode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// costString derives the display cost: "FREE" for zero-priced events, the
// minimum ticket price when known, the literal "Paid" otherwise.
func costString(ranges []apiPriceRange) string {
	if len(ranges) == 0 {
		return "Paid"
	}

	min := ranges[0].Min
	for _, r := range ranges[1:] {
		if r.Min < min {
			min = r.Min
		}
	}

	if min == 0 {
		return "FREE"
	}
	if min == float64(int64(min)) {
		return fmt.Sprintf("$%d", int64(min))
	}
	return fmt.Sprintf("$%.2f", min)
}

// mapCategory resolves the controlled-vocabulary category from the primary
// classification. Theatre genres are split out from the broader arts segment.
func mapCategory(cls []classification) string {
	primary := pickPrimary(cls)
	if primary == nil {
		return models.CategoryEducation
	}

	if primary.Genre.Name == "Theatre" {
		return models.CategoryTheatre
	}
	if cat, ok := categoryBySegment[primary.Segment.Name]; ok {
		return cat
	}
	return models.CategoryEducation
}

func pickPrimary(cls []classification) *classification {
	for i := range cls {
		if cls[i].Primary {
			return &cls[i]
		}
	}
	if len(cls) > 0 {
		return &cls[0]
	}
	return nil
}

// truncate bounds a string to max runes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
