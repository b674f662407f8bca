// Pollinate - Family Curriculum Local Opportunity Discovery
// Copyright 2026 hajjbbee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hajjbbee/Pollinate-HE-Curriculum-sub001

package ticketmaster

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/config"
	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/models"
)

func testConfig(baseURL string) config.TicketmasterConfig {
	return config.TicketmasterConfig{
		Enabled:   true,
		BaseURL:   baseURL,
		APIKey:    "test-key",
		Timeout:   5 * time.Second,
		RateLimit: 100,
		PageSize:  20,
	}
}

func testQuery() models.SearchQuery {
	start := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	return models.SearchQuery{
		Latitude:  40.7128,
		Longitude: -74.0060,
		RadiusKm:  40,
		Theme:     "Ancient Rome",
		Keywords:  []string{"ancient", "rome"},
		WeekStart: start,
		WeekEnd:   start.AddDate(0, 0, 7),
	}
}

const sampleResponse = `{
  "_embedded": {
    "events": [
      {
        "id": "evt-1",
        "name": "Roman History Exhibit",
        "info": "An exhibit about ancient Rome.",
        "dates": {
          "start": {"dateTime": "2026-09-09T18:00:00Z"},
          "end": {"dateTime": "2026-09-09T20:00:00Z"}
        },
        "priceRanges": [{"type": "standard", "currency": "USD", "min": 12.5, "max": 30}],
        "classifications": [{"primary": true, "segment": {"name": "Arts & Theatre"}, "genre": {"name": "Fine Art"}}],
        "_embedded": {
          "venues": [
            {
              "name": "City Museum",
              "address": {"line1": "100 Main St"},
              "city": {"name": "Springfield"},
              "state": {"stateCode": "NJ"},
              "location": {"latitude": "40.72", "longitude": "-74.01"}
            }
          ]
        }
      }
    ]
  },
  "page": {"size": 20, "totalElements": 1}
}`

func TestSearchEvents(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	events, err := client.SearchEvents(context.Background(), testQuery())
	if err != nil {
		t.Fatalf("SearchEvents failed: %v", err)
	}

	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	ev := events[0]
	if ev.Source != models.SourceTicketed {
		t.Errorf("expected ticketed source, got %q", ev.Source)
	}
	if ev.EventName != "Roman History Exhibit" {
		t.Errorf("unexpected event name: %q", ev.EventName)
	}
	if ev.Location != "City Museum, 100 Main St, Springfield, NJ" {
		t.Errorf("unexpected location: %q", ev.Location)
	}
	if ev.Category != models.CategoryArt {
		t.Errorf("expected art category, got %q", ev.Category)
	}
	if ev.Cost != "$12.50" {
		t.Errorf("expected $12.50, got %q", ev.Cost)
	}
	if !ev.HasCoordinates() {
		t.Error("expected coordinates to be set")
	}
	if ev.EndDate == nil {
		t.Error("expected end date to be set")
	}

	// Query parameters
	if gotQuery["keyword"] != "ancient OR rome" {
		t.Errorf("expected OR-joined keyword, got %q", gotQuery["keyword"])
	}
	if gotQuery["unit"] != "km" || gotQuery["radius"] != "40" {
		t.Errorf("unexpected radius params: %v", gotQuery)
	}
	if gotQuery["startDateTime"] != "2026-09-07T00:00:00Z" {
		t.Errorf("unexpected startDateTime: %q", gotQuery["startDateTime"])
	}
	if gotQuery["endDateTime"] != "2026-09-13T23:59:59Z" {
		t.Errorf("unexpected endDateTime: %q", gotQuery["endDateTime"])
	}
	if !strings.Contains(gotQuery["classificationName"], "Family") {
		t.Errorf("expected classification allowlist, got %q", gotQuery["classificationName"])
	}
}

func TestSearchEvents_MissingCredential(t *testing.T) {
	cfg := testConfig("https://example.invalid")
	cfg.APIKey = ""

	client := NewClient(cfg)
	_, err := client.SearchEvents(context.Background(), testQuery())
	if !errors.Is(err, ErrMissingCredential) {
		t.Errorf("expected ErrMissingCredential, got %v", err)
	}
}

func TestSearchEvents_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	_, err := client.SearchEvents(context.Background(), testQuery())
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("expected status in error, got: %v", err)
	}
}

func TestSearchEvents_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"page": {"size": 20, "totalElements": 0}}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	events, err := client.SearchEvents(context.Background(), testQuery())
	if err != nil {
		t.Fatalf("SearchEvents failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
}

func TestQueryKeyword(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		want     string
	}{
		{"none omitted", nil, ""},
		{"single", []string{"rome"}, "rome"},
		{"pair joined", []string{"ancient", "rome"}, "ancient OR rome"},
		{"capped at three", []string{"a1", "b2", "c3", "d4", "e5"}, "a1 OR b2 OR c3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := queryKeyword(tt.keywords); got != tt.want {
				t.Errorf("queryKeyword(%v) = %q, want %q", tt.keywords, got, tt.want)
			}
		})
	}
}

func TestCostString(t *testing.T) {
	tests := []struct {
		name   string
		ranges []apiPriceRange
		want   string
	}{
		{"no ranges", nil, "Paid"},
		{"free", []apiPriceRange{{Min: 0, Max: 0}}, "FREE"},
		{"whole dollars", []apiPriceRange{{Min: 10, Max: 40}}, "$10"},
		{"cents", []apiPriceRange{{Min: 12.5, Max: 30}}, "$12.50"},
		{"minimum across ranges", []apiPriceRange{{Min: 25}, {Min: 15}}, "$15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := costString(tt.ranges); got != tt.want {
				t.Errorf("costString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMapCategory(t *testing.T) {
	tests := []struct {
		name string
		cls  []classification
		want string
	}{
		{"no classifications", nil, models.CategoryEducation},
		{"unmapped segment", []classification{{Primary: true, Segment: namedEntry{Name: "Sports"}}}, models.CategoryEducation},
		{"music", []classification{{Primary: true, Segment: namedEntry{Name: "Music"}}}, models.CategoryMusic},
		{"family", []classification{{Primary: true, Segment: namedEntry{Name: "Family"}}}, models.CategoryFamily},
		{"theatre genre", []classification{{Primary: true, Segment: namedEntry{Name: "Arts & Theatre"}, Genre: namedEntry{Name: "Theatre"}}}, models.CategoryTheatre},
		{"falls back to first classification", []classification{{Segment: namedEntry{Name: "Music"}}}, models.CategoryMusic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapCategory(tt.cls); got != tt.want {
				t.Errorf("mapCategory() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMapEvent_SkipsIncompleteRecords(t *testing.T) {
	// No venue means no location, which canonical records require.
	_, ok := mapEvent(apiEvent{
		Name:  "Orphan Event",
		Dates: apiDates{Start: apiDate{DateTime: "2026-09-09T18:00:00Z"}},
	})
	if ok {
		t.Error("expected event without venue to be skipped")
	}

	// Missing start date is also skipped.
	_, ok = mapEvent(apiEvent{
		Name:     "Dateless Event",
		Embedded: &eventEmbedded{Venues: []apiVenue{{Name: "Venue"}}},
	})
	if ok {
		t.Error("expected event without start date to be skipped")
	}
}

func TestMapEvent_TruncatesDescription(t *testing.T) {
	long := strings.Repeat("x", 600)
	ev, ok := mapEvent(apiEvent{
		Name:     "Long Event",
		Info:     long,
		Dates:    apiDates{Start: apiDate{DateTime: "2026-09-09T18:00:00Z"}},
		Embedded: &eventEmbedded{Venues: []apiVenue{{Name: "Venue"}}},
	})
	if !ok {
		t.Fatal("expected event to map")
	}
	if len(ev.Description) != maxDescriptionLen {
		t.Errorf("expected description of %d chars, got %d", maxDescriptionLen, len(ev.Description))
	}
}
