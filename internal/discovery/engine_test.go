// Pollinate - Family Curriculum Local Opportunity Discovery
// Copyright 2026 hajjbbee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hajjbbee/Pollinate-HE-Curriculum-sub001

package discovery

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/config"
	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/models"
)

// stubAdapter returns canned events or an error, and records the query it
// received.
type stubAdapter struct {
	name    string
	events  []models.CanonicalEvent
	err     error
	gotQry  models.SearchQuery
	called  bool
}

func (s *stubAdapter) Name() string { return s.name }

func (s *stubAdapter) Fetch(_ context.Context, q models.SearchQuery) ([]models.CanonicalEvent, error) {
	s.called = true
	s.gotQry = q
	return s.events, s.err
}

func testDiscoveryConfig() config.DiscoveryConfig {
	return config.DiscoveryConfig{
		MaxEvents:       8,
		DefaultRadiusKm: 40,
		RunTimeout:      5 * time.Second,
	}
}

func testRequest() Request {
	return Request{
		FamilyID:  "fam-001",
		HasHome:   true,
		Latitude:  40.7128,
		Longitude: -74.0060,
		RadiusKm:  40,
		Theme:     "Ancient Rome",
		WeekStart: time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
	}
}

func makeEvents(source models.Source, n int) []models.CanonicalEvent {
	events := make([]models.CanonicalEvent, n)
	for i := range events {
		events[i] = models.CanonicalEvent{
			Source:    source,
			EventName: fmt.Sprintf("%s event %d", source, i),
			Location:  fmt.Sprintf("location %d", i),
			EventDate: time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
		}
	}
	return events
}

func TestDiscover_CapsAtEight(t *testing.T) {
	ticketed := &stubAdapter{name: "ticketed", events: makeEvents(models.SourceTicketed, 20)}
	places := &stubAdapter{name: "places", events: makeEvents(models.SourcePlaces, 20)}

	engine := NewEngine(ticketed, places, testDiscoveryConfig())
	out := engine.Discover(context.Background(), testRequest())

	if len(out) != 8 {
		t.Errorf("expected 8 events, got %d", len(out))
	}
}

func TestDiscover_TicketedBeforePlaces(t *testing.T) {
	ticketed := &stubAdapter{name: "ticketed", events: makeEvents(models.SourceTicketed, 3)}
	places := &stubAdapter{name: "places", events: makeEvents(models.SourcePlaces, 3)}

	engine := NewEngine(ticketed, places, testDiscoveryConfig())
	out := engine.Discover(context.Background(), testRequest())

	if len(out) != 6 {
		t.Fatalf("expected 6 events, got %d", len(out))
	}

	seenPlaces := false
	for i, ev := range out {
		if ev.Source == models.SourcePlaces {
			seenPlaces = true
		}
		if seenPlaces && ev.Source == models.SourceTicketed {
			t.Errorf("ticketed event at position %d after places events", i)
		}
	}
}

func TestDiscover_BothAdaptersFailing(t *testing.T) {
	ticketed := &stubAdapter{name: "ticketed", err: errors.New("credential missing")}
	places := &stubAdapter{name: "places", err: errors.New("credential missing")}

	engine := NewEngine(ticketed, places, testDiscoveryConfig())
	out := engine.Discover(context.Background(), testRequest())

	if len(out) != 0 {
		t.Errorf("expected empty result, got %d events", len(out))
	}
}

func TestDiscover_OneAdapterFailing(t *testing.T) {
	ticketed := &stubAdapter{name: "ticketed", err: errors.New("upstream 500")}
	places := &stubAdapter{name: "places", events: makeEvents(models.SourcePlaces, 2)}

	engine := NewEngine(ticketed, places, testDiscoveryConfig())
	out := engine.Discover(context.Background(), testRequest())

	if len(out) != 2 {
		t.Errorf("expected places contribution to survive, got %d events", len(out))
	}
}

func TestDiscover_DeduplicatesAcrossSources(t *testing.T) {
	shared := models.CanonicalEvent{
		Source:    models.SourceTicketed,
		EventName: "City Museum Tour",
		Location:  "City Museum",
		Cost:      "FREE",
	}
	duplicate := shared
	duplicate.Source = models.SourcePlaces
	duplicate.Cost = "Varies"

	ticketed := &stubAdapter{name: "ticketed", events: []models.CanonicalEvent{shared}}
	places := &stubAdapter{name: "places", events: []models.CanonicalEvent{duplicate}}

	engine := NewEngine(ticketed, places, testDiscoveryConfig())
	out := engine.Discover(context.Background(), testRequest())

	if len(out) != 1 {
		t.Fatalf("expected 1 event after dedupe, got %d", len(out))
	}
	if out[0].Source != models.SourceTicketed || out[0].Cost != "FREE" {
		t.Errorf("expected ticketed record to win, got %+v", out[0])
	}
}

func TestDiscover_AnnotatesSurvivors(t *testing.T) {
	lat, lng := 40.7357, -74.1724
	ticketed := &stubAdapter{name: "ticketed", events: []models.CanonicalEvent{
		{
			Source:    models.SourceTicketed,
			EventName: "Rome Engineering Workshop",
			Location:  "City Hall",
			Latitude:  &lat,
			Longitude: &lng,
		},
	}}
	places := &stubAdapter{name: "places"}

	engine := NewEngine(ticketed, places, testDiscoveryConfig())
	out := engine.Discover(context.Background(), testRequest())

	if len(out) != 1 {
		t.Fatalf("expected 1 event, got %d", len(out))
	}

	ev := out[0]
	if ev.FamilyID != "fam-001" {
		t.Errorf("expected family id attached, got %q", ev.FamilyID)
	}
	if ev.DriveMinutes == nil {
		t.Error("expected drive minutes on event with coordinates")
	}
	if ev.WhyItFits == "" {
		t.Error("expected rationale to be set")
	}
}

func TestDiscover_SharesQueryWithAdapters(t *testing.T) {
	ticketed := &stubAdapter{name: "ticketed"}
	places := &stubAdapter{name: "places"}

	engine := NewEngine(ticketed, places, testDiscoveryConfig())
	req := testRequest()
	engine.Discover(context.Background(), req)

	if !ticketed.called || !places.called {
		t.Fatal("expected both adapters to be invoked")
	}

	wantEnd := req.WeekStart.AddDate(0, 0, 7)
	for _, stub := range []*stubAdapter{ticketed, places} {
		q := stub.gotQry
		if !q.WeekStart.Equal(req.WeekStart) || !q.WeekEnd.Equal(wantEnd) {
			t.Errorf("%s: unexpected window %v - %v", stub.name, q.WeekStart, q.WeekEnd)
		}
		if len(q.Keywords) == 0 {
			t.Errorf("%s: expected extracted keywords", stub.name)
		}
		if q.RadiusKm != req.RadiusKm {
			t.Errorf("%s: expected radius %d, got %d", stub.name, req.RadiusKm, q.RadiusKm)
		}
	}
}

func TestDiscover_NilAdapterContributesNothing(t *testing.T) {
	places := &stubAdapter{name: "places", events: makeEvents(models.SourcePlaces, 2)}

	engine := NewEngine(nil, places, testDiscoveryConfig())
	out := engine.Discover(context.Background(), testRequest())

	if len(out) != 2 {
		t.Errorf("expected 2 events with nil ticketed adapter, got %d", len(out))
	}
}
