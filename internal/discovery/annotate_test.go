// Pollinate - Family Curriculum Local Opportunity Discovery
// Copyright 2026 hajjbbee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hajjbbee/Pollinate-HE-Curriculum-sub001

package discovery

import (
	"strings"
	"testing"

	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/models"
)

func TestRationale(t *testing.T) {
	t.Run("keyword match phrasing", func(t *testing.T) {
		got := rationale("Ancient Rome", "Rome Engineering Workshop")
		if !strings.HasPrefix(got, `Connects to your "Ancient Rome" theme through `) {
			t.Errorf("expected keyword-match phrasing, got %q", got)
		}
		if !strings.Contains(got, "rome") {
			t.Errorf("expected matched keyword in rationale, got %q", got)
		}
	})

	t.Run("generic fallback", func(t *testing.T) {
		got := rationale("Ancient Rome", "Pottery Class")
		if got != "Enriches your learning about Ancient Rome" {
			t.Errorf("expected generic fallback, got %q", got)
		}
	})

	t.Run("multiple matches comma-joined", func(t *testing.T) {
		got := rationale("Ancient Rome", "Ancient Rome Day")
		if !strings.Contains(got, "ancient, rome") {
			t.Errorf("expected comma-joined matches, got %q", got)
		}
	})
}

func TestAnnotate_DriveMinutes(t *testing.T) {
	req := Request{
		FamilyID:  "fam-001",
		HasHome:   true,
		Latitude:  40.7128,
		Longitude: -74.0060,
		Theme:     "Ancient Rome",
	}

	t.Run("attached when both coordinates present", func(t *testing.T) {
		lat, lng := 40.7357, -74.1724 // Newark, ~15km away
		ev := models.CanonicalEvent{
			EventName: "Museum Day",
			Location:  "Newark",
			Latitude:  &lat,
			Longitude: &lng,
		}

		annotate(&ev, req)
		if ev.DriveMinutes == nil {
			t.Fatal("expected drive minutes to be set")
		}
		if *ev.DriveMinutes <= 0 || *ev.DriveMinutes > 60 {
			t.Errorf("implausible drive minutes: %d", *ev.DriveMinutes)
		}
		if ev.FamilyID != "fam-001" {
			t.Errorf("expected family id attached, got %q", ev.FamilyID)
		}
	})

	t.Run("absent when event coordinates missing", func(t *testing.T) {
		ev := models.CanonicalEvent{EventName: "Museum Day", Location: "Newark"}

		annotate(&ev, req)
		if ev.DriveMinutes != nil {
			t.Errorf("expected drive minutes to be absent, got %d", *ev.DriveMinutes)
		}
	})

	t.Run("absent when home coordinates unset", func(t *testing.T) {
		lat, lng := 40.7357, -74.1724
		ev := models.CanonicalEvent{
			EventName: "Museum Day",
			Location:  "Newark",
			Latitude:  &lat,
			Longitude: &lng,
		}

		annotate(&ev, Request{FamilyID: "fam-001", Theme: "Ancient Rome"})
		if ev.DriveMinutes != nil {
			t.Errorf("expected drive minutes to be absent without home coordinates, got %d", *ev.DriveMinutes)
		}
	})

	t.Run("attached for a home at the origin", func(t *testing.T) {
		lat, lng := 0.5, 0.5
		ev := models.CanonicalEvent{
			EventName: "Museum Day",
			Location:  "Gulf Coast",
			Latitude:  &lat,
			Longitude: &lng,
		}

		origin := Request{FamilyID: "fam-001", HasHome: true, Theme: "Ancient Rome"}
		annotate(&ev, origin)
		if ev.DriveMinutes == nil {
			t.Fatal("a home at (0, 0) is a real location and should get drive minutes")
		}
	})
}
