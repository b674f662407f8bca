// Pollinate - Family Curriculum Local Opportunity Discovery
// Copyright 2026 hajjbbee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hajjbbee/Pollinate-HE-Curriculum-sub001

package discovery

import (
	"reflect"
	"testing"

	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/models"
)

func TestDeduplicate(t *testing.T) {
	t.Run("first wins with case-differing key", func(t *testing.T) {
		input := []models.CanonicalEvent{
			{EventName: "X", Location: "Y", Cost: "FREE"},
			{EventName: "X", Location: "y", Cost: "$20", Description: "richer data"},
		}

		out := Deduplicate(input)
		if len(out) != 1 {
			t.Fatalf("expected 1 event, got %d", len(out))
		}
		if out[0].Cost != "FREE" {
			t.Errorf("expected first-seen record to survive, got cost %q", out[0].Cost)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		input := []models.CanonicalEvent{
			{EventName: "A", Location: "L1"},
			{EventName: "B", Location: "L2"},
			{EventName: "a", Location: "l1"},
		}

		once := Deduplicate(input)
		twice := Deduplicate(once)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("second pass changed output: %v vs %v", once, twice)
		}
	})

	t.Run("order preserved", func(t *testing.T) {
		input := []models.CanonicalEvent{
			{EventName: "C", Location: "L"},
			{EventName: "A", Location: "L"},
			{EventName: "B", Location: "L"},
		}

		out := Deduplicate(input)
		if len(out) != 3 {
			t.Fatalf("expected 3 events, got %d", len(out))
		}
		for i, want := range []string{"C", "A", "B"} {
			if out[i].EventName != want {
				t.Errorf("position %d: expected %q, got %q", i, want, out[i].EventName)
			}
		}
	})

	t.Run("formatting variants not merged", func(t *testing.T) {
		// The key is an exact case-insensitive match; address formatting
		// differences survive as distinct events. Pinned behavior, not a gap
		// to silently fix.
		input := []models.CanonicalEvent{
			{EventName: "X", Location: "100 Main St"},
			{EventName: "X", Location: "100 Main Street"},
		}

		out := Deduplicate(input)
		if len(out) != 2 {
			t.Errorf("expected formatting variants to remain distinct, got %d events", len(out))
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if out := Deduplicate(nil); len(out) != 0 {
			t.Errorf("expected empty output, got %v", out)
		}
	})
}
