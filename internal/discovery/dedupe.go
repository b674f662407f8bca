// Pollinate - Family Curriculum Local Opportunity Discovery
// Copyright 2026 hajjbbee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hajjbbee/Pollinate-HE-Curriculum-sub001

package discovery

import (
	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/models"
)

// Deduplicate removes events sharing a dedupe key in a single pass,
// preserving first-seen order. First-wins: a later record never replaces an
// earlier one, even when the later record carries richer data.
//
// The key is an exact case-insensitive match on name plus location, so
// trivially different formattings of the same address survive as distinct
// events.
func Deduplicate(events []models.CanonicalEvent) []models.CanonicalEvent {
	seen := make(map[string]struct{}, len(events))
	out := make([]models.CanonicalEvent, 0, len(events))

	for _, ev := range events {
		key := ev.DedupeKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, ev)
	}

	return out
}
