// Pollinate - Family Curriculum Local Opportunity Discovery
// Copyright 2026 hajjbbee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hajjbbee/Pollinate-HE-Curriculum-sub001

package discovery

import (
	"fmt"
	"strings"

	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/geo"
	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/keywords"
	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/models"
)

// annotate attaches the ownership and derived fields to one surviving event:
// the family identifier, the drive-time estimate when both endpoints have
// coordinates, and the relevance rationale.
func annotate(ev *models.CanonicalEvent, req Request) {
	ev.FamilyID = req.FamilyID

	if req.HasHome && ev.HasCoordinates() {
		minutes := geo.EstimateDriveMinutes(req.Latitude, req.Longitude, *ev.Latitude, *ev.Longitude)
		ev.DriveMinutes = &minutes
	}

	ev.WhyItFits = rationale(req.Theme, ev.EventName)
}

// rationale produces the one-line explanation connecting an event to the
// weekly theme. Theme keywords found as substrings of the event name (case
// insensitive) yield the keyword-match phrasing; otherwise the generic
// fallback. A coarse lexical heuristic: a relevant event whose name shares
// no literal keyword gets only the fallback.
func rationale(theme, eventName string) string {
	nameLower := strings.ToLower(eventName)

	var matched []string
	for _, kw := range keywords.Extract(theme) {
		if strings.Contains(nameLower, kw) {
			matched = append(matched, kw)
		}
	}

	if len(matched) > 0 {
		return fmt.Sprintf("Connects to your %q theme through %s", theme, strings.Join(matched, ", "))
	}
	return fmt.Sprintf("Enriches your learning about %s", theme)
}
