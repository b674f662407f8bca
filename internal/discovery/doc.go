// Pollinate - Family Curriculum Local Opportunity Discovery
// Copyright 2026 hajjbbee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hajjbbee/Pollinate-HE-Curriculum-sub001

// Package discovery implements the weekly local-opportunity pipeline: it
// fans out to the ticketed-events and places providers concurrently, merges
// and deduplicates their contributions (ticketed first, first-seen wins),
// caps the result, and annotates each survivor with its owning family, a
// drive-time estimate, and a relevance rationale tied to the week's theme.
//
// Upstream failures never escape the engine. A provider that is down,
// misconfigured, or unresponsive contributes nothing for that week; the
// caller sees a shorter event list, not an error.
package discovery
