// Pollinate - Family Curriculum Local Opportunity Discovery
// Copyright 2026 hajjbbee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hajjbbee/Pollinate-HE-Curriculum-sub001

// Package keywords turns a free-text weekly theme into search terms for the
// upstream event and place providers.
package keywords

import "strings"

// MaxKeywords bounds the number of terms extracted from a theme.
const MaxKeywords = 5

// minTokenLen is the exclusive lower bound on kept token length; tokens of
// this length or shorter are discarded.
const minTokenLen = 3

// stopWords are discarded regardless of length.
var stopWords = map[string]struct{}{
	"the": {},
	"and": {},
	"of":  {},
	"in":  {},
	"to":  {},
	"a":   {},
	"an":  {},
}

// Extract returns up to MaxKeywords lowercase search terms from a theme
// string, preserving original token order. Tokens of length <= 3 and stop
// words are discarded. Deterministic; empty input yields an empty result.
func Extract(theme string) []string {
	fields := strings.Fields(theme)
	if len(fields) == 0 {
		return nil
	}

	keywords := make([]string, 0, MaxKeywords)
	for _, token := range fields {
		token = strings.ToLower(token)
		if len(token) <= minTokenLen {
			continue
		}
		if _, stop := stopWords[token]; stop {
			continue
		}
		keywords = append(keywords, token)
		if len(keywords) == MaxKeywords {
			break
		}
	}

	return keywords
}
