// Pollinate - Family Curriculum Local Opportunity Discovery
// Copyright 2026 hajjbbee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hajjbbee/Pollinate-HE-Curriculum-sub001

// Package geo provides great-circle distance and drive-time estimation.
//
// Drive times are planning estimates derived from straight-line distance and
// a fixed assumed urban average speed. They are not routing-engine results:
// no road network, no traffic. The estimate can be significantly wrong for
// destinations that are close as the crow flies but not road-accessible.
// This is a documented limitation, not a bug.
package geo

import "math"

const (
	// earthRadiusKm is the mean Earth radius used by the haversine formula.
	earthRadiusKm = 6371.0

	// avgSpeedKmH is the assumed urban average driving speed.
	avgSpeedKmH = 50.0
)

// Distance calculates the great-circle distance between two points on Earth
// using the haversine formula. Returns distance in kilometers.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180.0
	lon1Rad := lon1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0
	lon2Rad := lon2 * math.Pi / 180.0

	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// EstimateDriveMinutes returns the estimated one-way drive time between two
// coordinates in whole minutes, rounded to nearest. Identical points yield 0.
func EstimateDriveMinutes(lat1, lon1, lat2, lon2 float64) int {
	distanceKm := Distance(lat1, lon1, lat2, lon2)
	hours := distanceKm / avgSpeedKmH
	return int(math.Round(hours * 60))
}
