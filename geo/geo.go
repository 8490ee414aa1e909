// SPDX-License-Identifier: MIT

// Package geo provides great-circle distances for latitude/longitude points.
//
// Haversine matches the aco.DistanceFunc shape, so a set of cities can be
// handed to the colony directly.
package geo

import (
	"fmt"
	"math"
	"strconv"
)

// EarthRadiusKm is the mean Earth radius used by Haversine.
const EarthRadiusKm = 6371.0

// Point is a position in decimal degrees.
type Point struct {
	Lat float64 `toml:"lat" json:"lat"`
	Lon float64 `toml:"lon" json:"lon"`
}

// String renders the point as "lat,lon" with six decimals.
func (p Point) String() string {
	return fmt.Sprintf("%.6f,%.6f", p.Lat, p.Lon)
}

// Key renders the point with the shortest decimal form that parses back to
// the same coordinates, so distinct points never share a key.
func (p Point) Key() string {
	return strconv.FormatFloat(p.Lat, 'g', -1, 64) + "," + strconv.FormatFloat(p.Lon, 'g', -1, 64)
}

// Validate reports ErrInvalidPoint for NaN/Inf coordinates or values
// outside [-90,90] × [-180,180].
func (p Point) Validate() error {
	if !(p.Lat >= -90 && p.Lat <= 90) {
		return fmt.Errorf("latitude %g: %w", p.Lat, ErrInvalidPoint)
	}
	if !(p.Lon >= -180 && p.Lon <= 180) {
		return fmt.Errorf("longitude %g: %w", p.Lon, ErrInvalidPoint)
	}

	return nil
}

// Haversine returns the great-circle distance between a and b in kilometres.
// The result is symmetric, non-negative and zero for identical points.
//
// Complexity: O(1).
func Haversine(a, b Point) float64 {
	const rad = math.Pi / 180

	var (
		phi1 = a.Lat * rad
		phi2 = b.Lat * rad
		dPhi = (b.Lat - a.Lat) * rad
		dLam = (b.Lon - a.Lon) * rad
	)
	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLam/2)*math.Sin(dLam/2)
	// Rounding can push h a hair past 1 for antipodal points.
	h = min(max(h, 0), 1)

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}
