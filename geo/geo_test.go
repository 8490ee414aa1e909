package geo_test

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/antcolony/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHaversine_KnownDistances checks a few well-known city pairs (km).
func TestHaversine_KnownDistances(t *testing.T) {
	var (
		berlin = geo.Point{Lat: 52.5200, Lon: 13.4050}
		paris  = geo.Point{Lat: 48.8566, Lon: 2.3522}
		london = geo.Point{Lat: 51.5074, Lon: -0.1278}
	)

	assert.InDelta(t, 878, geo.Haversine(berlin, paris), 5)
	assert.InDelta(t, 344, geo.Haversine(paris, london), 5)
	assert.InDelta(t, 932, geo.Haversine(berlin, london), 5)
}

// TestHaversine_Properties: symmetric, zero on identity, bounded by half the
// circumference.
func TestHaversine_Properties(t *testing.T) {
	a := geo.Point{Lat: 10, Lon: 20}
	b := geo.Point{Lat: -33.9, Lon: 151.2}

	require.Equal(t, geo.Haversine(a, b), geo.Haversine(b, a))
	require.Zero(t, geo.Haversine(a, a))

	antipode := geo.Point{Lat: -10, Lon: -160}
	require.InDelta(t, math.Pi*geo.EarthRadiusKm, geo.Haversine(a, antipode), 1e-6)
}

// TestPoint_Validate rejects out-of-range and non-finite coordinates.
func TestPoint_Validate(t *testing.T) {
	require.NoError(t, geo.Point{Lat: 90, Lon: -180}.Validate())

	for _, p := range []geo.Point{
		{Lat: 91, Lon: 0},
		{Lat: 0, Lon: 180.5},
		{Lat: math.NaN(), Lon: 0},
		{Lat: 0, Lon: math.Inf(-1)},
	} {
		require.ErrorIs(t, p.Validate(), geo.ErrInvalidPoint, p.String())
	}
}

// TestPoint_KeyIsExact: points closer than the display precision get
// distinct keys, and every key parses back to its coordinates.
func TestPoint_KeyIsExact(t *testing.T) {
	a := geo.Point{Lat: 52.5200001, Lon: 13.405}
	b := geo.Point{Lat: 52.5200002, Lon: 13.405}
	require.Equal(t, a.String(), b.String())
	require.NotEqual(t, a.Key(), b.Key())

	for _, p := range []geo.Point{a, b, {Lat: -0.1, Lon: 1e-9}, {Lat: 90, Lon: -180}} {
		parts := strings.Split(p.Key(), ",")
		require.Len(t, parts, 2)
		lat, err := strconv.ParseFloat(parts[0], 64)
		require.NoError(t, err)
		lon, err := strconv.ParseFloat(parts[1], 64)
		require.NoError(t, err)
		require.Equal(t, p, geo.Point{Lat: lat, Lon: lon})
	}
}
