package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

const (
	// EarthRadiusMiles is the mean Earth radius used for all match distances
	EarthRadiusMiles = 3958.8

	// MaxCoveragePrecision is the finest geohash precision used for prefetch coverage
	MaxCoveragePrecision uint = 6
)

// haversine returns the great-circle distance for the given sphere radius.
// The intermediate term is clamped to [0, 1] so rounding never yields NaN.
func haversine(lat1, lng1, lat2, lng2, radius float64) float64 {
	phi1 := lat1 * math.Pi / 180.0
	phi2 := lat2 * math.Pi / 180.0
	dPhi := (lat2 - lat1) * math.Pi / 180.0
	dLambda := (lng2 - lng1) * math.Pi / 180.0

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	a = math.Max(0, math.Min(1, a))

	return 2 * radius * math.Asin(math.Sqrt(a))
}

// DistanceMiles returns the haversine distance in miles between two coordinates
func DistanceMiles(lat1, lng1, lat2, lng2 float64) float64 {
	return haversine(lat1, lng1, lat2, lng2, EarthRadiusMiles)
}

// ValidCoordinates reports whether lat/lng are finite and inside the WGS84 range
func ValidCoordinates(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// EncodeGeohash converts a coordinate to a geohash string
func EncodeGeohash(lat, lng float64, precision uint) string {
	return geohash.EncodeWithPrecision(lat, lng, precision)
}

// GeohashPrecisionForRadius returns the finest precision whose cell around the
// point is at least radiusMiles across in both directions, so the cell and its
// eight neighbours contain every point within radiusMiles.
func GeohashPrecisionForRadius(lat, lng, radiusMiles float64) uint {
	for p := MaxCoveragePrecision; p > 1; p-- {
		box := geohash.BoundingBox(geohash.EncodeWithPrecision(lat, lng, p))

		// cells narrow towards the poles, so measure width on the poleward edge
		edgeLat := box.MaxLat
		if math.Abs(box.MinLat) > math.Abs(box.MaxLat) {
			edgeLat = box.MinLat
		}

		height := DistanceMiles(box.MinLat, lng, box.MaxLat, lng)
		width := DistanceMiles(edgeLat, box.MinLng, edgeLat, box.MaxLng)
		if math.Min(height, width) >= radiusMiles {
			return p
		}
	}
	return 1
}

// GeohashCoverage returns the precision and the set of cells (centre plus
// neighbours) covering a circle of radiusMiles around the point. Invalid
// coordinates or a NaN radius cover nothing.
func GeohashCoverage(lat, lng, radiusMiles float64) (uint, []string) {
	if !ValidCoordinates(lat, lng) || math.IsNaN(radiusMiles) {
		return 0, nil
	}

	precision := GeohashPrecisionForRadius(lat, lng, radiusMiles)
	center := geohash.EncodeWithPrecision(lat, lng, precision)

	seen := map[string]struct{}{center: {}}
	cells := []string{center}
	for _, n := range geohash.Neighbors(center) {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		cells = append(cells, n)
	}
	return precision, cells
}
