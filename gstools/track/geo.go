package track

import (
	"math"
)

// earthRadiusM is the mean Earth radius in meters, shared by the distance
// and proximity computations.
const earthRadiusM = 6371000.0

// Distance returns the great-circle distance in meters between two
// positions, computed with the haversine formula. Elevation plays no part.
func Distance(a, b LatLng) float64 {
	lat1 := radians(a.Lat())
	lat2 := radians(b.Lat())
	dLat := radians(b.Lat() - a.Lat())
	dLng := radians(b.Lng() - a.Lng())

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusM * c
}

// ElevationDelta classifies the elevation change between two consecutive
// points. A positive change counts as ascent, a negative change as descent
// (returned as a positive magnitude). A pair where either point carries no
// elevation contributes to neither.
func ElevationDelta(a, b Point) (ascent, descent float64) {
	if a.Elevation == nil || b.Elevation == nil {
		return 0, 0
	}

	d := *b.Elevation - *a.Elevation
	switch {
	case d > 0:
		return d, 0
	case d < 0:
		return 0, -d
	}
	return 0, 0
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
