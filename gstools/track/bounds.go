package track

import "math"

// Bounds represents track coordinate boundaries
type Bounds struct {
	MinLat, MinLng float64
	MaxLat, MaxLng float64
}

// Extend extends boundaries from given decimal degrees
func (b Bounds) Extend(inc float64) Bounds {
	b.MinLat -= inc
	b.MinLng -= inc
	b.MaxLat += inc
	b.MaxLng += inc
	return b
}

// Bounds returns the coordinate boundaries of the track, computed over
// every point of every segment. The second return value is false when the
// track has no points.
func (t *Track) Bounds() (Bounds, bool) {
	b := Bounds{}
	found := false
	for _, s := range t.segments {
		for _, p := range s.points {
			if !found {
				b = Bounds{
					MinLat: p.Latitude, MaxLat: p.Latitude,
					MinLng: p.Longitude, MaxLng: p.Longitude,
				}
				found = true
				continue
			}
			b.MinLat = math.Min(b.MinLat, p.Latitude)
			b.MaxLat = math.Max(b.MaxLat, p.Latitude)
			b.MinLng = math.Min(b.MinLng, p.Longitude)
			b.MaxLng = math.Max(b.MaxLng, p.Longitude)
		}
	}
	return b, found
}
