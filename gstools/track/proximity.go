package track

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// NearestPoint returns the recorded point closest to the given position,
// along with its index in the segment.
func (s Segment) NearestPoint(pt LatLng) (Point, int) {
	line := s.polyline()
	p := s2.PointFromLatLng(toS2LatLng(pt))

	projected, next := line.Project(p)
	l := len(s.points)

	if next >= l {
		return s.points[l-1], l - 1
	}

	closest := next - 1
	vertices := *line
	if projected.Distance(vertices[next]) < projected.Distance(vertices[next-1]) {
		closest = next
	}

	return s.points[closest], closest
}

// DistanceFrom returns the shortest distance in meters from the given
// position to the segment's polyline.
func (s Segment) DistanceFrom(pt LatLng) float64 {
	ll := toS2LatLng(pt)
	p := s2.PointFromLatLng(ll)

	projected, _ := s.polyline().Project(p)
	d := ll.Distance(s2.LatLngFromPoint(projected))

	return d.Radians() * earthRadiusM
}

// NearestPoint returns the recorded point closest to the given position
// across all segments. It reports false for a track with no points.
func (t *Track) NearestPoint(pt LatLng) (Point, bool) {
	var best Point
	bestDistance := math.Inf(1)
	found := false

	for _, s := range t.segments {
		if d := s.DistanceFrom(pt); d < bestDistance {
			best, _ = s.NearestPoint(pt)
			bestDistance = d
			found = true
		}
	}

	return best, found
}

// DistanceFrom returns the shortest distance in meters from the given
// position to any segment of the track. It reports false for a track
// with no points.
func (t *Track) DistanceFrom(pt LatLng) (float64, bool) {
	bestDistance := math.Inf(1)
	found := false

	for _, s := range t.segments {
		if d := s.DistanceFrom(pt); d < bestDistance {
			bestDistance = d
			found = true
		}
	}

	return bestDistance, found
}

// Polylines are rebuilt per call so the aggregates stay free of any
// cached state.
func (s Segment) polyline() *s2.Polyline {
	lls := make([]s2.LatLng, len(s.points))
	for i, p := range s.points {
		lls[i] = toS2LatLng(p)
	}
	return s2.PolylineFromLatLngs(lls)
}

func toS2LatLng(p LatLng) s2.LatLng {
	return s2.LatLng{
		Lat: s1.Angle(p.Lat()) * s1.Degree,
		Lng: s1.Angle(p.Lng()) * s1.Degree,
	}
}
