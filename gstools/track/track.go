// Package track holds the in-memory model of a gps track (points grouped
// into segments) and the geometry computations that derive statistics
// from it. Everything is recomputed on demand from the immutable point
// sequences, there is no caching.
package track

// Track is the full recorded path, composed of segments in recording
// order. A track is built once by a parse and read-only afterwards.
type Track struct {
	segments []Segment
}

// Stats track statistics
type Stats struct {
	Segments int
	Points   int
	Distance float64
	Ascent   float64
	Descent  float64
}

// NewTrack creates a track from the given segments. The track takes
// ownership of the slice.
func NewTrack(segments []Segment) *Track {
	return &Track{segments: segments}
}

// Segments returns the segments of the track in recording order.
func (t *Track) Segments() []Segment {
	return t.segments
}

// SegmentCount returns the number of segments in the track.
func (t *Track) SegmentCount() int {
	return len(t.segments)
}

// PointCount returns the number of points across all segments.
func (t *Track) PointCount() int {
	var n int
	for _, s := range t.segments {
		n += len(s.points)
	}
	return n
}

// TotalDistance returns the distance in meters summed over all segments.
func (t *Track) TotalDistance() float64 {
	var total float64
	for _, s := range t.segments {
		total += s.TotalDistance()
	}
	return total
}

// TotalAscentDescent returns the cumulative elevation gain and loss in
// meters summed over all segments.
func (t *Track) TotalAscentDescent() (float64, float64) {
	var ascent float64
	var descent float64
	for _, s := range t.segments {
		up, down := s.TotalAscentDescent()
		ascent += up
		descent += down
	}
	return ascent, descent
}

// Stats retrieves statistics from the track
func (t *Track) Stats() Stats {
	ascent, descent := t.TotalAscentDescent()
	return Stats{
		Segments: t.SegmentCount(),
		Points:   t.PointCount(),
		Distance: t.TotalDistance(),
		Ascent:   ascent,
		Descent:  descent,
	}
}
