package track

// Segment is a maximal contiguous run of points recorded without an
// intentional break. It owns its points exclusively.
type Segment struct {
	points []Point
}

// NewSegment creates a segment from the given points. The segment takes
// ownership of the slice.
func NewSegment(points []Point) Segment {
	return Segment{points: points}
}

// Points returns the points of the segment in recording order.
func (s Segment) Points() []Point {
	return s.points
}

// TotalDistance returns the distance in meters along the segment, summed
// over consecutive point pairs. A segment with fewer than two points has
// distance zero.
func (s Segment) TotalDistance() float64 {
	var total float64
	for i := 1; i < len(s.points); i++ {
		total += Distance(s.points[i-1], s.points[i])
	}
	return total
}

// TotalAscentDescent returns the cumulative elevation gain and loss in
// meters over consecutive point pairs. Pairs with a missing elevation are
// skipped.
func (s Segment) TotalAscentDescent() (float64, float64) {
	var ascent float64
	var descent float64
	for i := 1; i < len(s.points); i++ {
		up, down := ElevationDelta(s.points[i-1], s.points[i])
		ascent += up
		descent += down
	}
	return ascent, descent
}
