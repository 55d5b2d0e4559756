package track

import (
	"time"

	"github.com/tkrajina/gpxgo/gpx"
)

// FromGPX builds a track from a gpxgo document, flattening every gpx
// track's segments into one sequence. Null elevations map to absent,
// zero timestamps to the empty string, and empty segments are dropped.
func FromGPX(doc *gpx.GPX) *Track {
	var segments []Segment

	for _, trk := range doc.Tracks {
		for _, seg := range trk.Segments {
			points := make([]Point, 0, len(seg.Points))
			for _, gp := range seg.Points {
				p := Point{
					Latitude:  gp.Latitude,
					Longitude: gp.Longitude,
				}
				if gp.Elevation.NotNull() {
					e := gp.Elevation.Value()
					p.Elevation = &e
				}
				if !gp.Timestamp.IsZero() {
					p.Time = gp.Timestamp.Format(time.RFC3339)
				}
				points = append(points, p)
			}
			if len(points) > 0 {
				segments = append(segments, NewSegment(points))
			}
		}
	}

	return NewTrack(segments)
}
