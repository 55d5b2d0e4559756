package track_test

import (
	"testing"

	"gpxstat-tools/gstools/track"

	"github.com/stretchr/testify/require"
)

func TestTrackTotals(t *testing.T) {
	require := require.New(t)

	tr := track.NewTrack([]track.Segment{
		track.NewSegment([]track.Point{
			{Latitude: 0, Longitude: 0, Elevation: ele(100)},
			{Latitude: 0, Longitude: 0.001, Elevation: ele(110)},
		}),
		track.NewSegment([]track.Point{
			{Latitude: 0, Longitude: 0.001, Elevation: ele(110)},
			{Latitude: 0, Longitude: 0.002, Elevation: ele(105)},
		}),
	})

	require.Equal(2, tr.SegmentCount())
	require.Equal(4, tr.PointCount())

	ascent, descent := tr.TotalAscentDescent()
	require.Equal(10.0, ascent)
	require.Equal(5.0, descent)
	require.InDelta(222.39, tr.TotalDistance(), 0.01)
}

func TestTrackStats(t *testing.T) {
	require := require.New(t)

	tr := track.NewTrack([]track.Segment{
		track.NewSegment([]track.Point{
			{Latitude: 0, Longitude: 0, Elevation: ele(100)},
			{Latitude: 0, Longitude: 0.001, Elevation: ele(120)},
			{Latitude: 0, Longitude: 0.002, Elevation: ele(110)},
		}),
	})

	stats := tr.Stats()

	require.Equal(1, stats.Segments)
	require.Equal(3, stats.Points)
	require.Equal(20.0, stats.Ascent)
	require.Equal(10.0, stats.Descent)
	require.InDelta(222.39, stats.Distance, 0.01)
}

func TestEmptyTrack(t *testing.T) {
	require := require.New(t)

	tr := track.NewTrack(nil)

	require.Equal(0, tr.SegmentCount())
	require.Equal(0, tr.PointCount())
	require.Equal(0.0, tr.TotalDistance())

	ascent, descent := tr.TotalAscentDescent()
	require.Equal(0.0, ascent)
	require.Equal(0.0, descent)

	_, ok := tr.Bounds()
	require.False(ok)

	_, ok = tr.NearestPoint(pt(0, 0))
	require.False(ok)

	_, ok = tr.DistanceFrom(pt(0, 0))
	require.False(ok)
}
