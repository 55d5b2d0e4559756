package track_test

import (
	"testing"

	"gpxstat-tools/gstools/track"

	"github.com/stretchr/testify/require"
)

func TestExtendBounds(t *testing.T) {
	require := require.New(t)
	bounds := track.Bounds{
		MinLat: 48.1344333,
		MaxLat: 48.2714123,
		MinLng: -121.8064235,
		MaxLng: -121.6771830,
	}

	newBounds := bounds.Extend(0.01)

	require.Equal(48.1244333, newBounds.MinLat)
	require.Equal(48.2814123, newBounds.MaxLat)
	require.Equal(-121.8164235, newBounds.MinLng)
	require.Equal(-121.6671830, newBounds.MaxLng)
}

func TestTrackBounds(t *testing.T) {
	require := require.New(t)

	tr := track.NewTrack([]track.Segment{
		track.NewSegment([]track.Point{
			pt(47.58358925699506, -121.95062398910524),
			pt(47.58878498470957, -121.94446563720703),
		}),
		track.NewSegment([]track.Point{
			pt(47.58622336725498, -121.9381356239319),
			pt(47.59581793370288, -121.93571090698244),
		}),
	})

	b, ok := tr.Bounds()

	require.True(ok)
	require.Equal(47.58358925699506, b.MinLat)
	require.Equal(47.59581793370288, b.MaxLat)
	require.Equal(-121.95062398910524, b.MinLng)
	require.Equal(-121.93571090698244, b.MaxLng)
}
