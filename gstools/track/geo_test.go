package track_test

import (
	"testing"

	"gpxstat-tools/gstools/track"

	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	require := require.New(t)

	tests := map[string]struct {
		a, b  track.Point
		want  float64
		delta float64
	}{
		"identical":        {a: pt(47.5836, -121.9506), b: pt(47.5836, -121.9506), want: 0, delta: 0},
		"equator_lon_step": {a: pt(0, 0), b: pt(0, 0.001), want: 111.19, delta: 0.01},
		"mid_latitude":     {a: pt(47.5836, -121.9506), b: pt(47.5888, -121.9445), want: 737.31, delta: 0.01},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			require.InDelta(tc.want, track.Distance(tc.a, tc.b), tc.delta)
		})
	}
}

func TestDistanceEquatorStepMagnitude(t *testing.T) {
	require := require.New(t)

	d := track.Distance(pt(0, 0), pt(0, 0.001))

	require.Greater(d, 100.0)
	require.Less(d, 120.0)
}

func TestDistanceSymmetry(t *testing.T) {
	require := require.New(t)

	a := pt(47.5836, -121.9506)
	b := pt(47.5888, -121.9445)

	require.Equal(track.Distance(a, b), track.Distance(b, a))
}

func TestElevationDelta(t *testing.T) {
	require := require.New(t)

	tests := map[string]struct {
		a, b        *float64
		wantAscent  float64
		wantDescent float64
	}{
		"up":             {a: ele(100), b: ele(120), wantAscent: 20, wantDescent: 0},
		"down":           {a: ele(120), b: ele(110), wantAscent: 0, wantDescent: 10},
		"flat":           {a: ele(100), b: ele(100), wantAscent: 0, wantDescent: 0},
		"missing_first":  {a: nil, b: ele(130), wantAscent: 0, wantDescent: 0},
		"missing_second": {a: ele(100), b: nil, wantAscent: 0, wantDescent: 0},
		"missing_both":   {a: nil, b: nil, wantAscent: 0, wantDescent: 0},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ascent, descent := track.ElevationDelta(
				track.Point{Elevation: tc.a},
				track.Point{Elevation: tc.b},
			)
			require.Equal(tc.wantAscent, ascent)
			require.Equal(tc.wantDescent, descent)
		})
	}
}

func pt(lat, lng float64) track.Point {
	return track.Point{Latitude: lat, Longitude: lng}
}

func ele(v float64) *float64 {
	return &v
}
