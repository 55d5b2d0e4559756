package convert_test

import (
	"testing"

	"gpxstat-tools/gstools/convert"

	"github.com/stretchr/testify/require"
)

func TestToFeet(t *testing.T) {
	require := require.New(t)

	tests := map[string]struct {
		input float64
		want  float64
	}{
		"simple": {input: 1000, want: 3280.84},
		"zero":   {input: 0, want: 0},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			feet := convert.ToFeet(tc.input)
			require.Equal(tc.want, feet)
		})
	}
}

func TestToMiles(t *testing.T) {
	require := require.New(t)

	tests := map[string]struct {
		input float64
		want  float64
	}{
		"simple": {input: 1000, want: 0.6213712},
		"zero":   {input: 0, want: 0},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			miles := convert.ToMiles(tc.input)
			require.Equal(tc.want, miles)
		})
	}
}
