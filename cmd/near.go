package main

import (
	"context"
	"flag"
	"fmt"
	"math"

	"gpxstat-tools/gstools/config"
	"gpxstat-tools/gstools/convert"
	"gpxstat-tools/gstools/terminal"
	"gpxstat-tools/gstools/track"

	"github.com/google/subcommands"
)

type nearCmd struct {
	lat   float64
	lon   float64
	units string
}

func (*nearCmd) Name() string     { return "near" }
func (*nearCmd) Synopsis() string { return "Find the recorded point closest to a location." }
func (*nearCmd) Usage() string {
	return `near -lat <degrees> -lon <degrees> [-units] <file.gpx>
	Find the recorded point closest to the given location and the distance
	from that location to the track.
  `
}

func (c *nearCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.lat, "lat", math.NaN(), "latitude of the location in decimal degrees")
	f.Float64Var(&c.lon, "lon", math.NaN(), "longitude of the location in decimal degrees")
	f.StringVar(&c.units, "units", "", "units to display distances (metric, imperial)")
}

func (c *nearCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg := args[0].(*config.Config)
	if c.units == "" {
		c.units = cfg.Units
	}

	// validate parameters
	if math.IsNaN(c.lat) || math.IsNaN(c.lon) {
		terminal.Error(nil, "Both -lat and -lon are required")
		return 1
	}
	switch c.units {
	case config.UnitsMetric, config.UnitsImperial:
	default:
		terminal.Error(nil, "Invalid units '%s'", c.units)
		return 1
	}
	if f.NArg() != 1 {
		terminal.Error(nil, "Expected exactly one GPX file")
		return 1
	}
	path := f.Arg(0)

	t, ok := openTrack(path)
	if !ok {
		return 1
	}

	location := track.Point{Latitude: c.lat, Longitude: c.lon}
	nearest, ok := t.NearestPoint(location)
	if !ok {
		terminal.Warn("'%s' has no track points", path)
		return 1
	}
	distance, _ := t.DistanceFrom(location)

	distanceValue, distanceUnit := distance, "m"
	if c.units == config.UnitsImperial {
		distanceValue, distanceUnit = convert.ToFeet(distance), "ft"
	}

	fmt.Printf("Nearest point: %.6f, %.6f - %s - %s\n", nearest.Latitude, nearest.Longitude, elevationString(nearest), nearest.Time)
	fmt.Printf("Distance from track: %.1f %s\n", distanceValue, distanceUnit)

	return 0
}
