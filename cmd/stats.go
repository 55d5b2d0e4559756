package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"gpxstat-tools/gstools/config"
	"gpxstat-tools/gstools/convert"
	"gpxstat-tools/gstools/terminal"

	"github.com/google/subcommands"
)

type statsCmd struct {
	format     string
	units      string
	outputFile string
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "Print summary statistics of a GPX track." }
func (*statsCmd) Usage() string {
	return `stats [-format] [-units] [-output] <file.gpx>
	Print distance, ascent/descent and point counts of a GPX track.
  `
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "", "format to display statistics (json, text, csv)")
	f.StringVar(&c.units, "units", "", "units to display distances (metric, imperial)")
	f.StringVar(&c.outputFile, "output", "", "output file")
}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg := args[0].(*config.Config)
	if c.format == "" {
		c.format = cfg.Format
	}
	if c.units == "" {
		c.units = cfg.Units
	}

	// validate parameters
	switch c.format {
	case config.FormatText, config.FormatJSON, config.FormatCSV:
	default:
		terminal.Error(nil, "Invalid format '%s'", c.format)
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
	stats := t.Stats()

	distance, climb := units(c.units)
	distanceValue := distance.convert(stats.Distance)
	ascentValue := climb.convert(stats.Ascent)
	descentValue := climb.convert(stats.Descent)

	// get a file writer if needed
	var w io.Writer = os.Stdout
	var op *terminal.Operation
	if c.outputFile != "" {
		f, err := os.Create(c.outputFile)
		if err != nil {
			terminal.Error(err, "Could not open file '%s'", c.outputFile)
			return 1
		}
		defer f.Close()
		w = f

		op = terminal.NewOperation("Exporting statistics to '%s' in %s format", c.outputFile, c.format)
	}

	// print result
	switch c.format {
	case config.FormatText:
		fmt.Fprintf(w, "File: %s\n", path)
		fmt.Fprintf(w, "Segments: %d\n", stats.Segments)
		fmt.Fprintf(w, "Points: %d\n", stats.Points)
		fmt.Fprintf(w, "Distance: %.2f %s\n", distanceValue, distance.name)
		fmt.Fprintf(w, "Ascent: %.1f %s\n", ascentValue, climb.name)
		fmt.Fprintf(w, "Descent: %.1f %s\n", descentValue, climb.name)
		if b, ok := t.Bounds(); ok {
			fmt.Fprintf(w, "Bounds: %.6f,%.6f %.6f,%.6f\n", b.MinLat, b.MinLng, b.MaxLat, b.MaxLng)
		}
	case config.FormatJSON:
		jsonMap := map[string]interface{}{
			"file":     path,
			"segments": stats.Segments,
			"points":   stats.Points,
			fmt.Sprintf("distance_%s", distance.name): distanceValue,
			fmt.Sprintf("ascent_%s", climb.name):      ascentValue,
			fmt.Sprintf("descent_%s", climb.name):     descentValue,
		}
		if b, ok := t.Bounds(); ok {
			jsonMap["bounds"] = map[string]interface{}{
				"min_lat": b.MinLat,
				"min_lng": b.MinLng,
				"max_lat": b.MaxLat,
				"max_lng": b.MaxLng,
			}
		}
		jsonStr, _ := json.MarshalIndent(jsonMap, "", "  ")
		fmt.Fprintln(w, string(jsonStr))
	case config.FormatCSV:
		csvW := csv.NewWriter(w)
		csvW.Write([]string{"file", "segments", "points", "distance(" + distance.name + ")", "ascent(" + climb.name + ")", "descent(" + climb.name + ")"})
		csvW.Write([]string{
			path,
			strconv.Itoa(stats.Segments),
			strconv.Itoa(stats.Points),
			strconv.FormatFloat(distanceValue, 'f', 2, 64),
			strconv.FormatFloat(ascentValue, 'f', 1, 64),
			strconv.FormatFloat(descentValue, 'f', 1, 64),
		})
		csvW.Flush()
	}

	if op != nil {
		op.Success("Statistics exported to %s", c.outputFile)
	}

	return 0
}

// unit pairs a display name with a conversion from the meters the track
// aggregates return.
type unit struct {
	name    string
	convert func(meters float64) float64
}

func units(name string) (distance, climb unit) {
	if name == config.UnitsImperial {
		return unit{name: "mi", convert: convert.ToMiles}, unit{name: "ft", convert: convert.ToFeet}
	}
	return unit{name: "km", convert: func(m float64) float64 { return m / 1000 }}, unit{name: "m", convert: func(m float64) float64 { return m }}
}
