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
	"gpxstat-tools/gstools/gpx"
	"gpxstat-tools/gstools/terminal"
	"gpxstat-tools/gstools/track"

	"github.com/google/subcommands"
)

type pointsCmd struct {
	format     string
	outputFile string
}

func (*pointsCmd) Name() string     { return "points" }
func (*pointsCmd) Synopsis() string { return "Dump every track point of a GPX file." }
func (*pointsCmd) Usage() string {
	return `points [-format] [-output] <file.gpx>
	Dump every track point in document order, ignoring segment boundaries.
  `
}

func (c *pointsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "", "format to display points (json, text, csv)")
	f.StringVar(&c.outputFile, "output", "", "output file")
}

func (c *pointsCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg := args[0].(*config.Config)
	if c.format == "" {
		c.format = cfg.Format
	}

	// validate parameters
	switch c.format {
	case config.FormatText, config.FormatJSON, config.FormatCSV:
	default:
		terminal.Error(nil, "Invalid format '%s'", c.format)
		return 1
	}
	if f.NArg() != 1 {
		terminal.Error(nil, "Expected exactly one GPX file")
		return 1
	}
	path := f.Arg(0)

	file, err := os.Open(path)
	if err != nil {
		terminal.Error(err, "Could not open file '%s'", path)
		return 1
	}
	defer file.Close()

	points, err := gpx.ParsePoints(file)
	if err != nil {
		reportParseError(err, path)
		return 1
	}

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

		op = terminal.NewOperation("Exporting %d points to '%s' in %s format", len(points), c.outputFile, c.format)
	}

	// print result
	switch c.format {
	case config.FormatText:
		for _, p := range points {
			fmt.Fprintf(w, "%.6f, %.6f - %s - %s\n", p.Latitude, p.Longitude, elevationString(p), p.Time)
		}
	case config.FormatJSON:
		elts := make([]map[string]interface{}, len(points))
		for i, p := range points {
			jsonMap := map[string]interface{}{}
			jsonMap["lat"] = p.Latitude
			jsonMap["lon"] = p.Longitude
			if p.Elevation != nil {
				jsonMap["ele"] = *p.Elevation
			}
			if p.Time != "" {
				jsonMap["time"] = p.Time
			}
			elts[i] = jsonMap
		}
		jsonStr, _ := json.MarshalIndent(elts, "", "  ")
		fmt.Fprintln(w, string(jsonStr))
	case config.FormatCSV:
		csvW := csv.NewWriter(w)
		csvW.Write([]string{"lat", "lon", "elevation(m)", "time"})
		for _, p := range points {
			ele := ""
			if p.Elevation != nil {
				ele = strconv.FormatFloat(*p.Elevation, 'f', -1, 64)
			}
			csvW.Write([]string{
				strconv.FormatFloat(p.Latitude, 'f', -1, 64),
				strconv.FormatFloat(p.Longitude, 'f', -1, 64),
				ele,
				p.Time,
			})
		}
		csvW.Flush()
	}

	if op != nil {
		op.Success("%d points exported to %s", len(points), c.outputFile)
	}

	return 0
}

func elevationString(p track.Point) string {
	if p.Elevation == nil {
		return "no ele"
	}
	return fmt.Sprintf("%.1fm", *p.Elevation)
}
