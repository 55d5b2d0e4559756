package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"gpxstat-tools/gstools/config"
	"gpxstat-tools/gstools/gpx"
	"gpxstat-tools/gstools/terminal"
	"gpxstat-tools/gstools/track"

	"github.com/google/subcommands"
)

func main() {

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&statsCmd{}, "")
	subcommands.Register(&pointsCmd{}, "")
	subcommands.Register(&nearCmd{}, "")

	cfg, err := config.Load()
	if err != nil {
		terminal.Error(err, "Failed to load config")
		os.Exit(1)
	}

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx, cfg)))
}

// openTrack parses the GPX file at the given path into a track, reporting
// failures to the terminal.
func openTrack(path string) (*track.Track, bool) {
	f, err := os.Open(path)
	if err != nil {
		terminal.Error(err, "Could not open file '%s'", path)
		return nil, false
	}
	defer f.Close()

	t, err := gpx.ParseTrack(f)
	if err != nil {
		reportParseError(err, path)
		return nil, false
	}

	return t, true
}

func reportParseError(err error, path string) {
	switch {
	case errors.Is(err, gpx.ErrFormat):
		terminal.Error(err, "'%s' is not a valid GPX document", path)
	case errors.Is(err, gpx.ErrData):
		terminal.Error(err, "'%s' contains an invalid track point", path)
	default:
		terminal.Error(err, "Could not read '%s'", path)
	}
}
