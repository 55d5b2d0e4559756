// Package gpx parses GPX track logs in a single forward pass. It pulls
// structural events from encoding/xml one at a time and retires completed
// points and segments as soon as their closing tag is seen, so memory
// stays bounded by the currently open segment rather than the document.
package gpx

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"gpxstat-tools/gstools/track"

	"golang.org/x/net/html/charset"
)

// Element names recognized by the scanner. Everything else in the
// document passes through as structural noise.
const (
	segmentName = "trkseg"
	pointName   = "trkpt"
)

// ParseTrack reads a GPX document and groups its track points into
// segments. Empty segments are dropped, and points sitting outside any
// trkseg never reach the returned track.
func ParseTrack(r io.Reader) (*track.Track, error) {
	s := newScanner(r, true)
	if err := s.run(); err != nil {
		return nil, err
	}
	return track.NewTrack(s.segments), nil
}

// ParsePoints reads a GPX document and returns every track point in
// document order, ignoring segment boundaries.
func ParsePoints(r io.Reader) ([]track.Point, error) {
	s := newScanner(r, false)
	if err := s.run(); err != nil {
		return nil, err
	}
	return s.points, nil
}

// scanner is the working state of one parsing pass: the point under
// construction, the field handler bound to the open child element, and
// the open segment's point buffer. It exists only for the duration of
// the pass.
type scanner struct {
	dec     *xml.Decoder
	grouped bool

	point  *track.Point
	apply  applyFunc
	buffer []track.Point

	segments []track.Segment
	points   []track.Point
}

func newScanner(r io.Reader, grouped bool) *scanner {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	return &scanner{dec: dec, grouped: grouped}
}

func (s *scanner) run() error {
	for {
		tok, err := s.dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return classify(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if err := s.startElement(t); err != nil {
				return err
			}
		case xml.EndElement:
			s.endElement(t)
		case xml.CharData:
			if err := s.text(t); err != nil {
				return err
			}
		}
	}
}

func (s *scanner) startElement(e xml.StartElement) error {
	switch e.Name.Local {
	case segmentName:
		if s.grouped {
			s.buffer = nil
		}
	case pointName:
		pt, err := parsePoint(e)
		if err != nil {
			return err
		}
		s.point = pt
		s.apply = nil
	default:
		if s.point != nil {
			s.apply = findHandler(e.Name.Local)
		} else {
			s.apply = nil
		}
	}
	return nil
}

func (s *scanner) endElement(e xml.EndElement) {
	switch e.Name.Local {
	case segmentName:
		if s.grouped && len(s.buffer) > 0 {
			s.segments = append(s.segments, track.NewSegment(s.buffer))
			s.buffer = nil
		}
		s.apply = nil
	case pointName:
		if s.point != nil {
			if s.grouped {
				s.buffer = append(s.buffer, *s.point)
			} else {
				s.points = append(s.points, *s.point)
			}
			s.point = nil
		}
		s.apply = nil
	default:
		s.apply = nil
	}
}

func (s *scanner) text(data xml.CharData) error {
	if s.point == nil || s.apply == nil {
		return nil
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil
	}

	return s.apply(s.point, text)
}

// parsePoint constructs a point from the mandatory lat/lon attributes of
// a trkpt start tag. A missing or non-numeric coordinate aborts the
// parse, a coordinate is never silently defaulted.
func parsePoint(e xml.StartElement) (*track.Point, error) {
	var lat, lon *float64

	for _, attr := range e.Attr {
		name := attr.Name.Local
		if name != "lat" && name != "lon" {
			continue
		}

		v, err := strconv.ParseFloat(attr.Value, 64)
		if err != nil {
			return nil, &PointError{Field: name, Reason: "is not a number"}
		}
		if name == "lat" {
			lat = &v
		} else {
			lon = &v
		}
	}

	if lat == nil {
		return nil, &PointError{Field: "lat", Reason: "is missing"}
	}
	if lon == nil {
		return nil, &PointError{Field: "lon", Reason: "is missing"}
	}

	return &track.Point{Latitude: *lat, Longitude: *lon}, nil
}
