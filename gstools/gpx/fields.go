package gpx

import (
	"strconv"

	"gpxstat-tools/gstools/track"
)

// applyFunc assigns one decoded text value to a field of the point under
// construction.
type applyFunc func(pt *track.Point, text string) error

type fieldHandler struct {
	name  string
	apply applyFunc
}

// handlers maps the recognized trkpt child elements to their field
// updates. Recognizing a new field means appending a pair here, the
// scanner itself does not change.
var handlers = []fieldHandler{
	{name: "time", apply: applyTime},
	{name: "ele", apply: applyEle},
}

func applyTime(pt *track.Point, text string) error {
	pt.Time = text
	return nil
}

func applyEle(pt *track.Point, text string) error {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return &PointError{Field: "ele", Reason: "is not a number"}
	}
	pt.Elevation = &v
	return nil
}

func findHandler(name string) applyFunc {
	for _, h := range handlers {
		if h.name == name {
			return h.apply
		}
	}
	return nil
}
