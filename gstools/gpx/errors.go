package gpx

import (
	"encoding/xml"
	"errors"
	"fmt"
)

// Public error kinds. Every failure returned by this package matches
// exactly one of them with errors.Is.
var (
	// ErrInput reports a source that could not be read.
	ErrInput = errors.New("invalid input")
	// ErrFormat reports malformed markup.
	ErrFormat = errors.New("invalid GPX format")
	// ErrData reports well-formed markup carrying invalid track content.
	ErrData = errors.New("invalid GPX data")
)

// PointError reports a track point field that failed validation.
type PointError struct {
	Field  string
	Reason string
}

func (e *PointError) Error() string {
	return fmt.Sprintf("invalid track point: %s %s", e.Field, e.Reason)
}

// Unwrap makes every PointError match ErrData.
func (e *PointError) Unwrap() error {
	return ErrData
}

// classify maps a tokenizer failure to its public kind: malformed markup
// is a format error, anything else failed before the markup could be read.
func classify(err error) error {
	var syntax *xml.SyntaxError
	if errors.As(err, &syntax) {
		return fmt.Errorf("%w: %v", ErrFormat, syntax)
	}
	return fmt.Errorf("%w: %v", ErrInput, err)
}
