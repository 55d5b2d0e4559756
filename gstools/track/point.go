package track

// Point is a single geographic fix. Latitude and longitude are mandatory;
// elevation and time are optional and stay nil/empty when the source
// document does not carry them. Time is kept as the raw document string,
// no date parsing is done anywhere in this package.
type Point struct {
	Latitude, Longitude float64
	Elevation           *float64
	Time                string
}

// Lat returns the latitude in degrees
func (p Point) Lat() float64 {
	return p.Latitude
}

// Lng returns the longitude in degrees
func (p Point) Lng() float64 {
	return p.Longitude
}

// LatLng latlng
type LatLng interface {
	Lat() float64
	Lng() float64
}
