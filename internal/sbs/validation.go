package sbs

import "strconv"

// Validate checks the numeric range invariants field coercion alone does
// not enforce: altitude, ground speed, track, latitude/longitude, and
// vertical rate must each fall within their instrument's plausible range.
func Validate(m *Message) error {
	if m.Altitude != nil && (*m.Altitude < -1000 || *m.Altitude > 100000) {
		return errAltitude(strconv.Itoa(*m.Altitude))
	}
	if m.GroundSpeed != nil && (*m.GroundSpeed < 0 || *m.GroundSpeed > 5000) {
		return errSpeed(strconv.FormatFloat(*m.GroundSpeed, 'f', -1, 64))
	}
	if m.Track != nil && (*m.Track < 0 || *m.Track > 360) {
		return errHeading(strconv.FormatFloat(*m.Track, 'f', -1, 64))
	}
	if m.Latitude != nil && (*m.Latitude < -90 || *m.Latitude > 90) {
		return errCoordinate("latitude", strconv.FormatFloat(*m.Latitude, 'f', -1, 64))
	}
	if m.Longitude != nil && (*m.Longitude < -180 || *m.Longitude > 180) {
		return errCoordinate("longitude", strconv.FormatFloat(*m.Longitude, 'f', -1, 64))
	}
	if m.VerticalRate != nil && (*m.VerticalRate < -20000 || *m.VerticalRate > 20000) {
		return errFieldValue("vertical_rate", strconv.Itoa(*m.VerticalRate), "expected -20000..20000")
	}
	return nil
}
