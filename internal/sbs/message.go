package sbs

import "atsparse/internal/record"

// Message is a single parsed SBS (BaseStation) record.
type Message struct {
	TransmissionType TransmissionType
	SessionID        string
	AircraftID       string
	IcaoAddress      string
	FlightID         string
	GeneratedDate    string
	GeneratedTime    string
	LoggedDate       string
	LoggedTime       string
	Callsign         string
	Altitude         *int
	GroundSpeed      *float64
	Track            *float64
	Latitude         *float64
	Longitude        *float64
	VerticalRate     *int
	Squawk           string
	SquawkAlert      *bool
	Emergency        *bool
	SPI              *bool
	OnGround         *bool

	Raw string
}

// ToRecord converts the message to the family-agnostic interchange record
// shared by all four parsed message types. Absent optional fields are
// omitted rather than represented as a zero value.
func (m *Message) ToRecord() record.Record {
	r := record.Record{
		"family":            "SBS",
		"transmission_type": int(m.TransmissionType),
		"icao_address":      m.IcaoAddress,
		"callsign":          m.Callsign,
		"raw":               m.Raw,
	}
	if m.Altitude != nil {
		r["altitude"] = *m.Altitude
	}
	if m.GroundSpeed != nil {
		r["ground_speed"] = *m.GroundSpeed
	}
	if m.Track != nil {
		r["track"] = *m.Track
	}
	if m.Latitude != nil {
		r["latitude"] = *m.Latitude
	}
	if m.Longitude != nil {
		r["longitude"] = *m.Longitude
	}
	if m.VerticalRate != nil {
		r["vertical_rate"] = *m.VerticalRate
	}
	if m.Squawk != "" {
		r["squawk"] = m.Squawk
	}
	return r
}
