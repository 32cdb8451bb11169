package ais

import "fmt"

// Payload is implemented by every decoded AIS message type.
type Payload interface {
	MessageType() int
}

// PositionReport decodes AIS message types 1, 2, and 3 (Class A position
// report).
type PositionReport struct {
	Type              int
	RepeatIndicator   int
	MMSI              uint32
	NavigationStatus  int
	RateOfTurn        int
	SpeedOverGround   float64 // knots.
	PositionAccuracy  bool
	Longitude         float64 // degrees.
	Latitude          float64 // degrees.
	CourseOverGround  float64 // degrees.
	TrueHeading       int
	Timestamp         int
	ManeuverIndicator int
}

func (p *PositionReport) MessageType() int { return p.Type }

// VoyageData decodes AIS message type 5 (static and voyage-related data).
type VoyageData struct {
	Type        int
	MMSI        uint32
	AISVersion  int
	IMO         uint32
	Callsign    string
	VesselName  string
	ShipType    int
	Destination string
	Draught     float64
	ETAMonth    int
	ETADay      int
	ETAHour     int
	ETAMinute   int
}

func (v *VoyageData) MessageType() int { return v.Type }

// RawPayload carries the decoded bit stream verbatim for message types
// this package does not yet decode field-by-field.
type RawPayload struct {
	Type int
	Bits string
}

func (r *RawPayload) MessageType() int { return r.Type }

// Decode dispatches on the payload's leading 6-bit message type field.
func Decode(bits string) (Payload, error) {
	c := NewCursor(bits)
	msgType, err := c.ReadUint(6)
	if err != nil {
		return nil, err
	}
	switch msgType {
	case 1, 2, 3:
		return decodePositionReport(int(msgType), bits)
	case 5:
		return decodeVoyageData(bits)
	default:
		return &RawPayload{Type: int(msgType), Bits: bits}, nil
	}
}

func decodePositionReport(msgType int, bits string) (*PositionReport, error) {
	c := NewCursor(bits)
	if _, err := c.ReadUint(6); err != nil { // message type, already known.
		return nil, err
	}
	repeat, err := c.ReadUint(2)
	if err != nil {
		return nil, err
	}
	mmsi, err := c.ReadUint(30)
	if err != nil {
		return nil, err
	}
	navStatus, err := c.ReadUint(4)
	if err != nil {
		return nil, err
	}
	rot, err := c.ReadInt(8)
	if err != nil {
		return nil, err
	}
	sog, err := c.ReadUint(10)
	if err != nil {
		return nil, err
	}
	accuracy, err := c.ReadUint(1)
	if err != nil {
		return nil, err
	}
	lon, err := c.ReadInt(28)
	if err != nil {
		return nil, err
	}
	lat, err := c.ReadInt(27)
	if err != nil {
		return nil, err
	}
	cog, err := c.ReadUint(12)
	if err != nil {
		return nil, err
	}
	heading, err := c.ReadUint(9)
	if err != nil {
		return nil, err
	}
	timestamp, err := c.ReadUint(6)
	if err != nil {
		return nil, err
	}
	maneuver, err := c.ReadUint(2)
	if err != nil {
		return nil, err
	}

	return &PositionReport{
		Type:              msgType,
		RepeatIndicator:   int(repeat),
		MMSI:              uint32(mmsi),
		NavigationStatus:  int(navStatus),
		RateOfTurn:        int(rot),
		SpeedOverGround:   float64(sog) / 10,
		PositionAccuracy:  accuracy == 1,
		Longitude:         float64(lon) / 600000,
		Latitude:          float64(lat) / 600000,
		CourseOverGround:  float64(cog) / 10,
		TrueHeading:       int(heading),
		Timestamp:         int(timestamp),
		ManeuverIndicator: int(maneuver),
	}, nil
}

func decodeVoyageData(bits string) (*VoyageData, error) {
	c := NewCursor(bits)
	if _, err := c.ReadUint(6); err != nil {
		return nil, err
	}
	if _, err := c.ReadUint(2); err != nil { // repeat indicator.
		return nil, err
	}
	mmsi, err := c.ReadUint(30)
	if err != nil {
		return nil, err
	}
	version, err := c.ReadUint(2)
	if err != nil {
		return nil, err
	}
	imo, err := c.ReadUint(30)
	if err != nil {
		return nil, err
	}
	callsign, err := c.ReadString(42)
	if err != nil {
		return nil, err
	}
	name, err := c.ReadString(120)
	if err != nil {
		return nil, err
	}
	shipType, err := c.ReadUint(8)
	if err != nil {
		return nil, err
	}
	if c.Remaining() < 9+9+6+6+4+4+5+5+6+8+120+1+1 {
		return nil, fmt.Errorf("voyage data payload truncated")
	}
	for _, dim := range []int{9, 9, 6, 6} { // bow/stern/port/starboard dimensions, not surfaced.
		if _, err := c.ReadUint(dim); err != nil {
			return nil, err
		}
	}
	if _, err := c.ReadUint(4); err != nil { // EPFD type.
		return nil, err
	}
	month, err := c.ReadUint(4)
	if err != nil {
		return nil, err
	}
	day, err := c.ReadUint(5)
	if err != nil {
		return nil, err
	}
	hour, err := c.ReadUint(5)
	if err != nil {
		return nil, err
	}
	minute, err := c.ReadUint(6)
	if err != nil {
		return nil, err
	}
	draught, err := c.ReadUint(8)
	if err != nil {
		return nil, err
	}
	destination, err := c.ReadString(120)
	if err != nil {
		return nil, err
	}

	return &VoyageData{
		Type:        5,
		MMSI:        uint32(mmsi),
		AISVersion:  int(version),
		IMO:         uint32(imo),
		Callsign:    callsign,
		VesselName:  name,
		ShipType:    int(shipType),
		Destination: destination,
		Draught:     float64(draught) / 10,
		ETAMonth:    int(month),
		ETADay:      int(day),
		ETAHour:     int(hour),
		ETAMinute:   int(minute),
	}, nil
}
