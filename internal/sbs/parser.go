package sbs

import (
	"regexp"
	"strconv"
	"strings"
)

const fieldCount = 22

var icaoPattern = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)
var squawkPattern = regexp.MustCompile(`^[0-7]{4}$`)
var datePattern = regexp.MustCompile(`^\d{4}/\d{2}/\d{2}$`)
var timePattern = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}(\.\d+)?$`)

// Parse parses a single-line SBS CSV record into a typed Message.
func Parse(line string) (*Message, error) {
	trimmed := strings.TrimRight(line, "\r\n")
	fields := strings.Split(trimmed, ",")
	if len(fields) != fieldCount {
		return nil, errFormat("expected %d fields, got %d", fieldCount, len(fields))
	}
	if fields[0] != "MSG" {
		return nil, errMessageType(fields[0])
	}

	txType, err := strconv.Atoi(fields[1])
	if err != nil || !validTransmissionType(txType) {
		return nil, errMessageType(fields[1])
	}

	icao := fields[4]
	if icao != "" && !icaoPattern.MatchString(icao) {
		return nil, errIcaoAddress(icao)
	}

	for _, d := range []string{fields[6], fields[8]} {
		if d != "" && !datePattern.MatchString(d) {
			return nil, errDate(d)
		}
	}
	for _, tm := range []string{fields[7], fields[9]} {
		if tm != "" && !timePattern.MatchString(tm) {
			return nil, errTime(tm)
		}
	}

	callsign := strings.TrimSpace(fields[10])
	if len(callsign) > 8 {
		return nil, errFieldValue("callsign", callsign, "exceeds 8 characters")
	}

	altitude, err := parseOptionalIntField(fields[11], "altitude")
	if err != nil {
		return nil, err
	}
	groundSpeed, err := parseOptionalFloatField(fields[12], "ground_speed")
	if err != nil {
		return nil, err
	}
	track, err := parseOptionalFloatField(fields[13], "track")
	if err != nil {
		return nil, err
	}
	latitude, err := parseOptionalFloatField(fields[14], "latitude")
	if err != nil {
		return nil, err
	}
	longitude, err := parseOptionalFloatField(fields[15], "longitude")
	if err != nil {
		return nil, err
	}
	verticalRate, err := parseOptionalIntField(fields[16], "vertical_rate")
	if err != nil {
		return nil, err
	}

	squawk := fields[17]
	if squawk != "" && !squawkPattern.MatchString(squawk) {
		return nil, errFieldValue("squawk", squawk, "expected 4 octal digits")
	}

	squawkAlert, err := parseOptionalFlag(fields[18], "squawk_alert")
	if err != nil {
		return nil, err
	}
	emergency, err := parseOptionalFlag(fields[19], "emergency")
	if err != nil {
		return nil, err
	}
	spi, err := parseOptionalFlag(fields[20], "spi")
	if err != nil {
		return nil, err
	}
	onGround, err := parseOptionalFlag(fields[21], "on_ground")
	if err != nil {
		return nil, err
	}

	msg := &Message{
		TransmissionType: TransmissionType(txType),
		SessionID:        fields[2],
		AircraftID:       fields[3],
		IcaoAddress:      icao,
		FlightID:         fields[5],
		GeneratedDate:    fields[6],
		GeneratedTime:    fields[7],
		LoggedDate:       fields[8],
		LoggedTime:       fields[9],
		Callsign:         callsign,
		Altitude:         altitude,
		GroundSpeed:      groundSpeed,
		Track:            track,
		Latitude:         latitude,
		Longitude:        longitude,
		VerticalRate:     verticalRate,
		Squawk:           squawk,
		SquawkAlert:      squawkAlert,
		Emergency:        emergency,
		SPI:              spi,
		OnGround:         onGround,
		Raw:              trimmed,
	}
	if err := Validate(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func parseOptionalIntField(s, field string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, errFieldValue(field, s, "not an integer")
	}
	return &v, nil
}

func parseOptionalFloatField(s, field string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errFieldValue(field, s, "not a number")
	}
	return &v, nil
}

func parseOptionalFlag(s, field string) (*bool, error) {
	switch s {
	case "":
		return nil, nil
	case "0":
		v := false
		return &v, nil
	case "1":
		v := true
		return &v, nil
	default:
		return nil, errFieldValue(field, s, `expected "0", "1", or empty`)
	}
}
