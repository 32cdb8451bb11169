// Package sbs implements parsing for SBS (BaseStation) CSV records: the
// 22-field Mode-S/ADS-B message format used by dump1090-style receivers.
package sbs

import "fmt"

type ErrorKind string

const (
	KindParseError        ErrorKind = "parse_error"
	KindInvalidFormat     ErrorKind = "invalid_format"
	KindInvalidMessageType ErrorKind = "invalid_message_type"
	KindMissingField      ErrorKind = "missing_field"
	KindInvalidFieldValue ErrorKind = "invalid_field_value"
	KindInvalidIcaoAddress ErrorKind = "invalid_icao_address"
	KindInvalidAltitude   ErrorKind = "invalid_altitude"
	KindInvalidSpeed      ErrorKind = "invalid_speed"
	KindInvalidHeading    ErrorKind = "invalid_heading"
	KindInvalidCoordinate ErrorKind = "invalid_coordinate"
	KindInvalidDate       ErrorKind = "invalid_date"
	KindInvalidTime       ErrorKind = "invalid_time"
)

// Error is the single error type the sbs package returns.
type Error struct {
	Kind ErrorKind

	Reason string

	Field       string
	Value       string
	FieldReason string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindParseError:
		return fmt.Sprintf("parse error: %s", e.Reason)
	case KindInvalidFormat:
		return fmt.Sprintf("invalid record format: %s", e.Reason)
	case KindInvalidMessageType:
		return fmt.Sprintf("invalid message type: %s", e.Value)
	case KindMissingField:
		return fmt.Sprintf("missing required field: %s", e.Field)
	case KindInvalidFieldValue:
		return fmt.Sprintf("invalid field value: %s = %q (%s)", e.Field, e.Value, e.FieldReason)
	case KindInvalidIcaoAddress:
		return fmt.Sprintf("invalid ICAO address: %q", e.Value)
	case KindInvalidAltitude:
		return fmt.Sprintf("invalid altitude: %q", e.Value)
	case KindInvalidSpeed:
		return fmt.Sprintf("invalid speed: %q", e.Value)
	case KindInvalidHeading:
		return fmt.Sprintf("invalid heading: %q", e.Value)
	case KindInvalidCoordinate:
		return fmt.Sprintf("invalid coordinate: %s = %q", e.Field, e.Value)
	case KindInvalidDate:
		return fmt.Sprintf("invalid date: %q", e.Value)
	case KindInvalidTime:
		return fmt.Sprintf("invalid time: %q", e.Value)
	default:
		return fmt.Sprintf("sbs error: %s", e.Reason)
	}
}

func errFormat(format string, a ...any) *Error {
	return &Error{Kind: KindInvalidFormat, Reason: fmt.Sprintf(format, a...)}
}

func errMessageType(value string) *Error {
	return &Error{Kind: KindInvalidMessageType, Value: value}
}

func errMissingField(field string) *Error {
	return &Error{Kind: KindMissingField, Field: field}
}

func errFieldValue(field, value, reason string) *Error {
	return &Error{Kind: KindInvalidFieldValue, Field: field, Value: value, FieldReason: reason}
}

func errIcaoAddress(value string) *Error {
	return &Error{Kind: KindInvalidIcaoAddress, Value: value}
}

func errAltitude(value string) *Error {
	return &Error{Kind: KindInvalidAltitude, Value: value}
}

func errSpeed(value string) *Error {
	return &Error{Kind: KindInvalidSpeed, Value: value}
}

func errHeading(value string) *Error {
	return &Error{Kind: KindInvalidHeading, Value: value}
}

func errCoordinate(field, value string) *Error {
	return &Error{Kind: KindInvalidCoordinate, Field: field, Value: value}
}

func errDate(value string) *Error {
	return &Error{Kind: KindInvalidDate, Value: value}
}

func errTime(value string) *Error {
	return &Error{Kind: KindInvalidTime, Value: value}
}
