// Package nmea implements parsing for NMEA 0183 text sentences, including
// GPS fix sentences and AIS (AIVDM/AIVDO) encapsulated payloads.
package nmea

import "fmt"

type ErrorKind string

const (
	KindParseError        ErrorKind = "parse_error"
	KindInvalidFormat     ErrorKind = "invalid_format"
	KindMissingChecksum   ErrorKind = "missing_checksum"
	KindInvalidChecksum   ErrorKind = "invalid_checksum"
	KindInvalidMessageType ErrorKind = "invalid_message_type"
	KindMissingField      ErrorKind = "missing_field"
	KindInvalidFieldValue ErrorKind = "invalid_field_value"
	KindInvalidCoordinate ErrorKind = "invalid_coordinate"
	KindInvalidTime       ErrorKind = "invalid_time"
	KindInvalidDate       ErrorKind = "invalid_date"
)

// Error is the single error type the nmea package returns.
type Error struct {
	Kind ErrorKind

	Reason string

	Field       string
	Value       string
	FieldReason string

	Expected, Got string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindParseError:
		return fmt.Sprintf("parse error: %s", e.Reason)
	case KindInvalidFormat:
		return fmt.Sprintf("invalid sentence format: %s", e.Reason)
	case KindMissingChecksum:
		return "missing checksum"
	case KindInvalidChecksum:
		return fmt.Sprintf("invalid checksum: expected %s, got %s", e.Expected, e.Got)
	case KindInvalidMessageType:
		return fmt.Sprintf("invalid sentence type: %s", e.Value)
	case KindMissingField:
		return fmt.Sprintf("missing required field: %s", e.Field)
	case KindInvalidFieldValue:
		return fmt.Sprintf("invalid field value: %s = %q (%s)", e.Field, e.Value, e.FieldReason)
	case KindInvalidCoordinate:
		return fmt.Sprintf("invalid coordinate: %s = %q", e.Field, e.Value)
	case KindInvalidTime:
		return fmt.Sprintf("invalid time: %q", e.Value)
	case KindInvalidDate:
		return fmt.Sprintf("invalid date: %q", e.Value)
	default:
		return fmt.Sprintf("nmea error: %s", e.Reason)
	}
}

func errParse(format string, a ...any) *Error {
	return &Error{Kind: KindParseError, Reason: fmt.Sprintf(format, a...)}
}

func errFormat(format string, a ...any) *Error {
	return &Error{Kind: KindInvalidFormat, Reason: fmt.Sprintf(format, a...)}
}

func errMissingChecksum() *Error {
	return &Error{Kind: KindMissingChecksum}
}

func errChecksum(expected, got string) *Error {
	return &Error{Kind: KindInvalidChecksum, Expected: expected, Got: got}
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

func errCoordinate(field, value string) *Error {
	return &Error{Kind: KindInvalidCoordinate, Field: field, Value: value}
}

func errTime(value string) *Error {
	return &Error{Kind: KindInvalidTime, Value: value}
}

func errDate(value string) *Error {
	return &Error{Kind: KindInvalidDate, Value: value}
}
