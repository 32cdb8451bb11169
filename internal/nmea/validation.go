package nmea

// Validate re-runs the cross-field checks over an already parsed message,
// for a caller holding a Message it did not parse itself.
func Validate(m *Message) error {
	if m.Body == nil {
		return errMissingField("body")
	}
	return m.Body.Validate()
}
