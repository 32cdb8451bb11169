package aftn

// Validate runs the semantic validator stage over an already parsed
// message: the cross-field invariants that apply universally (priority in
// the fixed set, at least one destination, time fields in range) plus the
// category-specific sub-message validation. Field-level coercion already
// enforces most of this at parse time; Validate exists so a caller holding
// a Message it did not parse itself (e.g. reconstructed from a record) can
// still confirm it is well-formed.
func Validate(m *Message) error {
	if !validPriorities[m.Priority] {
		return errPriority(string(m.Priority))
	}
	if len(m.Addresses.Destinations) < 1 {
		return errMissingField("destinations")
	}
	if m.TransmissionTime.Day < 1 || m.TransmissionTime.Day > 31 {
		return errDateTime("day out of range 01..31: %d", m.TransmissionTime.Day)
	}
	if m.TransmissionTime.Hour > 23 {
		return errDateTime("hour out of range 00..23: %d", m.TransmissionTime.Hour)
	}
	if m.TransmissionTime.Minute > 59 {
		return errDateTime("minute out of range 00..59: %d", m.TransmissionTime.Minute)
	}
	if m.Body == nil {
		return errMissingField("body")
	}
	return m.Body.Validate()
}
