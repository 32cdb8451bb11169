package adexp

// Validate checks the cross-field invariants of an already parsed message:
// a TITLE field must be present, and its value must be one of the reserved
// message sub-types.
func Validate(m *Message) error {
	title, ok := m.GetFieldValue("", "TITLE")
	if !ok || title == "" {
		return errMissingField("TITLE")
	}
	if !IsReservedTitle(title) {
		return errFieldValue("TITLE", title, "not a recognized reserved title")
	}
	return nil
}
