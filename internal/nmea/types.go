package nmea

// Sentence is the tokenized form of one NMEA line: its talker+type
// identifier, the checksum-verified payload split on commas, and the
// original text.
type Sentence struct {
	ID       string // full identifier, e.g. "GPGGA" or "AIVDM".
	Talker   string // first 2 characters, e.g. "GP".
	Type     string // remaining characters, e.g. "GGA".
	Fields   []string // positional fields after the identifier.
	Checksum string   // the two hex digits as written in the sentence.
	Raw      string
}

// Field returns the i-th positional field (0-indexed), or ok=false if i is
// out of range or the field is empty.
func (s *Sentence) Field(i int) (string, bool) {
	if i < 0 || i >= len(s.Fields) {
		return "", false
	}
	v := s.Fields[i]
	return v, v != ""
}

// FieldRequired returns the i-th field, or a MissingField error naming
// field if it is absent or empty.
func (s *Sentence) FieldRequired(i int, field string) (string, error) {
	v, ok := s.Field(i)
	if !ok {
		return "", errMissingField(field)
	}
	return v, nil
}

func splitIdentifier(id string) (talker, sentenceType string) {
	if len(id) <= 2 {
		return id, ""
	}
	return id[:2], id[2:]
}

func isUpperAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !((r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			return false
		}
	}
	return true
}
