package aftn

import (
	"regexp"
	"strings"
)

// MetFamilyMessage handles METAR, TAF, SIGMET, AIRMET, ATIS, and VOLMET:
// a station identifier, an issuance time, and free-form content stored
// verbatim. Validation only checks the two required lead tokens (both must
// be present, and the issuance time must be 4-6 digits with an optional
// trailing Z); the free-form content is never re-parsed.
type MetFamilyMessage struct {
	category     Category
	Station      string
	IssuanceTime string
	Content      string
}

var issuanceTimePattern = regexp.MustCompile(`^\d{4,6}Z?$`)

func parseMetFamily(category Category, body string) (*MetFamilyMessage, error) {
	fields := strings.Fields(body)
	m := &MetFamilyMessage{category: category}
	if len(fields) > 0 {
		m.Station = fields[0]
	}
	if len(fields) > 1 {
		m.IssuanceTime = fields[1]
	}
	if len(fields) > 2 {
		idx := strings.Index(body, fields[2])
		if idx >= 0 {
			m.Content = strings.TrimSpace(body[idx:])
		}
	}
	return m, nil
}

func (m *MetFamilyMessage) Validate() error {
	if m.Station == "" {
		return errMissingField("station")
	}
	if m.IssuanceTime == "" {
		return errMissingField("issuance_time")
	}
	if !issuanceTimePattern.MatchString(m.IssuanceTime) {
		return errFieldValue("issuance_time", m.IssuanceTime, "expected 4-6 digits optionally suffixed with Z")
	}
	return nil
}

func (m *MetFamilyMessage) Category() Category { return m.category }
