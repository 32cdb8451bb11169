package aftn

import (
	"regexp"
	"strings"
)

// NotamMessage is a NOTAM (Notice to Airmen) sub-message: series letter,
// sequence number, year, FIR/aerodrome location, and a free-form body
// terminated by "CREATED:" or end of input.
type NotamMessage struct {
	Series   string
	Number   string
	Year     string
	Location string
	Content  string
}

var notamHeaderPattern = regexp.MustCompile(`(?s)^([A-Z])(\d{1,4})/(\d{2})\s+([A-Z]{4})\s*(.*)$`)

func parseNotam(body string) (*NotamMessage, error) {
	m := notamHeaderPattern.FindStringSubmatch(strings.TrimSpace(body))
	if m == nil {
		return nil, errFieldValue("notam_header", body, "expected SERIES NUMBER/YEAR LOCATION header")
	}
	content := m[5]
	if idx := strings.Index(content, "CREATED:"); idx >= 0 {
		content = strings.TrimSpace(content[:idx])
	}
	return &NotamMessage{
		Series:   m[1],
		Number:   m[2],
		Year:     m[3],
		Location: m[4],
		Content:  content,
	}, nil
}

func (m *NotamMessage) Validate() error {
	if m.Location == "" {
		return errMissingField("location")
	}
	return nil
}

func (m *NotamMessage) Category() Category { return CategoryNOTAM }
