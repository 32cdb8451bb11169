package aftn

import "atsparse/internal/record"

// SubMessage is implemented by every category's parsed body: parsing is a
// free function (`parse<X>(body string)`), validation and category
// identification are methods.
type SubMessage interface {
	Validate() error
	Category() Category
}

// Message is the top-level parsed AFTN message.
type Message struct {
	Priority          Priority
	Addresses         Addresses
	TransmissionTime  TransmissionTime
	Category          Category
	Body              SubMessage
	RawBody           string // the body text as classified, trailing NNNN stripped.
	Raw               string // full input, line endings normalized to LF and surrounding whitespace trimmed.
}

// ToRecord converts the message to the family-agnostic interchange record
// shared by all four parsed message types.
func (m *Message) ToRecord() record.Record {
	destinations := make([]string, len(m.Addresses.Destinations))
	for i, d := range m.Addresses.Destinations {
		destinations[i] = string(d)
	}
	return record.Record{
		"family":       "AFTN",
		"priority":     string(m.Priority),
		"origin":       string(m.Addresses.Origin),
		"destinations": destinations,
		"day":          m.TransmissionTime.Day,
		"hour":         m.TransmissionTime.Hour,
		"minute":       m.TransmissionTime.Minute,
		"category":     string(m.Category),
		"body":         m.RawBody,
		"raw":          m.Raw,
	}
}
