// Package record defines the family-agnostic interchange representation
// every parsed message family converts to: a mapping of field name to
// string, number, bool, or nested record, suitable for external
// interchange without committing to any one transport format. Conversion
// is one-way: no family builds its typed message back from a Record.
package record

import "encoding/json"

// Record is the language-neutral interchange representation of a parsed
// message. Every family's ToRecord method returns one.
type Record map[string]any

// Recorder is implemented by every family's parsed message type.
type Recorder interface {
	ToRecord() Record
}

// Marshal serializes a Record to its canonical JSON interchange form.
func Marshal(r Record) ([]byte, error) {
	return json.Marshal(r)
}

// Unmarshal parses JSON interchange bytes back into a Record. It does not
// reconstruct a family's typed message, and no package in this module
// provides that conversion.
func Unmarshal(data []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return r, nil
}

// MarshalAll serializes a slice of Records as a JSON array, for dumping a
// batch of parsed messages from a mixed-family stream.
func MarshalAll(records []Record) ([]byte, error) {
	return json.Marshal(records)
}
