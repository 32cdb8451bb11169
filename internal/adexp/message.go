package adexp

import "atsparse/internal/record"

// FieldType distinguishes a leaf field carrying a value from a compound
// field carrying nested children.
type FieldType int

const (
	Primary FieldType = iota
	Compound
)

// Field is one parsed ADEXP field, in source order.
type Field struct {
	Tag      string
	Value    string // populated for Primary fields.
	Children []*Field // populated for Compound fields.
	Type     FieldType
}

// Message is a parsed ADEXP message: an ordered, possibly-nested set of
// fields plus an index for direct lookup by nesting path and tag.
type Message struct {
	Fields      []*Field
	MessageType string // the TITLE field's value, if present.
	Raw         string

	index map[string][]*Field
}

func joinKey(path, tag string) string {
	if path == "" {
		return tag
	}
	return path + "." + tag
}

// GetFieldValue returns the value of the first Primary field at the given
// nesting path (a dot-joined sequence of ancestor compound tags, "" for the
// root) with the given tag. The second return value reports whether such a
// field was found.
func (m *Message) GetFieldValue(path, tag string) (string, bool) {
	for _, f := range m.index[joinKey(path, tag)] {
		if f.Type == Primary {
			return f.Value, true
		}
	}
	return "", false
}

// GetField returns the first field (primary or compound) at the given
// nesting path with the given tag.
func (m *Message) GetField(path, tag string) (*Field, bool) {
	fields, ok := m.index[joinKey(path, tag)]
	if !ok || len(fields) == 0 {
		return nil, false
	}
	return fields[0], true
}

// GetAllFields returns every field at the given nesting path with the given
// tag, in source order. Compound fields may legally repeat (e.g. multiple
// -BEGIN ROUTE blocks describing successive route legs).
func (m *Message) GetAllFields(path, tag string) []*Field {
	return m.index[joinKey(path, tag)]
}

// ToRecord converts the message to the family-agnostic interchange record
// shared by all four parsed message types.
func (m *Message) ToRecord() record.Record {
	return record.Record{
		"family":       "ADEXP",
		"message_type": m.MessageType,
		"fields":       fieldsToRecord(m.Fields),
		"raw":          m.Raw,
	}
}

func fieldsToRecord(fields []*Field) []map[string]any {
	out := make([]map[string]any, len(fields))
	for i, f := range fields {
		entry := map[string]any{"tag": f.Tag}
		if f.Type == Compound {
			entry["children"] = fieldsToRecord(f.Children)
		} else {
			entry["value"] = f.Value
		}
		out[i] = entry
	}
	return out
}
