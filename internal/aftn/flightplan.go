package aftn

import (
	"regexp"
	"strings"
)

// FlightPlanMessage handles the ICAO field-grammar categories: FPL, CHG,
// CNL, DLA, DEP, ARR, EST, SPL. Each field is introduced by
// "-FIELDn" where n is a stable ICAO field number (optionally suffixed by a
// letter, e.g. "-18" or "-13A"), and its content runs until the next
// "-FIELDn" token or the end of the body.
type FlightPlanMessage struct {
	category Category
	Fields   map[string]string // field number -> content, e.g. "7" -> "AFR123".
	Raw      string
}

var fieldTokenPattern = regexp.MustCompile(`-(\d+[A-Z]?)\b`)

// requiredFlightPlanFields lists the ICAO field numbers each category must
// carry. The numbers follow the standard ICAO flight-plan form: 7 aircraft
// identification, 8 flight rules/type, 9 number/type/wake turbulence
// category, 13 departure aerodrome and time, 15 route, 16 destination
// aerodrome and total EET, 18 other information.
var requiredFlightPlanFields = map[Category][]string{
	CategoryFPL: {"7", "8", "9", "13", "15", "16"},
	CategorySPL: {"7", "8", "9", "13", "15", "16"},
	CategoryCHG: {"7", "13", "16"},
	CategoryCNL: {"7", "13", "16"},
	CategoryDLA: {"7", "13", "16"},
	CategoryDEP: {"7", "13", "16"},
	CategoryARR: {"7", "13", "16"},
	CategoryEST: {"7", "13", "16"},
}

func parseFlightPlan(category Category, body string) (*FlightPlanMessage, error) {
	fields := parseIcaoFields(body)
	return &FlightPlanMessage{category: category, Fields: fields, Raw: body}, nil
}

// parseIcaoFields splits body on "-FIELDn" markers into a field-number ->
// content map, trimming surrounding whitespace from each content span.
func parseIcaoFields(body string) map[string]string {
	locs := fieldTokenPattern.FindAllStringSubmatchIndex(body, -1)
	fields := make(map[string]string, len(locs))
	for i, loc := range locs {
		name := body[loc[2]:loc[3]]
		contentStart := loc[1]
		contentEnd := len(body)
		if i+1 < len(locs) {
			contentEnd = locs[i+1][0]
		}
		fields[name] = strings.TrimSpace(body[contentStart:contentEnd])
	}
	return fields
}

// Field returns a field's content by ICAO field number.
func (m *FlightPlanMessage) Field(n string) (string, bool) {
	v, ok := m.Fields[n]
	return v, ok
}

func (m *FlightPlanMessage) Validate() error {
	for _, field := range requiredFlightPlanFields[m.category] {
		v, ok := m.Fields[field]
		if !ok || v == "" {
			return errMissingField("-" + field)
		}
	}
	return nil
}

func (m *FlightPlanMessage) Category() Category { return m.category }
