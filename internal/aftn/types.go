package aftn

import "regexp"

// Priority is the ICAO AFTN priority indicator, one of a fixed five-value set.
type Priority string

const (
	PrioritySS Priority = "SS" // Distress.
	PriorityDD Priority = "DD" // Safety (Danger).
	PriorityFF Priority = "FF" // Flight safety.
	PriorityGG Priority = "GG" // Meteorological/Flight regularity.
	PriorityKK Priority = "KK" // Administrative.
)

var validPriorities = map[Priority]bool{
	PrioritySS: true,
	PriorityDD: true,
	PriorityFF: true,
	PriorityGG: true,
	PriorityKK: true,
}

// ParsePriority validates a 2-character priority token.
func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if !validPriorities[p] {
		return "", errPriority(s)
	}
	return p, nil
}

// addressPattern matches the 8-character uppercase alphanumeric AFTN address.
var addressPattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

// Address is an 8-character AFTN address (origin or destination).
type Address string

// ParseAddress validates an address token against the 8-char alphanumeric rule.
func ParseAddress(s string) (Address, error) {
	if !addressPattern.MatchString(s) {
		return "", errAddress(s)
	}
	return Address(s), nil
}

// Addresses holds the origin and one or more destinations of a message.
type Addresses struct {
	Origin       Address
	Destinations []Address
}

// TransmissionTime is the DDHHMM filing time field.
type TransmissionTime struct {
	Day     int
	Hour    int
	Minute  int
	Literal string // the original 6-digit token.
}

// transmissionTimePattern recognizes the 6-digit DDHHMM token.
var transmissionTimePattern = regexp.MustCompile(`^\d{6}$`)

// ParseTransmissionTime parses and range-checks a DDHHMM token.
func ParseTransmissionTime(s string) (TransmissionTime, error) {
	if !transmissionTimePattern.MatchString(s) {
		return TransmissionTime{}, errDateTime("not a 6-digit DDHHMM token: %q", s)
	}
	day := int(s[0]-'0')*10 + int(s[1]-'0')
	hour := int(s[2]-'0')*10 + int(s[3]-'0')
	minute := int(s[4]-'0')*10 + int(s[5]-'0')
	if day < 1 || day > 31 {
		return TransmissionTime{}, errDateTime("day out of range 01..31: %d", day)
	}
	if hour > 23 {
		return TransmissionTime{}, errDateTime("hour out of range 00..23: %d", hour)
	}
	if minute > 59 {
		return TransmissionTime{}, errDateTime("minute out of range 00..59: %d", minute)
	}
	return TransmissionTime{Day: day, Hour: hour, Minute: minute, Literal: s}, nil
}

// Category enumerates the AFTN message category taxonomy.
type Category string

const (
	CategoryGeneric Category = "GENERIC"

	// Coordination.
	CategoryCOF Category = "COF"
	CategoryREQ Category = "REQ"
	CategoryABI Category = "ABI"

	// Flight-plan.
	CategoryFPL Category = "FPL"
	CategoryCHG Category = "CHG"
	CategoryCNL Category = "CNL"
	CategoryDLA Category = "DLA"
	CategoryDEP Category = "DEP"
	CategoryARR Category = "ARR"
	CategoryEST Category = "EST"
	CategorySPL Category = "SPL"

	// Meteorological.
	CategoryNOTAM  Category = "NOTAM"
	CategoryMETAR  Category = "METAR"
	CategoryTAF    Category = "TAF"
	CategorySIGMET Category = "SIGMET"
	CategoryAIRMET Category = "AIRMET"
	CategoryATIS   Category = "ATIS"
	CategoryVOLMET Category = "VOLMET"
)

// CategoryGroup is the coarse grouping of the category taxonomy
// (Coordination / Flight-Plan / Meteorological / Generic).
type CategoryGroup string

const (
	GroupCoordination   CategoryGroup = "coordination"
	GroupFlightPlan     CategoryGroup = "flight_plan"
	GroupMeteorological CategoryGroup = "meteorological"
	GroupGeneric        CategoryGroup = "generic"
)

// Group returns the coarse grouping a category belongs to.
func (c Category) Group() CategoryGroup {
	switch c {
	case CategoryCOF, CategoryREQ, CategoryABI:
		return GroupCoordination
	case CategoryFPL, CategoryCHG, CategoryCNL, CategoryDLA, CategoryDEP, CategoryARR, CategoryEST, CategorySPL:
		return GroupFlightPlan
	case CategoryNOTAM, CategoryMETAR, CategoryTAF, CategorySIGMET, CategoryAIRMET, CategoryATIS, CategoryVOLMET:
		return GroupMeteorological
	default:
		return GroupGeneric
	}
}

// categoryKeywords lists every recognized category keyword, grouped as in
// the Category constants. classify compares the body's whole first token
// against each entry, so no keyword can match as a prefix of another and
// the order does not affect the result; a slice keeps it stable and
// explicit rather than relying on map iteration order.
var categoryKeywords = []Category{
	CategoryCOF, CategoryREQ, CategoryABI,
	CategoryFPL, CategoryCHG, CategoryCNL, CategoryDLA, CategoryDEP, CategoryARR, CategoryEST, CategorySPL,
	CategoryNOTAM, CategoryMETAR, CategoryTAF, CategorySIGMET, CategoryAIRMET, CategoryATIS, CategoryVOLMET,
}
