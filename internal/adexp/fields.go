package adexp

// primaryFields lists the recognized ADEXP primary (leaf) field tags. An
// unrecognized tag is not a parse failure: it is stored as an opaque
// primary field, since the format evolves faster than any closed registry.
var primaryFields = map[string]bool{
	"ARCID":       true, // aircraft identification (callsign).
	"ADEP":        true, // aerodrome of departure.
	"ADES":        true, // aerodrome of destination.
	"EOBT":        true, // estimated off-block time.
	"ACTARR":      true, // actual arrival time.
	"ACTDEP":      true, // actual departure time.
	"ARCTYP":      true, // aircraft type.
	"SPEED":       true,
	"FLIGHTLEVEL": true,
	"SSRCODE":     true,
	"FLTRUL":      true, // flight rules (I/V/Y/Z).
	"FLTTYP":      true, // flight type (S/N/G/M/X).
	"WKTRC":       true, // wake turbulence category.
	"TITLE":       true, // message sub-type discriminator; reserved.
	"COMMENT":     true,
	"GEO":         true,
	"PTID":        true, // route point identifier.
	"SEQNUM":      true,
}

// compoundFields lists the recognized ADEXP compound (BEGIN/END-bracketed)
// field tags.
var compoundFields = map[string]bool{
	"ROUTE":       true,
	"PBN":         true,
	"DEPARTURE":   true,
	"ARRIVAL":     true,
	"FLIGHTPLAN":  true,
	"RTEPTS":      true,
	"RTEPTSTRUCT": true,
}

// reservedTitles lists the TITLE values that select a recognized message
// sub-type; any other TITLE value is rejected by Validate.
var reservedTitles = map[string]bool{
	"ARR": true,
	"DEP": true,
	"FPL": true,
	"CHG": true,
	"CNL": true,
	"DLA": true,
	"LAM": true,
	"RQP": true,
}

// IsPrimaryField reports whether tag is a recognized primary field.
func IsPrimaryField(tag string) bool { return primaryFields[tag] }

// IsCompoundField reports whether tag is a recognized compound field.
func IsCompoundField(tag string) bool { return compoundFields[tag] }

// IsValidField reports whether tag is any recognized field, primary or
// compound.
func IsValidField(tag string) bool { return primaryFields[tag] || compoundFields[tag] }

// IsReservedTitle reports whether value is a recognized TITLE value.
func IsReservedTitle(value string) bool { return reservedTitles[value] }
