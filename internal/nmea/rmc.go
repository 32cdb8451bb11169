package nmea

import (
	"strconv"

	"atsparse/internal/patterns"
)

// RMCFix is the recommended minimum navigation sentence: time, fix status,
// position, speed, course, and date.
type RMCFix struct {
	UTCTime          string
	Status           string // "A" active, "V" void.
	Latitude         float64
	Longitude        float64
	SpeedKnots       float64
	CourseDegrees    float64
	Date             string
	MagneticVariation float64
}

func (f *RMCFix) Type() string { return "RMC" }

func (f *RMCFix) Position() (lat, lon float64, ok bool) { return f.Latitude, f.Longitude, true }

func (f *RMCFix) Validate() error {
	if f.Status != "A" && f.Status != "V" {
		return errFieldValue("status", f.Status, `expected "A" or "V"`)
	}
	if f.Latitude < -90 || f.Latitude > 90 {
		return errCoordinate("latitude", strconv.FormatFloat(f.Latitude, 'f', -1, 64))
	}
	if f.Longitude < -180 || f.Longitude > 180 {
		return errCoordinate("longitude", strconv.FormatFloat(f.Longitude, 'f', -1, 64))
	}
	return nil
}

func decodeRMC(s *Sentence) (Fix, error) {
	utc, _ := s.Field(0)
	status, err := s.FieldRequired(1, "status")
	if err != nil {
		return nil, err
	}
	latRaw, _ := s.Field(2)
	latDir, _ := s.Field(3)
	lonRaw, _ := s.Field(4)
	lonDir, _ := s.Field(5)
	speedRaw, _ := s.Field(6)
	courseRaw, _ := s.Field(7)
	date, _ := s.Field(8)
	varRaw, _ := s.Field(9)
	varDir, _ := s.Field(10)

	speed, err := parseOptionalFloat(speedRaw, "speed_over_ground")
	if err != nil {
		return nil, err
	}
	course, err := parseOptionalFloat(courseRaw, "course_over_ground")
	if err != nil {
		return nil, err
	}

	return &RMCFix{
		UTCTime:           utc,
		Status:            status,
		Latitude:          patterns.ParseLatitude(latRaw, latDir),
		Longitude:         patterns.ParseLongitude(lonRaw, lonDir),
		SpeedKnots:        speed,
		CourseDegrees:     course,
		Date:              date,
		MagneticVariation: patterns.ParseDecimalCoord(varRaw, varDir),
	}, nil
}
