package nmea

import (
	"strconv"

	"atsparse/internal/patterns"
)

// GGAFix is the GPS fix data sentence: UTC time, position, fix quality,
// satellite count, HDOP, and altitude.
type GGAFix struct {
	UTCTime      string
	Latitude     float64
	Longitude    float64
	FixQuality   int
	Satellites   int
	HDOP         float64
	Altitude     float64
	GeoidSep     float64
}

func (f *GGAFix) Type() string { return "GGA" }

func (f *GGAFix) Position() (lat, lon float64, ok bool) { return f.Latitude, f.Longitude, true }

func (f *GGAFix) Validate() error {
	if f.FixQuality < 0 || f.FixQuality > 8 {
		return errFieldValue("fix_quality", strconv.Itoa(f.FixQuality), "expected 0..8")
	}
	if f.Latitude < -90 || f.Latitude > 90 {
		return errCoordinate("latitude", strconv.FormatFloat(f.Latitude, 'f', -1, 64))
	}
	if f.Longitude < -180 || f.Longitude > 180 {
		return errCoordinate("longitude", strconv.FormatFloat(f.Longitude, 'f', -1, 64))
	}
	return nil
}

func decodeGGA(s *Sentence) (Fix, error) {
	utc, _ := s.Field(0)
	latRaw, _ := s.Field(1)
	latDir, _ := s.Field(2)
	lonRaw, _ := s.Field(3)
	lonDir, _ := s.Field(4)
	fixQualityRaw, _ := s.Field(5)
	satellitesRaw, _ := s.Field(6)
	hdopRaw, _ := s.Field(7)
	altitudeRaw, _ := s.Field(8)
	geoidRaw, _ := s.Field(10)

	fixQuality, err := parseOptionalInt(fixQualityRaw, "fix_quality")
	if err != nil {
		return nil, err
	}
	satellites, err := parseOptionalInt(satellitesRaw, "satellites")
	if err != nil {
		return nil, err
	}
	hdop, err := parseOptionalFloat(hdopRaw, "hdop")
	if err != nil {
		return nil, err
	}
	altitude, err := parseOptionalFloat(altitudeRaw, "altitude")
	if err != nil {
		return nil, err
	}
	geoid, err := parseOptionalFloat(geoidRaw, "geoid_separation")
	if err != nil {
		return nil, err
	}

	return &GGAFix{
		UTCTime:    utc,
		Latitude:   patterns.ParseLatitude(latRaw, latDir),
		Longitude:  patterns.ParseLongitude(lonRaw, lonDir),
		FixQuality: fixQuality,
		Satellites: satellites,
		HDOP:       hdop,
		Altitude:   altitude,
		GeoidSep:   geoid,
	}, nil
}

func parseOptionalInt(s, field string) (int, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errFieldValue(field, s, "not an integer")
	}
	return v, nil
}

func parseOptionalFloat(s, field string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errFieldValue(field, s, "not a number")
	}
	return v, nil
}
