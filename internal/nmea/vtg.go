package nmea

// VTGFix is the track made good and ground speed sentence.
type VTGFix struct {
	CourseTrue     float64
	CourseMagnetic float64
	SpeedKnots     float64
	SpeedKmh       float64
}

func (f *VTGFix) Type() string { return "VTG" }

func (f *VTGFix) Validate() error {
	if f.CourseTrue < 0 || f.CourseTrue > 360 {
		return errFieldValue("course_true", "", "expected 0..360")
	}
	return nil
}

func decodeVTG(s *Sentence) (Fix, error) {
	courseTrueRaw, _ := s.Field(0)
	courseMagRaw, _ := s.Field(2)
	speedKnotsRaw, _ := s.Field(4)
	speedKmhRaw, _ := s.Field(6)

	courseTrue, err := parseOptionalFloat(courseTrueRaw, "course_true")
	if err != nil {
		return nil, err
	}
	courseMag, err := parseOptionalFloat(courseMagRaw, "course_magnetic")
	if err != nil {
		return nil, err
	}
	speedKnots, err := parseOptionalFloat(speedKnotsRaw, "speed_knots")
	if err != nil {
		return nil, err
	}
	speedKmh, err := parseOptionalFloat(speedKmhRaw, "speed_kmh")
	if err != nil {
		return nil, err
	}

	return &VTGFix{
		CourseTrue:     courseTrue,
		CourseMagnetic: courseMag,
		SpeedKnots:     speedKnots,
		SpeedKmh:       speedKmh,
	}, nil
}
