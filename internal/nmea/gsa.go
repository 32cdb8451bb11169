package nmea

// GSAFix is the GPS DOP and active satellites sentence.
type GSAFix struct {
	Mode       string // "M" manual, "A" automatic.
	FixType    int    // 1 = no fix, 2 = 2D, 3 = 3D.
	SatellitePRNs []string
	PDOP, HDOP, VDOP float64
}

func (f *GSAFix) Type() string { return "GSA" }

func (f *GSAFix) Validate() error {
	if f.FixType < 1 || f.FixType > 3 {
		return errFieldValue("fix_type", "", "expected 1, 2, or 3")
	}
	return nil
}

func decodeGSA(s *Sentence) (Fix, error) {
	mode, _ := s.Field(0)
	fixTypeRaw, err := s.FieldRequired(1, "fix_type")
	if err != nil {
		return nil, err
	}
	fixType, err := parseOptionalInt(fixTypeRaw, "fix_type")
	if err != nil {
		return nil, err
	}

	var prns []string
	for i := 2; i <= 13; i++ {
		if v, ok := s.Field(i); ok {
			prns = append(prns, v)
		}
	}

	pdopRaw, _ := s.Field(14)
	hdopRaw, _ := s.Field(15)
	vdopRaw, _ := s.Field(16)
	pdop, err := parseOptionalFloat(pdopRaw, "pdop")
	if err != nil {
		return nil, err
	}
	hdop, err := parseOptionalFloat(hdopRaw, "hdop")
	if err != nil {
		return nil, err
	}
	vdop, err := parseOptionalFloat(vdopRaw, "vdop")
	if err != nil {
		return nil, err
	}

	return &GSAFix{
		Mode:          mode,
		FixType:       fixType,
		SatellitePRNs: prns,
		PDOP:          pdop,
		HDOP:          hdop,
		VDOP:          vdop,
	}, nil
}
