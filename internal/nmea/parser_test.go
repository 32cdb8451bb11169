package nmea

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestParseGGASeed(t *testing.T) {
	input := "$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*47"
	msg, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	gga, ok := msg.Body.(*GGAFix)
	if !ok {
		t.Fatalf("Body type = %T, want *GGAFix", msg.Body)
	}
	if !almostEqual(gga.Latitude, 48.1173, 1e-3) {
		t.Errorf("Latitude = %v, want ~48.1173", gga.Latitude)
	}
	if !almostEqual(gga.Longitude, 11.5167, 1e-3) {
		t.Errorf("Longitude = %v, want ~11.5167", gga.Longitude)
	}
	if gga.FixQuality != 1 {
		t.Errorf("FixQuality = %d, want 1", gga.FixQuality)
	}
	if gga.Satellites != 8 {
		t.Errorf("Satellites = %d, want 8", gga.Satellites)
	}
	if !almostEqual(gga.Altitude, 545.4, 1e-6) {
		t.Errorf("Altitude = %v, want 545.4", gga.Altitude)
	}
}

func TestParseGGABadChecksum(t *testing.T) {
	input := "$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*48"
	_, err := Parse(input)
	var nmeaErr *Error
	if !errors.As(err, &nmeaErr) || nmeaErr.Kind != KindInvalidChecksum {
		t.Fatalf("err = %v, want InvalidChecksum", err)
	}
}

func TestParseMissingLeader(t *testing.T) {
	_, err := Parse("GPGGA,123519*47")
	var nmeaErr *Error
	if !errors.As(err, &nmeaErr) || nmeaErr.Kind != KindInvalidFormat {
		t.Fatalf("err = %v, want InvalidFormat", err)
	}
}

func TestParseMissingChecksumMarker(t *testing.T) {
	_, err := Parse("$GPGGA,123519")
	var nmeaErr *Error
	if !errors.As(err, &nmeaErr) || nmeaErr.Kind != KindMissingChecksum {
		t.Fatalf("err = %v, want MissingChecksum", err)
	}
}

func TestParseUnknownSentenceType(t *testing.T) {
	// A syntactically valid, checksum-correct sentence with an unsupported type.
	body := "GPZZZ,1,2,3"
	sum := computeChecksum(body)
	input := "$" + body + "*" + formatChecksum(sum)
	_, err := Parse(input)
	var nmeaErr *Error
	if !errors.As(err, &nmeaErr) || nmeaErr.Kind != KindInvalidMessageType {
		t.Fatalf("err = %v, want InvalidMessageType", err)
	}
}

func TestParseRMC(t *testing.T) {
	body := "GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W"
	sum := computeChecksum(body)
	input := "$" + body + "*" + formatChecksum(sum)
	msg, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	rmc, ok := msg.Body.(*RMCFix)
	if !ok {
		t.Fatalf("Body type = %T, want *RMCFix", msg.Body)
	}
	if rmc.Status != "A" {
		t.Errorf("Status = %q, want A", rmc.Status)
	}
	if !almostEqual(rmc.SpeedKnots, 22.4, 1e-6) {
		t.Errorf("SpeedKnots = %v, want 22.4", rmc.SpeedKnots)
	}
}

func TestParseVTG(t *testing.T) {
	body := "GPVTG,054.7,T,034.4,M,005.5,N,010.2,K"
	sum := computeChecksum(body)
	input := "$" + body + "*" + formatChecksum(sum)
	msg, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	vtg, ok := msg.Body.(*VTGFix)
	if !ok {
		t.Fatalf("Body type = %T, want *VTGFix", msg.Body)
	}
	if !almostEqual(vtg.CourseTrue, 54.7, 1e-6) {
		t.Errorf("CourseTrue = %v, want 54.7", vtg.CourseTrue)
	}
}

func TestParseGSA(t *testing.T) {
	body := "GPGSA,A,3,04,05,,09,12,,,24,,,,,2.5,1.3,2.1"
	sum := computeChecksum(body)
	input := "$" + body + "*" + formatChecksum(sum)
	msg, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	gsa, ok := msg.Body.(*GSAFix)
	if !ok {
		t.Fatalf("Body type = %T, want *GSAFix", msg.Body)
	}
	if gsa.Mode != "A" {
		t.Errorf("Mode = %q, want A", gsa.Mode)
	}
	if gsa.FixType != 3 {
		t.Errorf("FixType = %d, want 3", gsa.FixType)
	}
	wantPRNs := []string{"04", "05", "09", "12", "24"}
	if len(gsa.SatellitePRNs) != len(wantPRNs) {
		t.Fatalf("SatellitePRNs = %v, want %v", gsa.SatellitePRNs, wantPRNs)
	}
	for i, prn := range wantPRNs {
		if gsa.SatellitePRNs[i] != prn {
			t.Errorf("SatellitePRNs[%d] = %q, want %q", i, gsa.SatellitePRNs[i], prn)
		}
	}
	if !almostEqual(gsa.PDOP, 2.5, 1e-6) {
		t.Errorf("PDOP = %v, want 2.5", gsa.PDOP)
	}
}

func TestParseAISSingleFragment(t *testing.T) {
	input := "!AIVDM,1,1,,A,15M67FC000G?ufBE`ahNbSqj0H6s,0*51"
	msg, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	ais, ok := msg.Body.(*AISFix)
	if !ok {
		t.Fatalf("Body type = %T, want *AISFix", msg.Body)
	}
	if ais.Payload.MessageType() != 1 {
		t.Errorf("MessageType = %d, want 1", ais.Payload.MessageType())
	}
}
