package nmea

import (
	"testing"

	"atsparse/internal/record"
)

func TestToRecordSurfacesPosition(t *testing.T) {
	msg, err := Parse("$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*47")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	var _ record.Recorder = msg
	r := msg.ToRecord()
	lat, ok := r["latitude"].(float64)
	if !ok || !almostEqual(lat, 48.1173, 1e-3) {
		t.Errorf("latitude = %v, want ~48.1173", r["latitude"])
	}
	if _, ok := r["longitude"].(float64); !ok {
		t.Error("longitude missing from record")
	}
}

func TestToRecordOmitsPositionWhenAbsent(t *testing.T) {
	body := "GPVTG,054.7,T,034.4,M,005.5,N,010.2,K"
	sum := computeChecksum(body)
	msg, err := Parse("$" + body + "*" + formatChecksum(sum))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	r := msg.ToRecord()
	if _, ok := r["latitude"]; ok {
		t.Errorf("latitude unexpectedly present: %v", r["latitude"])
	}
}
