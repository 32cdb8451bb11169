package aftn

import (
	"testing"

	"atsparse/internal/record"
)

func TestToRecordSatisfiesRecorder(t *testing.T) {
	msg, err := Parse("GG LFPGYYYX LFPOYYYX 151230 NOTAM A1234/24 LFPG RWY 09/27 CLOSED")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	var _ record.Recorder = msg
	r := msg.ToRecord()
	if r["family"] != "AFTN" {
		t.Errorf("family = %v, want AFTN", r["family"])
	}
	if r["category"] != "NOTAM" {
		t.Errorf("category = %v, want NOTAM", r["category"])
	}
}
