package nmea

import "testing"

func TestValidateAcceptsParsedMessage(t *testing.T) {
	msg, err := Parse("$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*47")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if err := Validate(msg); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidateRejectsNilBody(t *testing.T) {
	if err := Validate(&Message{}); err == nil {
		t.Fatal("Validate() error = nil, want MissingField for nil body")
	}
}
