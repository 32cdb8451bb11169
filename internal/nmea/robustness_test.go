package nmea

import "testing"

func TestParseNeverPanics(t *testing.T) {
	inputs := []string{
		"",
		"$",
		"$*",
		"$GPGGA",
		"$GPGGA*",
		"$GPGGA,,,,,,,,,,,,,,*00",
		"!AIVDM,2,1,9,A,abc,0*00",
		"!AIVDM,1,1,,A,,0*00",
		"\x00\x01\x02",
		"$" + string(make([]byte, 5000)) + "*00",
	}
	for _, in := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Parse(%q) panicked: %v", in, r)
				}
			}()
			_, _ = Parse(in)
		}()
	}
}
