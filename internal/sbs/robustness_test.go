package sbs

import "testing"

func TestParseNeverPanics(t *testing.T) {
	inputs := []string{
		"",
		"MSG",
		"MSG,",
		"MSG,9,111,11111,A12345,111111,2016/03/11,09:30:00.000,2016/03/11,09:30:00.000,,12000,,,51.5,-0.1,,,,,0,0",
		"\x00\x01\x02",
		"MSG,3,111,11111,A12345,111111,2016/03/11,09:30:00.000,2016/03/11,09:30:00.000,,abc,,,51.5,-0.1,,,,,0,0",
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
