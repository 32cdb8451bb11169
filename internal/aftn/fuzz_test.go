package aftn

import "testing"

// FuzzParse asserts the parser never panics, for any byte sequence.
func FuzzParse(f *testing.F) {
	f.Add("GG LFPGYYYX LFPOYYYX 151230 NOTAM A1234/24 LFPG RWY 09/27 CLOSED")
	f.Add("ZZ LFPGYYYX LFPOYYYX 151230 NOTAM A1234/24 LFPG")
	f.Add("")
	f.Add("GG LFPGYYYX LFPOYYYX 151230 FPL -7 AFR123")

	f.Fuzz(func(t *testing.T, in string) {
		_, _ = Parse(in)
	})
}
