package nmea

import "fmt"

// computeChecksum XORs every byte in s (the sentence body between the
// leading "$"/"!" and the trailing "*hh", exclusive of both).
func computeChecksum(s string) byte {
	var sum byte
	for i := 0; i < len(s); i++ {
		sum ^= s[i]
	}
	return sum
}

func formatChecksum(b byte) string {
	return fmt.Sprintf("%02X", b)
}
