package nmea

import (
	"strconv"

	"atsparse/internal/nmea/ais"
)

// AISFix wraps a decoded AIVDM/AIVDO payload.
type AISFix struct {
	Channel string
	Payload ais.Payload
}

func (f *AISFix) Type() string { return "AIS" }

func (f *AISFix) Validate() error {
	if f.Payload == nil {
		return errMissingField("payload")
	}
	return nil
}

// Position reports the payload's latitude/longitude when it is a position
// report (message types 1/2/3); other payload kinds (voyage data, the raw
// fallback) carry no position.
func (f *AISFix) Position() (lat, lon float64, ok bool) {
	pr, ok := f.Payload.(*ais.PositionReport)
	if !ok {
		return 0, 0, false
	}
	return pr.Latitude, pr.Longitude, true
}

// parseAIS handles one AIVDM/AIVDO sentence: fragment_count,
// fragment_number, sequence_id, channel, armored payload, fill_bits.
// Single-fragment sentences decode immediately; multi-fragment sentences
// accumulate in the parser's reassembly buffer until complete.
func (p *Parser) parseAIS(s *Sentence) (Fix, error) {
	fragCountStr, err := s.FieldRequired(0, "fragment_count")
	if err != nil {
		return nil, err
	}
	fragNumStr, err := s.FieldRequired(1, "fragment_number")
	if err != nil {
		return nil, err
	}
	seqIDStr, _ := s.Field(2) // optional; empty sequence_id is common for single-fragment payloads.
	channel, _ := s.Field(3)
	payload, err := s.FieldRequired(4, "payload")
	if err != nil {
		return nil, err
	}
	fillBitsStr, _ := s.Field(5)

	fragCount, err := strconv.Atoi(fragCountStr)
	if err != nil {
		return nil, errFieldValue("fragment_count", fragCountStr, "not an integer")
	}
	fragNum, err := strconv.Atoi(fragNumStr)
	if err != nil {
		return nil, errFieldValue("fragment_number", fragNumStr, "not an integer")
	}
	seqID := 0
	if seqIDStr != "" {
		seqID, err = strconv.Atoi(seqIDStr)
		if err != nil {
			return nil, errFieldValue("sequence_id", seqIDStr, "not an integer")
		}
	}
	fillBits := 0
	if fillBitsStr != "" {
		fillBits, err = strconv.Atoi(fillBitsStr)
		if err != nil {
			return nil, errFieldValue("fill_bits", fillBitsStr, "not an integer")
		}
	}

	var armored string
	if fragCount == 1 && fragNum == 1 {
		armored = payload
	} else {
		key := ais.StreamKey{Channel: channel, SequenceID: seqID}
		assembled, ready, err := p.aisBuf.Add(key, fragCount, fragNum, payload)
		if err != nil {
			return nil, errFormat("AIS fragment order")
		}
		if !ready {
			return nil, errParse("awaiting further AIS fragments before payload is complete")
		}
		armored = assembled
	}

	bits, err := ais.DecodeBits(armored, fillBits)
	if err != nil {
		return nil, errFormat("%s", err)
	}
	payloadDecoded, err := ais.Decode(bits)
	if err != nil {
		return nil, errFormat("%s", err)
	}
	return &AISFix{Channel: channel, Payload: payloadDecoded}, nil
}
