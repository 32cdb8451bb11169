package nmea

import (
	"strconv"
	"strings"

	"atsparse/internal/nmea/ais"
)

const maxSentenceLength = 4096

// Parser holds the stateful AIS reassembly buffer. The core tokenizer,
// checksum verification, and per-type decoders are pure; only multi
// fragment AIVDM/AIVDO payloads require state across calls, so a Parser
// instance must be reused across a single AIS stream's fragments.
type Parser struct {
	aisBuf *ais.ReassemblyBuffer
}

// NewParser returns a Parser with a reassembly buffer of the recommended
// default capacity.
func NewParser() *Parser {
	return &Parser{aisBuf: ais.NewReassemblyBuffer(ais.DefaultCapacity)}
}

// Parse parses raw sentence text using a fresh, throwaway Parser. Callers
// that need to reassemble multi-fragment AIS payloads must construct a
// Parser with NewParser and reuse it across an AIS stream's fragments.
func Parse(text string) (*Message, error) {
	return NewParser().Parse(text)
}

var gpsDecoders = map[string]func(*Sentence) (Fix, error){
	"GGA": decodeGGA,
	"RMC": decodeRMC,
	"GSA": decodeGSA,
	"VTG": decodeVTG,
}

// Parse tokenizes, checksum-verifies, and decodes one NMEA sentence.
func (p *Parser) Parse(text string) (*Message, error) {
	if len(text) > maxSentenceLength {
		return nil, errFormat("sentence exceeds maximum length")
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, errFormat("empty sentence")
	}

	leader := trimmed[0]
	if leader != '$' && leader != '!' {
		return nil, errFormat("sentence must start with '$' or '!'")
	}

	starIdx := strings.IndexByte(trimmed, '*')
	if starIdx < 0 {
		return nil, errMissingChecksum()
	}
	body := trimmed[1:starIdx]
	checksumText := trimmed[starIdx+1:]
	if len(checksumText) < 2 {
		return nil, errFormat("checksum field too short")
	}
	checksumText = checksumText[:2]

	want, err := strconv.ParseUint(checksumText, 16, 8)
	if err != nil {
		return nil, errFormat("checksum %q is not two hex digits", checksumText)
	}
	got := computeChecksum(body)
	if byte(want) != got {
		return nil, errChecksum(strings.ToUpper(checksumText), formatChecksum(got))
	}

	parts := strings.Split(body, ",")
	if len(parts) == 0 || parts[0] == "" {
		return nil, errFormat("sentence has no identifier")
	}
	id := parts[0]
	if len(id) != 5 || !isUpperAlnum(id) {
		return nil, errMessageType(id)
	}
	talker, sentenceType := splitIdentifier(id)

	sentence := &Sentence{
		ID:       id,
		Talker:   talker,
		Type:     sentenceType,
		Fields:   parts[1:],
		Checksum: checksumText,
		Raw:      trimmed,
	}

	var fix Fix
	switch sentenceType {
	case "VDM", "VDO":
		fix, err = p.parseAIS(sentence)
	default:
		decodeFn, recognized := gpsDecoders[sentenceType]
		if !recognized {
			return nil, errMessageType(id)
		}
		fix, err = decodeFn(sentence)
	}
	if err != nil {
		return nil, err
	}
	if err := fix.Validate(); err != nil {
		return nil, err
	}

	return &Message{Sentence: *sentence, Body: fix}, nil
}
