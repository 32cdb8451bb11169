package aftn

import "strings"

// maxMessageLength bounds the overall message size; AFTN telegrams are
// transmitted over a slow teletype-era network and this is a generous cap
// against pathological input rather than a protocol limit.
const maxMessageLength = 64 * 1024

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\v' || b == '\f' || b == '\r'
}

// normalizeLineEndings converts CRLF and lone CR to LF.
func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}

// tokenizeHeader walks s token by token (runs of whitespace as separators,
// collapsed) until it finds a 6-digit DDHHMM token, which marks the end of
// the header. It returns every header token including the time token, plus everything
// after the time token's trailing whitespace, untouched (the body keeps its
// own internal whitespace verbatim).
func tokenizeHeader(s string) (tokens []string, rest string, ok bool) {
	i, n := 0, len(s)
	for {
		for i < n && isSpace(s[i]) {
			i++
		}
		if i >= n {
			return tokens, "", false
		}
		start := i
		for i < n && !isSpace(s[i]) {
			i++
		}
		tok := s[start:i]
		tokens = append(tokens, tok)
		if transmissionTimePattern.MatchString(tok) {
			j := i
			for j < n && isSpace(s[j]) {
				j++
			}
			return tokens, s[j:], true
		}
		if len(tokens) > 64 {
			// No plausible AFTN header runs this long; bail rather than scan
			// the whole body looking for a 6-digit token that isn't there.
			return tokens, "", false
		}
	}
}

// stripTrailer removes a trailing "NNNN" end-of-message marker. Body bytes
// are preserved verbatim except for trimming the terminator.
func stripTrailer(body string) string {
	trimmed := strings.TrimRight(body, " \t\n\r")
	if strings.HasSuffix(trimmed, "NNNN") {
		trimmed = strings.TrimRight(trimmed[:len(trimmed)-4], " \t\n\r")
	}
	return trimmed
}

// classify extracts the category from the body's first whitespace-delimited
// token. An unrecognized or absent token classifies as Generic.
func classify(body string) Category {
	first := body
	if idx := strings.IndexAny(body, " \t\n\r"); idx >= 0 {
		first = body[:idx]
	}
	for _, c := range categoryKeywords {
		if first == string(c) {
			return c
		}
	}
	return CategoryGeneric
}

// bodyAfterKeyword strips the leading category keyword token (and the
// whitespace following it) from body, returning the sub-message content.
func bodyAfterKeyword(body string, category Category) string {
	if category == CategoryGeneric {
		return body
	}
	kw := string(category)
	if !strings.HasPrefix(body, kw) {
		return body
	}
	rest := body[len(kw):]
	i := 0
	for i < len(rest) && isSpace(rest[i]) {
		i++
	}
	return rest[i:]
}

// subMessageParsers dispatches a category tag to its sub-message parser.
var subMessageParsers = map[Category]func(body string) (SubMessage, error){
	CategoryCOF: func(b string) (SubMessage, error) { return parseCoordination(CategoryCOF, b) },
	CategoryREQ: func(b string) (SubMessage, error) { return parseCoordination(CategoryREQ, b) },
	CategoryABI: func(b string) (SubMessage, error) { return parseCoordination(CategoryABI, b) },

	CategoryFPL: func(b string) (SubMessage, error) { return parseFlightPlan(CategoryFPL, b) },
	CategoryCHG: func(b string) (SubMessage, error) { return parseFlightPlan(CategoryCHG, b) },
	CategoryCNL: func(b string) (SubMessage, error) { return parseFlightPlan(CategoryCNL, b) },
	CategoryDLA: func(b string) (SubMessage, error) { return parseFlightPlan(CategoryDLA, b) },
	CategoryDEP: func(b string) (SubMessage, error) { return parseFlightPlan(CategoryDEP, b) },
	CategoryARR: func(b string) (SubMessage, error) { return parseFlightPlan(CategoryARR, b) },
	CategoryEST: func(b string) (SubMessage, error) { return parseFlightPlan(CategoryEST, b) },
	CategorySPL: func(b string) (SubMessage, error) { return parseFlightPlan(CategorySPL, b) },

	CategoryNOTAM: func(b string) (SubMessage, error) { return parseNotam(b) },

	CategoryMETAR:  func(b string) (SubMessage, error) { return parseMetFamily(CategoryMETAR, b) },
	CategoryTAF:    func(b string) (SubMessage, error) { return parseMetFamily(CategoryTAF, b) },
	CategorySIGMET: func(b string) (SubMessage, error) { return parseMetFamily(CategorySIGMET, b) },
	CategoryAIRMET: func(b string) (SubMessage, error) { return parseMetFamily(CategoryAIRMET, b) },
	CategoryATIS:   func(b string) (SubMessage, error) { return parseMetFamily(CategoryATIS, b) },
	CategoryVOLMET: func(b string) (SubMessage, error) { return parseMetFamily(CategoryVOLMET, b) },
}

// Parse parses raw AFTN telegram text into a typed Message.
func Parse(text string) (*Message, error) {
	if len(text) > maxMessageLength {
		return nil, errTooLong(maxMessageLength, len(text))
	}

	normalized := strings.TrimSpace(normalizeLineEndings(text))
	if normalized == "" {
		return nil, errTooShort(1, 0)
	}

	tokens, rest, ok := tokenizeHeader(normalized)
	if !ok {
		return nil, errFormat("could not locate a 6-digit transmission time in the header")
	}
	if len(tokens) < 3 {
		return nil, errFormat("header too short: expected priority, origin, and at least one destination before the time field")
	}

	priority, err := ParsePriority(tokens[0])
	if err != nil {
		return nil, err
	}

	addrTokens := tokens[1 : len(tokens)-1]
	origin, err := ParseAddress(addrTokens[0])
	if err != nil {
		return nil, err
	}
	if len(addrTokens) < 2 {
		return nil, errFormat("at least one destination address is required")
	}
	destinations := make([]Address, 0, len(addrTokens)-1)
	for _, tok := range addrTokens[1:] {
		addr, err := ParseAddress(tok)
		if err != nil {
			return nil, err
		}
		destinations = append(destinations, addr)
	}

	txTime, err := ParseTransmissionTime(tokens[len(tokens)-1])
	if err != nil {
		return nil, err
	}

	body := stripTrailer(rest)
	category := classify(body)

	parseFn, recognized := subMessageParsers[category]
	if !recognized {
		parseFn = func(b string) (SubMessage, error) { return parseGeneric(b) }
	}
	sub, err := parseFn(bodyAfterKeyword(body, category))
	if err != nil {
		return nil, err
	}
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	return &Message{
		Priority:         priority,
		Addresses:        Addresses{Origin: origin, Destinations: destinations},
		TransmissionTime: txTime,
		Category:         category,
		Body:             sub,
		RawBody:          body,
		Raw:              normalized,
	}, nil
}
