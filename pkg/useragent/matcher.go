package useragent

// findFirstMatch scans table in declared order and returns the first
// signature that matches ua.
func findFirstMatch(table []Signature, ua string) (Signature, bool) {
	if ua == "" {
		return Signature{}, false
	}
	for _, s := range table {
		if s.Match(ua) {
			return s, true
		}
	}
	return Signature{}, false
}

// containsAnyBotSignature reports whether ua carries any bot signature.
func containsAnyBotSignature(ua string) bool {
	if ua == "" {
		return false
	}
	return botPattern.MatchString(ua)
}

// findBotToken returns the product token around the leftmost bot signature,
// e.g. "Googlebot" for "... (compatible; Googlebot/2.1; ...)".
// When two signatures start at the same position the earlier table entry wins.
func findBotToken(ua string) (string, bool) {
	if ua == "" {
		return "", false
	}
	loc := botPattern.FindStringIndex(ua)
	if loc == nil {
		return "", false
	}

	start, end := loc[0], loc[0]
	for start > 0 && isTokenByte(ua[start-1]) {
		start--
	}
	for end < len(ua) && isTokenByte(ua[end]) {
		end++
	}
	if end <= start {
		// Signature starts with a separator; fall back to the matched text.
		return ua[loc[0]:loc[1]], true
	}
	return ua[start:end], true
}

func isTokenByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-', c == '_', c == '.':
		return true
	}
	return false
}
