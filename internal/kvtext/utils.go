package kvtext

import "strings"

// unescape resolves \" and \\ sequences.
func unescape(s string) string {
	// Single-pass check: look for backslash which precedes all escapes
	if strings.IndexByte(s, '\\') == -1 {
		return s // Fast path: no backslashes = no escapes (zero allocation)
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && (s[i+1] == '\\' || s[i+1] == '"') {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// escape is the inverse of unescape.
func escape(s string) string {
	if strings.IndexAny(s, `\"`) == -1 {
		return s
	}
	s = strings.ReplaceAll(s, Backslash, EscapedBackslash)
	return strings.ReplaceAll(s, Quote, EscapedQuote)
}

// findClosingQuote finds the position of the closing quote in s,
// accounting for escaped quotes (preceded by an odd number of backslashes).
// Returns -1 if no valid closing quote is found.
// The search starts at position 1 (assuming the opening quote is at position 0).
func findClosingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		if s[i] == '"' {
			// Count consecutive backslashes before this quote
			numBackslashes := 0
			for j := i - 1; j >= 1 && s[j] == '\\'; j-- {
				numBackslashes++
			}
			// If odd number of backslashes, the quote is escaped
			if numBackslashes%2 == 1 {
				continue // Escaped quote, keep looking
			}
			return i
		}
	}
	return -1
}

// readQuoted parses a quoted string at the start of s and returns the
// unescaped content and the remainder after the closing quote.
func readQuoted(s string) (string, string, bool) {
	if !strings.HasPrefix(s, Quote) {
		return "", "", false
	}
	end := findClosingQuote(s)
	if end == -1 {
		return "", "", false
	}
	return unescape(s[1:end]), s[end+1:], true
}
