// Package markup translates editor math markup (or a plain-text fallback)
// into canonical expression strings the evaluator can parse.
//
// The pipeline is a fixed sequence of pure string rewrites: structural
// expansion of fractions, roots and powers; token-level normalization of
// delimiters, symbols and constant embeds; then insertion of the implicit
// multiplication and implicit function-call syntax that calculator input
// conventions allow users to omit.
package markup

// ScanGroup scans s from an opening delimiter at start ('{' or '[') and
// returns the enclosed content plus the index one past the matching closing
// delimiter. Nesting of the same delimiter pair is respected; other
// delimiter types are ignored. ok is false when s[start] is not a supported
// opener or the string ends before the group closes.
func ScanGroup(s string, start int) (inner string, end int, ok bool) {
	if start < 0 || start >= len(s) {
		return "", 0, false
	}
	var open, close byte
	switch s[start] {
	case '{':
		open, close = '{', '}'
	case '[':
		open, close = '[', ']'
	default:
		return "", 0, false
	}
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[start+1 : i], i + 1, true
			}
		}
	}
	return "", 0, false
}

// scanGroupBack finds the opening delimiter matching the closer at end-1,
// where s[end-1] must be close. Returns the index of the opener and the
// enclosed content. ok is false on imbalance.
func scanGroupBack(s string, end int, open, close byte) (inner string, start int, ok bool) {
	if end <= 0 || end > len(s) || s[end-1] != close {
		return "", 0, false
	}
	depth := 0
	for i := end - 1; i >= 0; i-- {
		switch s[i] {
		case close:
			depth++
		case open:
			depth--
			if depth == 0 {
				return s[i+1 : end-1], i, true
			}
		}
	}
	return "", 0, false
}
