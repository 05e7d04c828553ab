package markup

import "strings"

const (
	tokFrac = `\frac`
	tokRoot = `\sqrt`
)

// rewriteCap bounds every fixed-point rewrite loop. Each successful
// substitution strictly reduces the count of unexpanded trigger markers, so
// a well-formed input converges long before the cap; hitting the cap means
// malformed input and the current string is returned as-is.
func rewriteCap(s string) int { return 2*len(s) + 4 }

// Rewrite expands the structural markup constructs (fractions, roots,
// powers) into fully parenthesized canonical forms. Operands may themselves
// contain unexpanded constructs; each pass re-scans after substitution.
// Unparseable occurrences are skipped, not fatal.
func Rewrite(s string) string {
	s = expandFractions(s)
	s = expandRoots(s)
	s = expandPowers(s)
	return s
}

// fracOperand extracts one fraction operand starting at i: a brace group,
// or for the shorthand form a single bare digit/letter or one
// backslash-prefixed command token.
func fracOperand(s string, i int) (operand string, end int, ok bool) {
	if i >= len(s) {
		return "", 0, false
	}
	switch {
	case s[i] == '{':
		return ScanGroup(s, i)
	case s[i] == '\\':
		j := i + 1
		for j < len(s) && isLetter(s[j]) {
			j++
		}
		if j == i+1 {
			return "", 0, false
		}
		return s[i:j], j, true
	case isDigit(s[i]) || isLetter(s[i]):
		return s[i : i+1], i + 1, true
	}
	return "", 0, false
}

func expandFractions(s string) string {
	from := 0
	for iter := 0; iter < rewriteCap(s); iter++ {
		i := strings.Index(s[from:], tokFrac)
		if i < 0 {
			return s
		}
		i += from
		num, j, ok := fracOperand(s, i+len(tokFrac))
		if !ok {
			from = i + 1
			continue
		}
		den, k, ok := fracOperand(s, j)
		if !ok {
			from = i + 1
			continue
		}
		s = s[:i] + "((" + num + ")/(" + den + "))" + s[k:]
		from = 0
	}
	return s
}

func expandRoots(s string) string {
	from := 0
	for iter := 0; iter < rewriteCap(s); iter++ {
		i := strings.Index(s[from:], tokRoot)
		if i < 0 {
			return s
		}
		i += from
		j := i + len(tokRoot)
		var index string
		if j < len(s) && s[j] == '[' {
			idx, end, ok := ScanGroup(s, j)
			if !ok {
				from = i + 1
				continue
			}
			index, j = idx, end
		}
		if j >= len(s) || s[j] != '{' {
			from = i + 1
			continue
		}
		inner, end, ok := ScanGroup(s, j)
		if !ok {
			from = i + 1
			continue
		}
		if index == "" {
			s = s[:i] + "sqrt(" + inner + ")" + s[end:]
		} else {
			s = s[:i] + "((" + inner + ")^(1/(" + index + ")))" + s[end:]
		}
		from = 0
	}
	return s
}

// powerBase extracts the base of a power construct ending just before the
// '^' at caret: a trailing parenthesized/bracketed/braced group, or a
// maximal trailing run of identifier and digit characters.
func powerBase(s string, caret int) (inner string, start int, ok bool) {
	if caret == 0 {
		return "", 0, false
	}
	switch s[caret-1] {
	case ')':
		return scanGroupBack(s, caret, '(', ')')
	case ']':
		return scanGroupBack(s, caret, '[', ']')
	case '}':
		return scanGroupBack(s, caret, '{', '}')
	}
	start = caret
	for start > 0 && isBaseChar(s[start-1]) {
		start--
	}
	if start == caret {
		return "", 0, false
	}
	return s[start:caret], start, true
}

func expandPowers(s string) string {
	from := 0
	for iter := 0; iter < rewriteCap(s); iter++ {
		i := strings.Index(s[from:], "^{")
		if i < 0 {
			return s
		}
		i += from
		exp, end, ok := ScanGroup(s, i+1)
		if !ok {
			from = i + 1
			continue
		}
		base, start, ok := powerBase(s, i)
		if !ok {
			from = i + 1
			continue
		}
		s = s[:start] + "(" + base + ")^(" + exp + ")" + s[end:]
		from = 0
	}
	return s
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }

func isIdentStart(c byte) bool { return isLetter(c) || c == '_' }
func isIdentChar(c byte) bool  { return isIdentStart(c) || isDigit(c) }

// isBaseChar matches the characters a bare power base may consist of.
func isBaseChar(c byte) bool { return isIdentChar(c) || c == '.' }
