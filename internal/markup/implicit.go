package markup

import (
	"regexp"
	"strings"
)

// The two expanders run in a pinned order: multiplication insertion first,
// function-call insertion second. Multiplication insertion splits every
// coefficient boundary (2sin3 -> 2*sin3) so that call insertion afterwards
// only ever has to supply a missing argument list (-> 2*sin(3)). Swapping
// the order changes behavior for such inputs; tests pin this one.

var (
	// digit, closing paren, or the single-letter constant e, immediately
	// before an opening paren.
	reNumParen = regexp.MustCompile(`(\d|\)|\be)\(`)
	// closing paren immediately before a digit, constant, or identifier.
	reParenOperand = regexp.MustCompile(`\)([0-9A-Za-z_])`)
)

// insertImplicitMultiplication inserts explicit * at every juncture where
// calculator convention implies a product. Four ordered single passes;
// later rules see the output of earlier ones. String literals are never
// touched.
func insertImplicitMultiplication(s string) string {
	return mapOutsideLiterals(s, func(seg string) string {
		seg = reNumParen.ReplaceAllString(seg, "$1*(")
		seg = reParenOperand.ReplaceAllString(seg, ")*$1")
		seg = multDigitIdent(seg)
		seg = multIdentParen(seg)
		return seg
	})
}

// multDigitIdent inserts * between a digit and a following identifier
// start, except when the letter continues a scientific literal (2e3, 1E-5).
func multDigitIdent(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		b.WriteByte(s[i])
		if isDigit(s[i]) && i+1 < len(s) && isIdentStart(s[i+1]) && !isExpSuffix(s, i+1) {
			b.WriteByte('*')
		}
	}
	return b.String()
}

func isExpSuffix(s string, i int) bool {
	if s[i] != 'e' && s[i] != 'E' {
		return false
	}
	j := i + 1
	if j < len(s) && (s[j] == '+' || s[j] == '-') {
		j++
	}
	return j < len(s) && isDigit(s[j])
}

// multIdentParen inserts * between a bare identifier and a following
// opening paren, unless the identifier is a recognized function name (a
// function call must stay a call, not become a product).
func multIdentParen(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); {
		if !isIdentStart(s[i]) {
			b.WriteByte(s[i])
			i++
			continue
		}
		j := i
		for j < len(s) && isIdentChar(s[j]) {
			j++
		}
		name := s[i:j]
		b.WriteString(name)
		if j < len(s) && s[j] == '(' && !IsFunction(name) && name != ConstMarker {
			b.WriteByte('*')
		}
		i = j
	}
	return b.String()
}

// insertImplicitCalls wraps the single token following a recognized
// function name in parentheses when the name is not already followed by an
// argument list. Runs to a bounded fixed point so chained shorthand
// (sinsin1) is fully expanded.
func insertImplicitCalls(s string) string {
	for iter := 0; iter < rewriteCap(s); iter++ {
		t, changed := insertCallOnce(s)
		if !changed {
			return t
		}
		s = t
	}
	return s
}

// insertCallOnce performs the leftmost single call insertion, skipping
// string literals. Function names are tried longest first so a name is
// never misread as a shorter name that prefixes it.
func insertCallOnce(s string) (string, bool) {
	inLiteral := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inLiteral {
			if c == '\\' {
				i++
			} else if c == '"' {
				inLiteral = false
			}
			continue
		}
		if c == '"' {
			inLiteral = true
			continue
		}
		if !isIdentStart(c) || (i > 0 && isIdentChar(s[i-1])) {
			continue
		}
		for _, name := range funcsByLength {
			if !strings.HasPrefix(s[i:], name) {
				continue
			}
			j := i + len(name)
			if j < len(s) && s[j] == '(' {
				break // already a call; the boundary check skips inner prefixes
			}
			arg, end, ok := callArgument(s, j)
			if !ok {
				break
			}
			return s[:i] + name + "(" + arg + ")" + s[end:], true
		}
	}
	return s, false
}

// callArgument consumes the sole implied argument starting at i: a signed
// number (with optional decimal part and exponent suffix), a symbolic
// constant name at a word boundary, or a bare identifier.
func callArgument(s string, i int) (arg string, end int, ok bool) {
	if i >= len(s) {
		return "", 0, false
	}
	j := i
	if s[j] == '+' || s[j] == '-' {
		if j+1 >= len(s) || !(isDigit(s[j+1]) || s[j+1] == '.') {
			return "", 0, false
		}
		j++
	}
	if isDigit(s[j]) || s[j] == '.' {
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j < len(s) && s[j] == '.' {
			j++
			for j < len(s) && isDigit(s[j]) {
				j++
			}
		}
		if j < len(s) && (s[j] == 'e' || s[j] == 'E') && isExpSuffix(s, j) {
			j++
			if j < len(s) && (s[j] == '+' || s[j] == '-') {
				j++
			}
			for j < len(s) && isDigit(s[j]) {
				j++
			}
		}
		return s[i:j], j, true
	}
	if !isIdentStart(s[j]) {
		return "", 0, false
	}
	// Prefer a symbolic constant at a word boundary: sinpi reads as
	// sin(pi), not sin applied to an identifier named pi-something.
	for name := range constantNames {
		if strings.HasPrefix(s[j:], name) {
			k := j + len(name)
			if k >= len(s) || !isIdentChar(s[k]) {
				return s[i:k], k, true
			}
		}
	}
	for j < len(s) && isIdentChar(s[j]) {
		j++
	}
	return s[i:j], j, true
}
