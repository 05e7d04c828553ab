package markup

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// ConstMarker is the internal function a constant embed compiles to. The
// evaluation scope resolves its quoted-string argument through the user
// constants mapping, keeping a deliberately inserted constant reference
// distinct from a typed bare identifier.
const ConstMarker = "__const"

const embedOpen = `\embed{constant}`

var (
	reOperatorName = regexp.MustCompile(`\\operatorname\{([A-Za-z0-9]+)\}`)
	reChoose       = regexp.MustCompile(`\b(\d+(?:\.\d+)?)nCr(\d+(?:\.\d+)?)\b`)
	rePermute      = regexp.MustCompile(`\b(\d+(?:\.\d+)?)nPr(\d+(?:\.\d+)?)\b`)
)

// Normalize runs the full translation pipeline: structural rewriters, then
// the token-level normalizer chain, then the implicit-syntax expanders. The
// result is a canonical expression string; Normalize applied to its own
// output returns it unchanged.
func Normalize(s string) string {
	s = Rewrite(s)
	s = collapseDelimiters(s)
	s = convertBrackets(s)
	s = unwrapOperatorNames(s)
	s = convertEmbeds(s)
	s = substituteSymbols(s)
	s = stripSpace(s)
	s = rewriteChoosePermute(s)
	s = insertImplicitMultiplication(s)
	s = insertImplicitCalls(s)
	return s
}

// collapseDelimiters reduces the paired big-delimiter markers to plain
// parentheses. \left| pairs are left for convertBrackets.
func collapseDelimiters(s string) string {
	r := strings.NewReplacer(
		`\left(`, "(",
		`\right)`, ")",
		`\left[`, "(",
		`\right]`, ")",
	)
	return r.Replace(s)
}

// replaceBracketed rewrites open…close spans as fn(…), innermost first:
// the rightmost opener is always innermost, so pairing it with the nearest
// closer after it is safe for nested and sequential occurrences alike.
func replaceBracketed(s, open, close, fn string) string {
	for iter := 0; iter < rewriteCap(s); iter++ {
		i := strings.LastIndex(s, open)
		if i < 0 {
			return s
		}
		j := strings.Index(s[i+len(open):], close)
		if j < 0 {
			return s
		}
		j += i + len(open)
		s = s[:i] + fn + "(" + s[i+len(open):j] + ")" + s[j+len(close):]
	}
	return s
}

func convertBrackets(s string) string {
	s = replaceBracketed(s, `\left|`, `\right|`, "abs")
	s = replaceBracketed(s, `\lfloor`, `\rfloor`, "floor")
	s = replaceBracketed(s, `\lceil`, `\rceil`, "ceil")
	return s
}

func unwrapOperatorNames(s string) string {
	return reOperatorName.ReplaceAllString(s, "$1")
}

// convertEmbeds turns \embed{constant}[key] badges into __const("key")
// calls. The key is whatever the bracket group holds; it is quoted, not
// trusted, so arbitrary keys cannot inject expression syntax.
func convertEmbeds(s string) string {
	from := 0
	for iter := 0; iter < rewriteCap(s); iter++ {
		i := strings.Index(s[from:], embedOpen)
		if i < 0 {
			return s
		}
		i += from
		j := i + len(embedOpen)
		if j >= len(s) || s[j] != '[' {
			from = i + 1
			continue
		}
		key, end, ok := ScanGroup(s, j)
		if !ok || strings.ContainsRune(key, '\n') {
			from = i + 1
			continue
		}
		repl := ConstMarker + "(" + strconv.Quote(key) + ")"
		s = s[:i] + repl + s[end:]
		from = i + len(repl)
	}
	return s
}

// mapOutsideLiterals applies f to every maximal run of text outside
// double-quoted string literals, leaving literal spans (and their quotes)
// untouched. Backslash escapes inside literals are honored.
func mapOutsideLiterals(s string, f func(string) string) string {
	var b strings.Builder
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '"' {
			continue
		}
		b.WriteString(f(s[start:i]))
		j := i + 1
		for j < len(s) {
			if s[j] == '\\' && j+1 < len(s) {
				j += 2
				continue
			}
			if s[j] == '"' {
				break
			}
			j++
		}
		if j >= len(s) { // unterminated literal: keep the tail verbatim
			b.WriteString(s[i:])
			return b.String()
		}
		b.WriteString(s[i : j+1])
		start = j + 1
		i = j
	}
	b.WriteString(f(s[start:]))
	return b.String()
}

func substituteSymbols(s string) string {
	return mapOutsideLiterals(s, func(seg string) string {
		for _, sub := range symbolSubs {
			seg = strings.ReplaceAll(seg, sub.from, sub.to)
		}
		return seg
	})
}

func stripSpace(s string) string {
	return mapOutsideLiterals(s, func(seg string) string {
		return strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, seg)
	})
}

// rewriteChoosePermute converts the nCr/nPr infix shorthand to canonical
// function calls: 5nCr2 becomes combinations(5,2). Operands are numeric and
// bounded at word edges; the marker letters spelled inside a longer
// identifier (annCr2, x2nCr3) are left alone.
func rewriteChoosePermute(s string) string {
	return mapOutsideLiterals(s, func(seg string) string {
		seg = reChoose.ReplaceAllString(seg, "combinations($1,$2)")
		seg = rePermute.ReplaceAllString(seg, "permutations($1,$2)")
		return seg
	})
}
