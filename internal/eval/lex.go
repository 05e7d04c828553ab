package eval

import (
	"fmt"
	"strconv"
	"unicode"

	"calclab.net/texcalc/internal/token"
)

// Item is one lexed token. For STRING items Text holds the unquoted value.
type Item struct {
	Kind token.Kind
	Text string
}

func isDigitByte(c byte) bool { return c >= '0' && c <= '9' }
func isIdentStartByte(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
func isIdentByte(c byte) bool { return isIdentStartByte(c) || isDigitByte(c) }

// lex tokenizes a canonical expression string. Numbers carry optional
// decimal parts and [eE] exponents; identifiers follow
// [A-Za-z_][A-Za-z0-9_]*; string literals are double-quoted with Go escape
// rules.
func lex(s string) ([]Item, error) {
	var items []Item
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case unicode.IsSpace(rune(c)):
			i++
		case token.IsOperator(rune(c)):
			items = append(items, Item{token.OPERATOR, string(c)})
			i++
		case c == '(':
			items = append(items, Item{token.LPAREN, "("})
			i++
		case c == ')':
			items = append(items, Item{token.RPAREN, ")"})
			i++
		case c == ',':
			items = append(items, Item{token.COMMA, ","})
			i++
		case isDigitByte(c) || c == '.':
			j := i
			for j < len(s) && isDigitByte(s[j]) {
				j++
			}
			if j < len(s) && s[j] == '.' {
				j++
				for j < len(s) && isDigitByte(s[j]) {
					j++
				}
			}
			if j < len(s) && (s[j] == 'e' || s[j] == 'E') {
				k := j + 1
				if k < len(s) && (s[k] == '+' || s[k] == '-') {
					k++
				}
				if k < len(s) && isDigitByte(s[k]) {
					j = k
					for j < len(s) && isDigitByte(s[j]) {
						j++
					}
				}
			}
			text := s[i:j]
			if text == "." {
				return nil, fmt.Errorf("%w: stray '.'", ErrSyntax)
			}
			items = append(items, Item{token.NUMBER, text})
			i = j
		case isIdentStartByte(c):
			j := i
			for j < len(s) && isIdentByte(s[j]) {
				j++
			}
			items = append(items, Item{token.IDENT, s[i:j]})
			i = j
		case c == '"':
			j := i + 1
			for j < len(s) && s[j] != '"' {
				if s[j] == '\\' && j+1 < len(s) {
					j++
				}
				j++
			}
			if j >= len(s) {
				return nil, fmt.Errorf("%w: unterminated string literal", ErrSyntax)
			}
			text, err := strconv.Unquote(s[i : j+1])
			if err != nil {
				return nil, fmt.Errorf("%w: bad string literal", ErrSyntax)
			}
			items = append(items, Item{token.STRING, text})
			i = j + 1
		default:
			return nil, fmt.Errorf("%w: invalid character %q", ErrSyntax, c)
		}
	}
	return append(items, Item{Kind: token.EOF}), nil
}
