// Package token defines the token kinds of the canonical expression grammar.
package token

// Kind classifies a lexed expression token.
type Kind int

const (
	EOF Kind = iota
	NUMBER
	IDENT
	STRING
	OPERATOR
	LPAREN
	RPAREN
	COMMA
	ILLEGAL
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case NUMBER:
		return "NUMBER"
	case IDENT:
		return "IDENT"
	case STRING:
		return "STRING"
	case OPERATOR:
		return "OPERATOR"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case COMMA:
		return "COMMA"
	case ILLEGAL:
		return "ILLEGAL"
	}
	return "UNKNOWN"
}

// IsOperator reports whether r is a binary operator rune of the
// canonical expression grammar.
func IsOperator(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '^':
		return true
	}
	return false
}

// Precedence returns the binding strength of a binary operator.
// Higher binds tighter. Unknown operators get zero.
func Precedence(op string) int {
	switch op {
	case "+", "-":
		return 1
	case "*", "/":
		return 2
	case "^":
		return 3
	}
	return 0
}

// RightAssoc reports whether the operator associates to the right.
// Only exponentiation does: a^b^c parses as a^(b^c).
func RightAssoc(op string) bool {
	return op == "^"
}
