// Package eval parses and evaluates canonical expression strings under an
// evaluation scope: a shunting-yard front end feeding an RPN machine over a
// small tagged value type.
package eval

// Kind discriminates Value variants.
type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindFunc
)

// Value is one operand on the evaluation stack: a number, a string literal,
// or a function. A bare function name with no argument list evaluates to a
// KindFunc value, which callers render as blank.
type Value struct {
	Kind Kind
	Num  float64
	Str  string
	Fn   *Builtin
}

// Builtin is a callable bound in a Scope.
type Builtin struct {
	Name    string
	MinArgs int
	MaxArgs int
	Call    func(args []Value) (Value, error)
}

// Number wraps a float64 as a Value.
func Number(x float64) Value { return Value{Kind: KindNumber, Num: x} }

// String wraps a string literal as a Value.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Function wraps a builtin as a Value.
func Function(f *Builtin) Value { return Value{Kind: KindFunc, Fn: f} }
