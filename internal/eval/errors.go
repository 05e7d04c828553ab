package eval

import "errors"

var (
	// ErrSyntax indicates a malformed expression: unbalanced parentheses,
	// dangling operators, or leftover operands.
	ErrSyntax = errors.New("eval: malformed expression")
	// ErrUnknownIdent indicates an identifier with no scope binding.
	ErrUnknownIdent = errors.New("eval: unknown identifier")
	// ErrUnknownConstant indicates a __const reference whose key is absent
	// from the constants mapping.
	ErrUnknownConstant = errors.New("eval: unknown constant")
	// ErrNotFunction indicates call syntax applied to a non-function value.
	ErrNotFunction = errors.New("eval: not a function")
	// ErrNotNumeric indicates a string or function value where an
	// arithmetic operand was required.
	ErrNotNumeric = errors.New("eval: operand is not a number")
	// ErrArity indicates a call with the wrong number of arguments.
	ErrArity = errors.New("eval: wrong number of arguments")
	// ErrDomain indicates an argument outside a function's domain.
	ErrDomain = errors.New("eval: argument out of domain")
)
