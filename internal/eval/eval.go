package eval

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"calclab.net/texcalc/internal/token"
)

type rpnKind int

const (
	rpnNumber rpnKind = iota
	rpnString
	rpnIdent
	rpnOperator
	rpnUnary
	rpnCall
)

type rpnItem struct {
	kind rpnKind
	text string
	argc int
}

type opKind int

const (
	opOperator opKind = iota
	opUnary
	opParen
	opCall
)

type opEntry struct {
	kind opKind
	text string
	argc int
}

// Eval parses expr and evaluates it under sc. Any failure is returned as an
// error; Eval never panics on malformed input.
func Eval(expr string, sc *Scope) (Value, error) {
	if strings.TrimSpace(expr) == "" {
		return Value{}, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	items, err := lex(expr)
	if err != nil {
		return Value{}, err
	}
	rpn, err := toRPN(items)
	if err != nil {
		return Value{}, err
	}
	return evalRPN(rpn, sc)
}

// popUnary moves any pending unary signs to the output. A unary sign
// applies to the operand that immediately follows it, so it is flushed as
// soon as that operand has been emitted.
func popUnary(out []rpnItem, ops []opEntry) ([]rpnItem, []opEntry) {
	for len(ops) > 0 && ops[len(ops)-1].kind == opUnary {
		out = append(out, rpnItem{kind: rpnUnary, text: ops[len(ops)-1].text})
		ops = ops[:len(ops)-1]
	}
	return out, ops
}

// valueKind reports whether a token kind ends an operand, which decides
// whether a following + or - is binary.
func valueKind(k token.Kind) bool {
	switch k {
	case token.NUMBER, token.IDENT, token.STRING, token.RPAREN:
		return true
	}
	return false
}

func toRPN(items []Item) ([]rpnItem, error) {
	var out []rpnItem
	var ops []opEntry
	prev := token.EOF
	for i := 0; i < len(items); i++ {
		it := items[i]
		switch it.Kind {
		case token.EOF:
		case token.NUMBER:
			out = append(out, rpnItem{kind: rpnNumber, text: it.Text})
			out, ops = popUnary(out, ops)
		case token.STRING:
			out = append(out, rpnItem{kind: rpnString, text: it.Text})
			out, ops = popUnary(out, ops)
		case token.IDENT:
			if items[i+1].Kind != token.LPAREN {
				out = append(out, rpnItem{kind: rpnIdent, text: it.Text})
				out, ops = popUnary(out, ops)
				break
			}
			i++ // consume the argument list opener
			if items[i+1].Kind == token.RPAREN {
				i++
				out = append(out, rpnItem{kind: rpnCall, text: it.Text, argc: 0})
				out, ops = popUnary(out, ops)
				it.Kind = token.RPAREN
				break
			}
			ops = append(ops, opEntry{kind: opCall, text: it.Text, argc: 1})
			it.Kind = token.LPAREN
		case token.LPAREN:
			ops = append(ops, opEntry{kind: opParen})
		case token.COMMA:
			for len(ops) > 0 && ops[len(ops)-1].kind == opOperator {
				out = append(out, rpnItem{kind: rpnOperator, text: ops[len(ops)-1].text})
				ops = ops[:len(ops)-1]
			}
			if len(ops) == 0 || ops[len(ops)-1].kind != opCall {
				return nil, fmt.Errorf("%w: ',' outside argument list", ErrSyntax)
			}
			ops[len(ops)-1].argc++
		case token.RPAREN:
			for len(ops) > 0 && (ops[len(ops)-1].kind == opOperator || ops[len(ops)-1].kind == opUnary) {
				top := ops[len(ops)-1]
				kind := rpnOperator
				if top.kind == opUnary {
					kind = rpnUnary
				}
				out = append(out, rpnItem{kind: kind, text: top.text})
				ops = ops[:len(ops)-1]
			}
			if len(ops) == 0 {
				return nil, fmt.Errorf("%w: unmatched ')'", ErrSyntax)
			}
			top := ops[len(ops)-1]
			ops = ops[:len(ops)-1]
			if top.kind == opCall {
				out = append(out, rpnItem{kind: rpnCall, text: top.text, argc: top.argc})
			}
			// A closed group is a completed operand whether it was a call
			// or a plain parenthesization; a sign pending before the
			// opener applies to it now.
			out, ops = popUnary(out, ops)
		case token.OPERATOR:
			if !valueKind(prev) {
				switch it.Text {
				case "-":
					ops = append(ops, opEntry{kind: opUnary, text: "neg"})
				case "+":
					ops = append(ops, opEntry{kind: opUnary, text: "pos"})
				default:
					return nil, fmt.Errorf("%w: unexpected %q", ErrSyntax, it.Text)
				}
				break
			}
			prec := token.Precedence(it.Text)
			for len(ops) > 0 && ops[len(ops)-1].kind == opOperator {
				topPrec := token.Precedence(ops[len(ops)-1].text)
				if topPrec < prec || (topPrec == prec && token.RightAssoc(it.Text)) {
					break
				}
				out = append(out, rpnItem{kind: rpnOperator, text: ops[len(ops)-1].text})
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, opEntry{kind: opOperator, text: it.Text})
		default:
			return nil, fmt.Errorf("%w: unexpected token", ErrSyntax)
		}
		prev = it.Kind
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		switch top.kind {
		case opParen, opCall:
			return nil, fmt.Errorf("%w: unmatched '('", ErrSyntax)
		case opUnary:
			out = append(out, rpnItem{kind: rpnUnary, text: top.text})
		default:
			out = append(out, rpnItem{kind: rpnOperator, text: top.text})
		}
	}
	return out, nil
}

func popNumber(stack []Value) ([]Value, float64, error) {
	if len(stack) == 0 {
		return stack, 0, fmt.Errorf("%w: missing operand", ErrSyntax)
	}
	v := stack[len(stack)-1]
	if v.Kind != KindNumber {
		return stack, 0, ErrNotNumeric
	}
	return stack[:len(stack)-1], v.Num, nil
}

func evalRPN(rpn []rpnItem, sc *Scope) (Value, error) {
	var stack []Value
	var err error
	for _, it := range rpn {
		switch it.kind {
		case rpnNumber:
			x, perr := strconv.ParseFloat(it.text, 64)
			if perr != nil {
				return Value{}, fmt.Errorf("%w: bad number %q", ErrSyntax, it.text)
			}
			stack = append(stack, Number(x))
		case rpnString:
			stack = append(stack, String(it.text))
		case rpnIdent:
			v, ok := sc.Lookup(it.text)
			if !ok {
				return Value{}, fmt.Errorf("%w: %s", ErrUnknownIdent, it.text)
			}
			stack = append(stack, v)
		case rpnUnary:
			var x float64
			stack, x, err = popNumber(stack)
			if err != nil {
				return Value{}, err
			}
			if it.text == "neg" {
				x = -x
			}
			stack = append(stack, Number(x))
		case rpnOperator:
			var a, b float64
			stack, b, err = popNumber(stack)
			if err != nil {
				return Value{}, err
			}
			stack, a, err = popNumber(stack)
			if err != nil {
				return Value{}, err
			}
			var x float64
			switch it.text {
			case "+":
				x = a + b
			case "-":
				x = a - b
			case "*":
				x = a * b
			case "/":
				x = a / b
			case "^":
				x = math.Pow(a, b)
			}
			stack = append(stack, Number(x))
		case rpnCall:
			v, ok := sc.Lookup(it.text)
			if !ok {
				return Value{}, fmt.Errorf("%w: %s", ErrUnknownIdent, it.text)
			}
			if v.Kind != KindFunc {
				return Value{}, fmt.Errorf("%w: %s", ErrNotFunction, it.text)
			}
			fn := v.Fn
			if it.argc < fn.MinArgs || it.argc > fn.MaxArgs {
				return Value{}, fmt.Errorf("%w: %s takes %d to %d, got %d",
					ErrArity, fn.Name, fn.MinArgs, fn.MaxArgs, it.argc)
			}
			if len(stack) < it.argc {
				return Value{}, fmt.Errorf("%w: missing arguments to %s", ErrSyntax, fn.Name)
			}
			args := make([]Value, it.argc)
			copy(args, stack[len(stack)-it.argc:])
			stack = stack[:len(stack)-it.argc]
			res, cerr := fn.Call(args)
			if cerr != nil {
				return Value{}, cerr
			}
			stack = append(stack, res)
		}
	}
	if len(stack) != 1 {
		return Value{}, fmt.Errorf("%w: expression did not reduce", ErrSyntax)
	}
	return stack[0], nil
}
