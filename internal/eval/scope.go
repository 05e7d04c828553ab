package eval

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// AngleUnit selects how the trigonometric bindings interpret angles.
type AngleUnit int

const (
	Radians AngleUnit = iota
	Degrees
)

// String returns the string representation of an angle unit.
func (u AngleUnit) String() string {
	if u == Degrees {
		return "degrees"
	}
	return "radians"
}

// ParseAngleUnit parses a string into an AngleUnit.
func ParseAngleUnit(s string) (AngleUnit, bool) {
	switch strings.ToLower(s) {
	case "radians", "rad":
		return Radians, true
	case "degrees", "deg":
		return Degrees, true
	}
	return Radians, false
}

// identRx is the identifier grammar a constant key must match to be bound
// as a plain variable. Keys failing it remain reachable through __const.
var identRx = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Scope holds the name bindings for one evaluation pass. It is rebuilt
// fresh per pass and never shared between concurrent passes.
type Scope struct {
	parent *Scope
	vars   map[string]Value
	consts map[string]float64
	unit   AngleUnit
}

// Lookup resolves a name, innermost scope first.
func (s *Scope) Lookup(name string) (Value, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if v, ok := sc.vars[name]; ok {
			return v, true
		}
	}
	return Value{}, false
}

// SetAnswer rebinds the last-answer variable under both spellings.
func (s *Scope) SetAnswer(x float64) {
	s.vars["ans"] = Number(x)
	s.vars["Ans"] = Number(x)
}

// child returns an overlay scope with one extra numeric binding, used for
// the integration variable.
func (s *Scope) child(name string, x float64) *Scope {
	return &Scope{
		parent: s,
		vars:   map[string]Value{name: Number(x)},
		consts: s.consts,
		unit:   s.unit,
	}
}

// NewScope assembles the evaluation bindings for one pass: trigonometry
// under the given angle unit, the logarithm family, the numeric-integration
// helper, symbolic constants, and every valid key of the user constants
// mapping. The mapping itself backs the __const marker function, including
// keys that fail the identifier grammar.
func NewScope(unit AngleUnit, consts map[string]float64) *Scope {
	s := &Scope{
		vars:   make(map[string]Value, len(consts)+40),
		consts: consts,
		unit:   unit,
	}
	for k, v := range consts {
		if identRx.MatchString(k) {
			s.vars[k] = Number(v)
		}
	}
	s.vars["pi"] = Number(math.Pi)
	s.vars["tau"] = Number(2 * math.Pi)
	s.vars["e"] = Number(math.E)
	s.SetAnswer(0)
	s.bindFunctions()
	return s
}

func (s *Scope) fn1(name string, f func(float64) float64) {
	s.vars[name] = Function(&Builtin{
		Name:    name,
		MinArgs: 1,
		MaxArgs: 1,
		Call: func(args []Value) (Value, error) {
			x, err := numArg(name, args[0])
			if err != nil {
				return Value{}, err
			}
			return Number(f(x)), nil
		},
	})
}

func numArg(name string, v Value) (float64, error) {
	if v.Kind != KindNumber {
		return 0, fmt.Errorf("%w: argument to %s", ErrNotNumeric, name)
	}
	return v.Num, nil
}

func (s *Scope) bindFunctions() {
	sinF, cosF, tanF := math.Sin, math.Cos, math.Tan
	asinF, acosF, atanF := math.Asin, math.Acos, math.Atan
	if s.unit == Degrees {
		sinF = degIn(math.Sin)
		cosF = degIn(math.Cos)
		tanF = degIn(math.Tan)
		asinF = degOut(math.Asin)
		acosF = degOut(math.Acos)
		atanF = degOut(math.Atan)
	}
	s.fn1("sin", sinF)
	s.fn1("cos", cosF)
	s.fn1("tan", tanF)
	s.fn1("asin", asinF)
	s.fn1("acos", acosF)
	s.fn1("atan", atanF)
	// Reciprocal trig is built from the unit-aware bindings above.
	s.fn1("csc", func(x float64) float64 { return 1 / sinF(x) })
	s.fn1("sec", func(x float64) float64 { return 1 / cosF(x) })
	s.fn1("cot", func(x float64) float64 { return 1 / tanF(x) })
	// Hyperbolic arguments are not angles; the unit never applies.
	s.fn1("sinh", math.Sinh)
	s.fn1("cosh", math.Cosh)
	s.fn1("tanh", math.Tanh)
	s.fn1("asinh", math.Asinh)
	s.fn1("acosh", math.Acosh)
	s.fn1("atanh", math.Atanh)

	s.fn1("ln", math.Log)
	s.fn1("exp", math.Exp)
	s.fn1("sqrt", math.Sqrt)
	s.fn1("abs", math.Abs)
	s.fn1("floor", math.Floor)
	s.fn1("ceil", math.Ceil)

	s.vars["log"] = Function(&Builtin{
		Name:    "log",
		MinArgs: 1,
		MaxArgs: 2,
		Call: func(args []Value) (Value, error) {
			x, err := numArg("log", args[0])
			if err != nil {
				return Value{}, err
			}
			if len(args) == 1 {
				return Number(math.Log10(x)), nil
			}
			base, err := numArg("log", args[1])
			if err != nil {
				return Value{}, err
			}
			return Number(math.Log(x) / math.Log(base)), nil
		},
	})

	s.vars["combinations"] = Function(&Builtin{
		Name:    "combinations",
		MinArgs: 2,
		MaxArgs: 2,
		Call:    func(args []Value) (Value, error) { return chooseCall("combinations", args, true) },
	})
	s.vars["permutations"] = Function(&Builtin{
		Name:    "permutations",
		MinArgs: 2,
		MaxArgs: 2,
		Call:    func(args []Value) (Value, error) { return chooseCall("permutations", args, false) },
	})

	s.vars["integrate"] = Function(&Builtin{
		Name:    "integrate",
		MinArgs: 3,
		MaxArgs: 4,
		Call:    s.integrateCall,
	})

	s.vars[constMarkerName] = Function(&Builtin{
		Name:    constMarkerName,
		MinArgs: 1,
		MaxArgs: 1,
		Call: func(args []Value) (Value, error) {
			if args[0].Kind != KindString {
				return Value{}, fmt.Errorf("%w: constant reference must be a string", ErrDomain)
			}
			v, ok := s.consts[args[0].Str]
			if !ok {
				return Value{}, fmt.Errorf("%w: %q", ErrUnknownConstant, args[0].Str)
			}
			return Number(v), nil
		},
	})
}

// constMarkerName mirrors markup.ConstMarker; the pipeline emits it, the
// scope resolves it.
const constMarkerName = "__const"

func degIn(f func(float64) float64) func(float64) float64 {
	return func(x float64) float64 { return f(x * math.Pi / 180) }
}

func degOut(f func(float64) float64) func(float64) float64 {
	return func(x float64) float64 { return f(x) * 180 / math.Pi }
}

// chooseCall evaluates combinations/permutations for non-negative integer
// operands with k <= n.
func chooseCall(name string, args []Value, divide bool) (Value, error) {
	n, err := numArg(name, args[0])
	if err != nil {
		return Value{}, err
	}
	k, err := numArg(name, args[1])
	if err != nil {
		return Value{}, err
	}
	ni, ki := math.Round(n), math.Round(k)
	if math.Abs(n-ni) > 1e-9 || math.Abs(k-ki) > 1e-9 || ni < 0 || ki < 0 || ki > ni {
		return Value{}, fmt.Errorf("%w: %s(%g, %g)", ErrDomain, name, n, k)
	}
	r := 1.0
	for i := 0.0; i < ki; i++ {
		r *= ni - i
		if divide {
			r /= i + 1
		}
	}
	return Number(r), nil
}

// integrateCall numerically integrates its first argument (a function value
// or an expression string in x) from args[1] to args[2] by the composite
// trapezoidal rule. The optional fourth argument sets the step count,
// default 1000, minimum 10.
func (s *Scope) integrateCall(args []Value) (Value, error) {
	f, err := s.integrand(args[0])
	if err != nil {
		return Value{}, err
	}
	lo, err := numArg("integrate", args[1])
	if err != nil {
		return Value{}, err
	}
	hi, err := numArg("integrate", args[2])
	if err != nil {
		return Value{}, err
	}
	n := 1000
	if len(args) == 4 {
		steps, err := numArg("integrate", args[3])
		if err != nil {
			return Value{}, err
		}
		n = int(math.Round(steps))
		if n < 10 {
			n = 10
		}
	}
	h := (hi - lo) / float64(n)
	y0, err := f(lo)
	if err != nil {
		return Value{}, err
	}
	yn, err := f(hi)
	if err != nil {
		return Value{}, err
	}
	sum := (y0 + yn) / 2
	for i := 1; i < n; i++ {
		y, err := f(lo + float64(i)*h)
		if err != nil {
			return Value{}, err
		}
		sum += y
	}
	return Number(sum * h), nil
}

func (s *Scope) integrand(v Value) (func(float64) (float64, error), error) {
	switch v.Kind {
	case KindFunc:
		fn := v.Fn
		if fn.MinArgs > 1 || fn.MaxArgs < 1 {
			return nil, fmt.Errorf("%w: %s is not unary", ErrDomain, fn.Name)
		}
		return func(x float64) (float64, error) {
			r, err := fn.Call([]Value{Number(x)})
			if err != nil {
				return 0, err
			}
			return numArg(fn.Name, r)
		}, nil
	case KindString:
		expr := v.Str
		return func(x float64) (float64, error) {
			r, err := Eval(expr, s.child("x", x))
			if err != nil {
				return 0, err
			}
			return numArg("integrate", r)
		}, nil
	}
	return nil, fmt.Errorf("%w: integrand must be a function or expression string", ErrDomain)
}
