package eval

import (
	"errors"
	"math"
	"testing"
)

func evalNum(t *testing.T, sc *Scope, expr string) float64 {
	t.Helper()
	v, err := Eval(expr, sc)
	if err != nil {
		t.Fatalf("Eval(%q): %v", expr, err)
	}
	if v.Kind != KindNumber {
		t.Fatalf("Eval(%q): kind %v, want number", expr, v.Kind)
	}
	return v.Num
}

func TestEvalArithmetic(t *testing.T) {
	sc := NewScope(Radians, nil)
	cases := []struct {
		expr string
		want float64
	}{
		{"1+2", 3},
		{"2*3+4", 10},
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"7-3-2", 2},
		{"8/4/2", 1},
		{"6/4", 1.5},
		{"2^3", 8},
		{"2^3^2", 512}, // right-associative
		{"2^-3", 0.125},
		{"2*(3)", 6},
		{"1.5e2+0.5", 150.5},
	}
	for _, c := range cases {
		if got := evalNum(t, sc, c.expr); got != c.want {
			t.Errorf("Eval(%q) = %v, want %v", c.expr, got, c.want)
		}
	}
}

func TestEvalUnary(t *testing.T) {
	sc := NewScope(Radians, nil)
	cases := []struct {
		expr string
		want float64
	}{
		{"-3", -3},
		{"+3", 3},
		{"-(2+3)", -5},
		{"-(1)+2", 1},
		{"4--(1)+2", 7},
		{"2--3", 5},
		{"-2*3", -6},
		{"2*-(3)", -6},
		// The sign binds to the completed operand before the power
		// applies, literal and parenthesized group alike.
		{"-2^2", 4},
		{"-(2)^2", 4},
	}
	for _, c := range cases {
		if got := evalNum(t, sc, c.expr); got != c.want {
			t.Errorf("Eval(%q) = %v, want %v", c.expr, got, c.want)
		}
	}
}

func TestEvalCalls(t *testing.T) {
	sc := NewScope(Radians, nil)
	cases := []struct {
		expr string
		want float64
	}{
		{"sin(0)", 0},
		{"abs(-3)", 3},
		{"sqrt(9)", 3},
		{"exp(0)", 1},
		{"floor(2.7)", 2},
		{"ceil(2.1)", 3},
		{"log(100)", 2},
		{"log(8,2)", 3},
		// A signed parenthesized group inside an argument list resolves
		// before the comma is seen.
		{"log(-(8)+16,2)", 3},
		{"abs(-(3))", 3},
		{"combinations(5,2)", 10},
		{"combinations(5,0)", 1},
		{"permutations(5,2)", 20},
		{"sin(-pi)+sin(pi)", 0},
	}
	for _, c := range cases {
		if got := evalNum(t, sc, c.expr); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("Eval(%q) = %v, want %v", c.expr, got, c.want)
		}
	}
}

func TestEvalConstants(t *testing.T) {
	sc := NewScope(Radians, nil)
	if got := evalNum(t, sc, "pi"); got != math.Pi {
		t.Errorf("pi = %v", got)
	}
	if got := evalNum(t, sc, "tau"); got != 2*math.Pi {
		t.Errorf("tau = %v", got)
	}
	if got := evalNum(t, sc, "e"); got != math.E {
		t.Errorf("e = %v", got)
	}
	if got := evalNum(t, sc, "ans"); got != 0 {
		t.Errorf("initial ans = %v", got)
	}
	sc.SetAnswer(7)
	if got := evalNum(t, sc, "ans*2"); got != 14 {
		t.Errorf("ans*2 = %v", got)
	}
	if got := evalNum(t, sc, "Ans*2"); got != 14 {
		t.Errorf("Ans*2 = %v", got)
	}
}

func TestEvalUserConstants(t *testing.T) {
	sc := NewScope(Radians, map[string]float64{
		"m_e":     9.1093837015e-31,
		"bad key": 2,
	})
	if got := evalNum(t, sc, "m_e"); got != 9.1093837015e-31 {
		t.Errorf("m_e = %v", got)
	}
	if got := evalNum(t, sc, `__const("m_e")*2`); got != 2*9.1093837015e-31 {
		t.Errorf("__const m_e = %v", got)
	}
	// A key outside the identifier grammar is reachable only through the
	// marker function.
	if got := evalNum(t, sc, `__const("bad key")`); got != 2 {
		t.Errorf("__const bad key = %v", got)
	}
	_, err := Eval(`__const("missing")`, sc)
	if !errors.Is(err, ErrUnknownConstant) {
		t.Errorf("missing constant: err = %v", err)
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	sc := NewScope(Radians, nil)
	if got := evalNum(t, sc, "1/0"); !math.IsInf(got, 1) {
		t.Errorf("1/0 = %v, want +Inf", got)
	}
	if got := evalNum(t, sc, "0/0"); !math.IsNaN(got) {
		t.Errorf("0/0 = %v, want NaN", got)
	}
}

func TestEvalBareFunctionValue(t *testing.T) {
	sc := NewScope(Radians, nil)
	v, err := Eval("sin", sc)
	if err != nil {
		t.Fatalf("Eval(sin): %v", err)
	}
	if v.Kind != KindFunc {
		t.Fatalf("kind %v, want function", v.Kind)
	}
}

func TestEvalErrors(t *testing.T) {
	sc := NewScope(Radians, nil)
	cases := []struct {
		expr string
		want error
	}{
		{"", ErrSyntax},
		{"   ", ErrSyntax},
		{"2+", ErrSyntax},
		{"(2", ErrSyntax},
		{"2)", ErrSyntax},
		{"*2", ErrSyntax},
		{"(1,2)", ErrSyntax},
		{"2 3", ErrSyntax},
		{"nosuch", ErrUnknownIdent},
		{"pi(2)", ErrNotFunction},
		{"sin()", ErrArity},
		{"log(1,2,3)", ErrArity},
		{`"abc"+1`, ErrNotNumeric},
		{"sin+2", ErrNotNumeric},
		{"combinations(5.5,2)", ErrDomain},
		{"combinations(2,5)", ErrDomain},
		{"combinations(-1,0)", ErrDomain},
		{"@", ErrSyntax},
	}
	for _, c := range cases {
		_, err := Eval(c.expr, sc)
		if !errors.Is(err, c.want) {
			t.Errorf("Eval(%q): err = %v, want %v", c.expr, err, c.want)
		}
	}
}
