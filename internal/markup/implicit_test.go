package markup

import "testing"

func TestInsertImplicitMultiplication(t *testing.T) {
	cases := []struct{ in, want string }{
		{"2(3)", "2*(3)"},
		{"(2)(3)", "(2)*(3)"},
		{"(2)3", "(2)*3"},
		{"(1+2)x", "(1+2)*x"},
		{"2x", "2*x"},
		{"2pi", "2*pi"},
		{"x(2)", "x*(2)"},
		{"e(2)", "e*(2)"},
		{"2e3", "2e3"},
		{"1E-5", "1E-5"},
		{"2e", "2*e"},
		{"sin(3)", "sin(3)"},
		{"2+3", "2+3"},
	}
	for _, c := range cases {
		if got := insertImplicitMultiplication(c.in); got != c.want {
			t.Errorf("insertImplicitMultiplication(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestInsertImplicitCalls(t *testing.T) {
	cases := []struct{ in, want string }{
		{"sin30", "sin(30)"},
		{"sin-2", "sin(-2)"},
		{"sin2.5", "sin(2.5)"},
		{"sin2e3", "sin(2e3)"},
		{"sinpi", "sin(pi)"},
		{"sintau", "sin(tau)"},
		{"sinx", "sin(x)"},
		{"sqrt9", "sqrt(9)"},
		{"ln10", "ln(10)"},
		{"sinsin1", "sin(sin(1))"},
		{"sinh1", "sinh(1)"},
		{"sin(3)", "sin(3)"},
		{"arcsine", "arcsine"},
		{"sin", "sin"},
		{"sin+2", "sin(+2)"},
		{`__const("sin2")`, `__const("sin2")`},
	}
	for _, c := range cases {
		if got := insertImplicitCalls(c.in); got != c.want {
			t.Errorf("insertImplicitCalls(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

// Multiplication insertion must run before call insertion: 2sin3 first
// splits into 2*sin3, and only then gains its argument list. Running the
// call pass alone over the raw input would leave the coefficient fused.
func TestImplicitPassOrder(t *testing.T) {
	s := insertImplicitMultiplication("2sin3")
	if s != "2*sin3" {
		t.Fatalf("after multiplication pass: %q", s)
	}
	s = insertImplicitCalls(s)
	if s != "2*sin(3)" {
		t.Fatalf("after call pass: %q", s)
	}
}

// A pathological input must terminate under the rewrite cap rather than
// loop; the exact output matters less than getting one.
func TestInsertImplicitCallsTerminates(t *testing.T) {
	in := ""
	for i := 0; i < 50; i++ {
		in += "sin"
	}
	in += "1"
	out := insertImplicitCalls(in)
	if out == "" {
		t.Fatal("empty output")
	}
}
