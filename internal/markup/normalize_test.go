package markup

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{`\frac{1}{2}+\frac{1}{3}`, "((1)/(2))+((1)/(3))"},
		{`2(3)`, "2*(3)"},
		{`sqrt9`, "sqrt(9)"},
		{`sin 30`, "sin(30)"},
		{`2sin3`, "2*sin(3)"},
		{`2sin(3)`, "2*sin(3)"},
		{`5nCr2`, "combinations(5,2)"},
		{`\sin\left(30\right)`, "sin(30)"},
		{`\left|x\right|`, "abs(x)"},
		{`\lfloor 2.5\rfloor`, "floor(2.5)"},
		{`\lceil 2.5\rceil`, "ceil(2.5)"},
		{`\operatorname{asinh}(1)`, "asinh(1)"},
		{`2\cdot3`, "2*3"},
		{`6\div2`, "6/2"},
		{`\arcsin(0.5)`, "asin(0.5)"},
		{`2\pi`, "2*pi"},
		{`\embed{constant}[m_e]+1`, `__const("m_e")+1`},
		{`\sqrt[3]{8}`, "((8)^(1/(3)))"},
		{`x^{2}+1`, "(x)^(2)+1"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

// Normalize applied to its own output must be a fixed point; re-running the
// pipeline over a stored canonical string must never change it.
func TestNormalizeIdempotent(t *testing.T) {
	cases := []string{
		"2*sin(3)",
		`__const("m_e")+1`,
		"combinations(5,2)",
		"((1)/(2))+((1)/(3))",
		"sqrt(sin(2))",
		"2e3+1",
		"(x)^(2)+1",
		"integrate(sin,0,pi)",
	}
	for _, c := range cases {
		if got := Normalize(c); got != c {
			t.Errorf("Normalize(%q) = %q, want fixed point", c, got)
		}
	}
}

func TestConvertEmbeds(t *testing.T) {
	cases := []struct{ in, want string }{
		{`\embed{constant}[k]*2`, `__const("k")*2`},
		{`\embed{constant}[a]+\embed{constant}[b]`, `__const("a")+__const("b")`},
		{`\embed{constant}`, `\embed{constant}`},
		{`\embed{constant}[open`, `\embed{constant}[open`},
		{"\\embed{constant}[a\nb]", "\\embed{constant}[a\nb]"},
	}
	for _, c := range cases {
		if got := convertEmbeds(c.in); got != c.want {
			t.Errorf("convertEmbeds(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestConvertEmbedsQuotesKey(t *testing.T) {
	got := convertEmbeds(`\embed{constant}[a"b]`)
	want := `__const("a\"b")`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestConvertBracketsNested(t *testing.T) {
	got := convertBrackets(`\left|\left|x\right|-1\right|`)
	if got != "abs(abs(x)-1)" {
		t.Fatalf("got %q", got)
	}
}

func TestSubstituteSymbolsSkipsLiterals(t *testing.T) {
	got := substituteSymbols(`__const("\sin")+\sin1`)
	want := `__const("\sin")+sin1`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStripSpacePreservesLiterals(t *testing.T) {
	got := stripSpace(`__const("a b") + 1`)
	want := `__const("a b")+1`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRewriteChoosePermute(t *testing.T) {
	cases := []struct{ in, want string }{
		{"5nCr2", "combinations(5,2)"},
		{"5nPr2", "permutations(5,2)"},
		{"10nCr2.5", "combinations(10,2.5)"},
		{"1+5nCr2", "1+combinations(5,2)"},
		// The marker letters inside a longer identifier are not an operator.
		{"annCr2", "annCr2"},
		{"x2nCr3", "x2nCr3"},
		{"xnCrk", "xnCrk"},
		{`__const("nCr")`, `__const("nCr")`},
	}
	for _, c := range cases {
		if got := rewriteChoosePermute(c.in); got != c.want {
			t.Errorf("rewriteChoosePermute(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
