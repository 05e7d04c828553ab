package markup

import "sort"

// functions is the recognized function-name table. The implicit-call and
// implicit-multiplication passes both consult it, and the evaluation scope
// binds every name in it, so the three stay in sync by construction.
var functions = []string{
	"sin", "cos", "tan",
	"csc", "sec", "cot",
	"sinh", "cosh", "tanh",
	"asin", "acos", "atan",
	"asinh", "acosh", "atanh",
	"ln", "log", "exp",
	"sqrt", "abs", "floor", "ceil",
	"integrate",
	"combinations", "permutations",
}

// funcSet indexes functions for O(1) membership tests.
var funcSet = func() map[string]bool {
	m := make(map[string]bool, len(functions))
	for _, f := range functions {
		m[f] = true
	}
	return m
}()

// funcsByLength lists function names longest first, so that a name is never
// shadowed by a shorter name that happens to be its prefix (sinh before sin).
var funcsByLength = func() []string {
	out := make([]string, len(functions))
	copy(out, functions)
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}()

// IsFunction reports whether name is in the recognized function table.
func IsFunction(name string) bool { return funcSet[name] }

// Functions returns a copy of the recognized function-name table.
func Functions() []string {
	out := make([]string, len(functions))
	copy(out, functions)
	return out
}

// constants are the symbolic constant names the implicit-call pass accepts
// as a bare argument. They are not user constants; those travel through
// __const embeds.
var constantNames = map[string]bool{
	"pi":  true,
	"tau": true,
	"e":   true,
}

// symbolSubs maps editor commands to their plain-identifier or operator
// equivalents. Applied in order; longer commands precede any command they
// contain as a prefix.
var symbolSubs = []struct{ from, to string }{
	{`\arcsin`, "asin"},
	{`\arccos`, "acos"},
	{`\arctan`, "atan"},
	{`\sinh`, "sinh"},
	{`\cosh`, "cosh"},
	{`\tanh`, "tanh"},
	{`\times`, "*"},
	{`\theta`, "theta"},
	{`\cdot`, "*"},
	{`\prod`, "product"},
	{`\sin`, "sin"},
	{`\cos`, "cos"},
	{`\tan`, "tan"},
	{`\csc`, "csc"},
	{`\sec`, "sec"},
	{`\cot`, "cot"},
	{`\div`, "/"},
	{`\exp`, "exp"},
	{`\sum`, "sum"},
	{`\int`, "integrate"},
	{`\tau`, "tau"},
	{`\ln`, "ln"},
	{`\log`, "log"},
	{`\pi`, "pi"},
}
