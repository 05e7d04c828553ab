// Package format renders computed numbers for display, in plain text and
// in editor markup.
package format

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Magnitude thresholds for switching to scientific notation.
const (
	sciLow  = 1e-4
	sciHigh = 1e10
)

// Formatter renders numbers under a display locale. Integers get
// locale-aware digit grouping; non-integers use fixed decimal notation;
// very small or very large magnitudes use scientific notation.
type Formatter struct {
	p *message.Printer
}

// New returns a Formatter for the given locale.
func New(tag language.Tag) *Formatter {
	return &Formatter{p: message.NewPrinter(tag)}
}

// Text renders x as plain display text. Scientific results use the form
// "m e exp" without spaces, e.g. 2.5e-7.
func (f *Formatter) Text(x float64) string {
	if x == 0 {
		return "0"
	}
	a := math.Abs(x)
	if a < sciLow || a >= sciHigh {
		mant, exp := sciParts(x)
		return mant + "e" + exp
	}
	if x == math.Trunc(x) {
		return f.p.Sprintf("%d", int64(x))
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// Markup renders x as editor markup. Scientific results use the form
// m\cdot10^{exp}; grouped display is a text concern, so integers stay
// plain.
func (f *Formatter) Markup(x float64) string {
	if x == 0 {
		return "0"
	}
	a := math.Abs(x)
	if a < sciLow || a >= sciHigh {
		mant, exp := sciParts(x)
		return mant + `\cdot10^{` + exp + `}`
	}
	if x == math.Trunc(x) {
		return strconv.FormatFloat(x, 'f', 0, 64)
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// sciParts splits x into a mantissa and a decimal exponent with leading
// zeros and a redundant plus sign removed.
func sciParts(x float64) (mant, exp string) {
	s := strconv.FormatFloat(x, 'e', -1, 64)
	mant, exp, _ = strings.Cut(s, "e")
	neg := strings.HasPrefix(exp, "-")
	exp = strings.TrimLeft(exp, "+-0")
	if exp == "" {
		exp = "0"
		neg = false
	}
	if neg {
		exp = "-" + exp
	}
	return mant, exp
}
