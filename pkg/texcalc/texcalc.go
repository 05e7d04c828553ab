package texcalc

import (
	"math"

	"golang.org/x/text/language"

	"calclab.net/texcalc/internal/eval"
	"calclab.net/texcalc/internal/format"
	"calclab.net/texcalc/internal/markup"
	"calclab.net/texcalc/internal/store"
)

// AngleUnit selects how trigonometric functions interpret angles.
type AngleUnit = eval.AngleUnit

const (
	Radians = eval.Radians
	Degrees = eval.Degrees
)

// ParseAngleUnit parses "radians"/"rad" or "degrees"/"deg".
func ParseAngleUnit(s string) (AngleUnit, bool) { return eval.ParseAngleUnit(s) }

// Result is the outcome of evaluating one line. A blank result (OK false,
// empty Text) is the error signal; failures never surface as errors here.
type Result struct {
	Value  float64
	Text   string
	Markup string
	OK     bool
}

// Calculator evaluates lines of editor markup or plain calculator text. It
// holds only configuration; every evaluation pass builds its scope fresh,
// so a Calculator is safe for concurrent use.
type Calculator struct {
	unit       AngleUnit
	constants  map[string]float64
	st         store.Store
	fmtr       *format.Formatter
	noBuiltins bool
	storeErr   error
}

// New creates a Calculator with the given options. Defaults: radians,
// built-in physical constants loaded, English display locale.
func New(opts ...Option) *Calculator {
	c := &Calculator{constants: make(map[string]float64)}
	for _, opt := range opts {
		opt(c)
	}
	if c.fmtr == nil {
		c.fmtr = format.New(language.English)
	}
	return c
}

// Close releases the constants store, if any.
func (c *Calculator) Close() error {
	if c.st != nil {
		return c.st.Close()
	}
	return nil
}

// Store returns the constants store, or nil when none is configured.
func (c *Calculator) Store() store.Store { return c.st }

// Normalize translates one line of markup (or plain text) into its
// canonical expression string.
func (c *Calculator) Normalize(line string) string {
	return markup.Normalize(line)
}

// constantsView assembles the name-to-value mapping for one evaluation
// pass: built-in catalog first, then store-backed user constants, so user
// definitions shadow built-ins.
func (c *Calculator) constantsView() map[string]float64 {
	view := make(map[string]float64, len(c.constants)+len(builtinConstants))
	if !c.noBuiltins {
		for _, b := range builtinConstants {
			view[b.Key] = b.Value
		}
	}
	if c.st != nil {
		if list, err := c.st.List(); err == nil {
			for _, ct := range list {
				view[ct.Key] = ct.Value
			}
		}
	}
	for k, v := range c.constants {
		view[k] = v
	}
	return view
}

// EvalLine normalizes and evaluates a single line with a zero last answer.
func (c *Calculator) EvalLine(line string) Result {
	return c.EvalAll([]string{line})[0]
}

// EvalAll evaluates lines in input order, threading each successful
// numeric result forward as the ans binding for later lines. A failed line
// yields a blank Result and never aborts its siblings.
func (c *Calculator) EvalAll(lines []string) []Result {
	sc := eval.NewScope(c.unit, c.constantsView())
	results := make([]Result, len(lines))
	ans := 0.0
	for i, line := range lines {
		sc.SetAnswer(ans)
		v, err := eval.Eval(markup.Normalize(line), sc)
		if err != nil || v.Kind != eval.KindNumber || !finite(v.Num) {
			continue // blank
		}
		x := eval.Round(v.Num)
		ans = x
		results[i] = Result{
			Value:  x,
			Text:   c.fmtr.Text(x),
			Markup: c.fmtr.Markup(x),
			OK:     true,
		}
	}
	return results
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
