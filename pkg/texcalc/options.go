// Package texcalc is the public API of the calculator core: markup
// normalization, line-list evaluation, and result formatting.
package texcalc

import (
	"golang.org/x/text/language"

	"calclab.net/texcalc/internal/format"
	"calclab.net/texcalc/internal/store"
)

// Option configures a Calculator.
type Option func(*Calculator)

// WithAngleUnit sets the trigonometric angle unit.
func WithAngleUnit(u AngleUnit) Option {
	return func(c *Calculator) {
		c.unit = u
	}
}

// WithConstants adds a direct name-to-value constants mapping. These shadow
// the built-in catalog and any store-backed constants.
func WithConstants(m map[string]float64) Option {
	return func(c *Calculator) {
		for k, v := range m {
			c.constants[k] = v
		}
	}
}

// WithConstantStore attaches a constants catalog store.
func WithConstantStore(s store.Store) Option {
	return func(c *Calculator) {
		c.st = s
	}
}

// WithSQLiteStore attaches a SQLite constants catalog at the given path.
func WithSQLiteStore(path string) Option {
	return func(c *Calculator) {
		s, err := store.NewSQLite(path)
		if err != nil {
			c.storeErr = err
			return
		}
		c.st = s
	}
}

// WithMemoryStore attaches an in-memory constants catalog (for testing).
func WithMemoryStore() Option {
	return func(c *Calculator) {
		c.st = store.NewMemory()
	}
}

// WithoutBuiltinConstants disables the built-in physical-constant catalog.
func WithoutBuiltinConstants() Option {
	return func(c *Calculator) {
		c.noBuiltins = true
	}
}

// WithLocale sets the display locale used for digit grouping.
func WithLocale(tag language.Tag) Option {
	return func(c *Calculator) {
		c.fmtr = format.New(tag)
	}
}

// StoreErr reports a failure to open the store requested by
// WithSQLiteStore. The Calculator still works without it.
func (c *Calculator) StoreErr() error { return c.storeErr }
