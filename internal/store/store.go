// Package store persists the user constants catalog.
package store

// Constant is one user-defined named constant. Key is the identifier used
// in expressions; Label is the display name the editor shows on the pill.
type Constant struct {
	Key   string
	Label string
	Value float64
}

// Store is the interface for constants-catalog persistence.
type Store interface {
	// List returns all constants ordered by key.
	List() ([]Constant, error)
	// Get retrieves a constant by key. Returns nil if not found.
	Get(key string) (*Constant, error)
	// Put stores a constant, overwriting any existing entry for its key.
	Put(c Constant) error
	// Delete removes a constant by key.
	Delete(key string) error
	// Close releases resources.
	Close() error
}
