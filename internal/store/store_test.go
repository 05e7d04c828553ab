package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// testStore exercises one Store implementation through the interface.
func testStore(t *testing.T, s Store) {
	t.Helper()

	list, err := s.List()
	require.NoError(t, err)
	require.Empty(t, list)

	got, err := s.Get("m_e")
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, s.Put(Constant{Key: "m_e", Label: "Electron mass", Value: 9.1093837015e-31}))
	require.NoError(t, s.Put(Constant{Key: "c", Label: "Speed of light", Value: 299792458}))

	got, err = s.Get("m_e")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Electron mass", got.Label)
	require.Equal(t, 9.1093837015e-31, got.Value)

	// Overwrite on same key.
	require.NoError(t, s.Put(Constant{Key: "c", Label: "c", Value: 3e8}))
	got, err = s.Get("c")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, 3e8, got.Value)

	list, err = s.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "c", list[0].Key)
	require.Equal(t, "m_e", list[1].Key)

	require.NoError(t, s.Delete("c"))
	got, err = s.Get("c")
	require.NoError(t, err)
	require.Nil(t, got)

	// Deleting an absent key is not an error.
	require.NoError(t, s.Delete("c"))
}

func TestMemory(t *testing.T) {
	s := NewMemory()
	defer s.Close()
	testStore(t, s)
}

func TestSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "constants.db")
	s, err := NewSQLite(path)
	require.NoError(t, err)
	defer s.Close()
	testStore(t, s)
}

func TestSQLitePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "constants.db")

	s, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Put(Constant{Key: "g", Label: "Gravity", Value: 9.80665}))
	require.NoError(t, s.Close())

	s, err = NewSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get("g")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, 9.80665, got.Value)
}

func TestSQLiteSchemaVersionMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "constants.db")

	s, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.setMetadata("schema_version", "999"))
	require.NoError(t, s.Close())

	_, err = NewSQLite(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported schema version")
}
