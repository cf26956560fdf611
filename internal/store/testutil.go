package store

import (
	"path/filepath"
	"testing"
)

// fixedClock satisfies contract.Clock with a constant date.
type fixedClock struct {
	date string
}

func (c fixedClock) Today() string {
	return c.date
}

// SetupTestStore creates a store backed by a file in a per-test temp dir,
// pinned to the given date.
func SetupTestStore(t *testing.T, today string) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "checklist.json")
	return New(path, fixedClock{date: today})
}
