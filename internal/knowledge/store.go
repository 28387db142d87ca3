package knowledge

import "sync/atomic"

// Store holds the current knowledge table and lets the host swap in a fresh
// one after a reload. Readers always see a complete, immutable snapshot;
// in-flight resolutions keep the table they started with.
type Store struct {
	table atomic.Pointer[Table]
}

// NewStore creates a store holding the given table
func NewStore(t *Table) *Store {
	s := &Store{}
	s.table.Store(t)
	return s
}

// Table returns the current snapshot
func (s *Store) Table() *Table {
	return s.table.Load()
}

// Swap replaces the current table
func (s *Store) Swap(t *Table) {
	s.table.Store(t)
}
