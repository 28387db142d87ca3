// Package knowledge holds the question/answer table the matcher resolves
// against, plus the host-side loading and reload machinery. The table is
// built once from a spreadsheet and treated as read-only afterwards, so a
// loaded Table is safe to share across concurrent resolvers without locking.
package knowledge

import "github.com/cespare/xxhash/v2"

// Row is one question/answer pair. Immutable once loaded.
type Row struct {
	Question string
	Answer   string
}

// Table is an ordered sequence of rows. Order is load order; it carries no
// meaning beyond iteration determinism and first-match tie-breaking. Zero
// rows is a valid, if degenerate, state.
type Table struct {
	rows []Row
}

// NewTable creates a table from rows. The slice is owned by the table after
// the call.
func NewTable(rows []Row) *Table {
	return &Table{rows: rows}
}

// Len returns the number of rows
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Rows returns the underlying row slice. Callers must treat it as read-only.
func (t *Table) Rows() []Row {
	if t == nil {
		return nil
	}
	return t.rows
}

// Fingerprint returns a content hash of the table, used by the watcher to
// skip reload notifications when the data file was rewritten with identical
// content.
func (t *Table) Fingerprint() uint64 {
	d := xxhash.New()
	for _, row := range t.Rows() {
		_, _ = d.WriteString(row.Question)
		_, _ = d.Write([]byte{0})
		_, _ = d.WriteString(row.Answer)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}
