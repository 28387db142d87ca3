package synonym

import (
	"fmt"
	"strings"
)

// Entry maps alternate phrasings to one canonical term.
// Variant lists are independent substitution rules: two entries may share
// vocabulary, and a term produced by one entry can be consumed by a later
// one. Entries are NOT merged into equivalence classes.
type Entry struct {
	Canonical string
	Variants  []string
}

// Table is an ordered list of substitution entries. Order matters: entries
// are applied top to bottom, and within an entry variants are applied left
// to right, so overlapping variants and chained substitutions resolve
// deterministically.
type Table []Entry

// Validate checks the table invariants: canonical terms and variants must be
// lowercase and variants must be non-empty.
func (t Table) Validate() error {
	for i, entry := range t {
		if entry.Canonical == "" {
			return fmt.Errorf("synonym entry %d: canonical term is empty", i)
		}
		if entry.Canonical != strings.ToLower(entry.Canonical) {
			return fmt.Errorf("synonym entry %d: canonical term %q must be lowercase", i, entry.Canonical)
		}
		for j, v := range entry.Variants {
			if v == "" {
				return fmt.Errorf("synonym entry %d (%q): variant %d is empty", i, entry.Canonical, j)
			}
			if v != strings.ToLower(v) {
				return fmt.Errorf("synonym entry %d (%q): variant %q must be lowercase", i, entry.Canonical, j)
			}
		}
	}
	return nil
}

// DefaultTable returns the built-in substitution rules for the AI/robotics
// knowledge domain. Variants are chosen so that no canonical term in the
// table contains another entry's variant as a substring, keeping
// normalization idempotent on already-canonical text.
func DefaultTable() Table {
	return Table{
		{Canonical: "artificial intelligence", Variants: []string{"a.i.", "ai"}},
		{Canonical: "machine learning", Variants: []string{"ml"}},
		{Canonical: "natural language processing", Variants: []string{"nlp"}},
		{Canonical: "neural network", Variants: []string{"neural networks", "neural nets"}},
		{Canonical: "computer vision", Variants: []string{"machine vision"}},
		{Canonical: "robot", Variants: []string{"robots"}},
		{Canonical: "chatbot", Variants: []string{"chat bot", "chatterbot"}},
	}
}
