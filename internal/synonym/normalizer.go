package synonym

import (
	"regexp"
	"strings"
)

// Normalizer rewrites a raw query by substituting every known variant with
// its canonical term. The table is compiled in at construction time and
// never mutated afterwards, so a single Normalizer is safe for concurrent
// callers.
type Normalizer struct {
	table        Table
	wordBoundary bool

	// Compiled whole-word patterns, one per variant, in table order.
	// Only populated when wordBoundary is set.
	patterns []boundaryRule
}

type boundaryRule struct {
	re        *regexp.Regexp
	canonical string
}

// NewNormalizer creates a normalizer for the given table.
//
// With wordBoundary false (the compatibility default) replacement is plain
// substring replacement: a variant that happens to be embedded in an
// unrelated word is replaced too ("ai" inside "air"). With wordBoundary true
// a variant only fires on whole-word occurrences.
func NewNormalizer(table Table, wordBoundary bool) *Normalizer {
	n := &Normalizer{
		table:        table,
		wordBoundary: wordBoundary,
	}

	if wordBoundary {
		for _, entry := range table {
			for _, variant := range entry.Variants {
				n.patterns = append(n.patterns, boundaryRule{
					re:        regexp.MustCompile(`\b` + regexp.QuoteMeta(variant) + `\b`),
					canonical: entry.Canonical,
				})
			}
		}
	}

	return n
}

// WordBoundary reports whether whole-word replacement is enabled
func (n *Normalizer) WordBoundary() bool {
	return n.wordBoundary
}

// Normalize lowercases the query and applies every substitution rule in
// table order. The output of one rule is the input of the next, so chained
// substitutions are part of the contract.
func (n *Normalizer) Normalize(query string) string {
	normalized := strings.ToLower(query)

	if n.wordBoundary {
		for _, rule := range n.patterns {
			normalized = rule.re.ReplaceAllString(normalized, rule.canonical)
		}
		return normalized
	}

	for _, entry := range n.table {
		for _, variant := range entry.Variants {
			normalized = strings.ReplaceAll(normalized, variant, entry.Canonical)
		}
	}
	return normalized
}
