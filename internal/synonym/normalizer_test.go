package synonym

import "testing"

func TestNormalizeLowercases(t *testing.T) {
	n := NewNormalizer(nil, false)

	if got := n.Normalize("What Is ROBOTICS?"); got != "what is robotics?" {
		t.Errorf("Expected lowercased query, got %q", got)
	}
}

func TestNormalizeSubstitutesVariants(t *testing.T) {
	table := Table{
		{Canonical: "artificial intelligence", Variants: []string{"a.i.", "ai"}},
		{Canonical: "machine learning", Variants: []string{"ml"}},
	}
	n := NewNormalizer(table, false)

	tests := []struct {
		query    string
		expected string
	}{
		{"what is AI?", "what is artificial intelligence?"},
		{"what is A.I.?", "what is artificial intelligence?"},
		{"ML basics", "machine learning basics"},
		{"no variants here", "no variants here"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := n.Normalize(tt.query); got != tt.expected {
			t.Errorf("Normalize(%q) = %q, expected %q", tt.query, got, tt.expected)
		}
	}
}

func TestNormalizeReplacesEveryOccurrence(t *testing.T) {
	table := Table{{Canonical: "robot", Variants: []string{"robots"}}}
	n := NewNormalizer(table, false)

	got := n.Normalize("robots helping robots")
	if got != "robot helping robot" {
		t.Errorf("Expected all occurrences replaced, got %q", got)
	}
}

func TestNormalizeSubstringCollision(t *testing.T) {
	// Compatibility behavior: substring replacement has no word-boundary
	// check, so a short variant fires inside unrelated words.
	table := Table{{Canonical: "artificial intelligence", Variants: []string{"ai"}}}
	n := NewNormalizer(table, false)

	if got := n.Normalize("fresh air"); got != "fresh artificial intelligencer" {
		t.Errorf("Expected naive substring replacement, got %q", got)
	}
}

func TestNormalizeWordBoundary(t *testing.T) {
	table := Table{{Canonical: "artificial intelligence", Variants: []string{"ai"}}}
	n := NewNormalizer(table, true)

	if got := n.Normalize("fresh air"); got != "fresh air" {
		t.Errorf("Boundary mode should leave embedded variants alone, got %q", got)
	}
	if got := n.Normalize("what is ai?"); got != "what is artificial intelligence?" {
		t.Errorf("Boundary mode should replace whole words, got %q", got)
	}
}

func TestNormalizeChainedSubstitution(t *testing.T) {
	// A term produced by one entry can be consumed by a later entry.
	table := Table{
		{Canonical: "machine vision", Variants: []string{"mv"}},
		{Canonical: "computer vision", Variants: []string{"machine vision"}},
	}
	n := NewNormalizer(table, false)

	if got := n.Normalize("mv systems"); got != "computer vision systems" {
		t.Errorf("Expected chained substitution, got %q", got)
	}
}

func TestNormalizeIdempotentOnCanonicalInput(t *testing.T) {
	n := NewNormalizer(DefaultTable(), false)

	queries := []string{
		"what is artificial intelligence?",
		"describe machine learning and natural language processing",
		"how does a neural network work",
		"what can a robot do",
	}

	for _, q := range queries {
		once := n.Normalize(q)
		twice := n.Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", q, once, twice)
		}
		if once != q {
			t.Errorf("Canonical query %q changed to %q", q, once)
		}
	}
}

func TestTableValidate(t *testing.T) {
	tests := []struct {
		name    string
		table   Table
		wantErr bool
	}{
		{"default table", DefaultTable(), false},
		{"empty table", Table{}, false},
		{"uppercase canonical", Table{{Canonical: "AI", Variants: []string{"a.i."}}}, true},
		{"uppercase variant", Table{{Canonical: "ai", Variants: []string{"A.I."}}}, true},
		{"empty canonical", Table{{Canonical: "", Variants: []string{"ai"}}}, true},
		{"empty variant", Table{{Canonical: "ai", Variants: []string{""}}}, true},
	}

	for _, tt := range tests {
		err := tt.table.Validate()
		if tt.wantErr && err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
		}
	}
}
