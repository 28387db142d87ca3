package match

import (
	"fmt"
	"strings"

	"github.com/hbollon/go-edlib"
	fuzzywuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/answerdesk/answerdesk/internal/knowledge"
)

// Supported fuzzy algorithms
const (
	AlgorithmTokenSet    = "token-set"
	AlgorithmJaroWinkler = "jaro-winkler"
	AlgorithmLevenshtein = "levenshtein"
	AlgorithmCosine      = "cosine"
)

// DefaultFuzzyThreshold is the minimum similarity score (0-100) the best
// candidate must reach to be accepted.
const DefaultFuzzyThreshold = 70

// Scorer computes fuzzy similarity between a query and candidate questions.
// The default token-set algorithm compares word sets, so it is robust to
// word reordering and to words present in only one of the two strings.
type Scorer struct {
	threshold int
	algorithm string

	// scoreFn is selected from algorithm at construction time. Tests
	// override it to pin exact score values.
	scoreFn func(a, b string) int
}

// NewScorer creates a scorer with the given acceptance threshold (0-100) and
// algorithm. Out-of-range thresholds and unknown algorithms fall back to the
// defaults.
func NewScorer(threshold int, algorithm string) *Scorer {
	if threshold < 0 || threshold > 100 {
		threshold = DefaultFuzzyThreshold
	}
	if algorithm == "" {
		algorithm = AlgorithmTokenSet
	}

	s := &Scorer{
		threshold: threshold,
		algorithm: algorithm,
	}

	switch algorithm {
	case AlgorithmJaroWinkler:
		s.scoreFn = edlibScore(edlib.JaroWinkler)
	case AlgorithmLevenshtein:
		s.scoreFn = edlibScore(edlib.Levenshtein)
	case AlgorithmCosine:
		s.scoreFn = edlibScore(edlib.Cosine)
	default:
		s.algorithm = AlgorithmTokenSet
		s.scoreFn = tokenSetScore
	}

	return s
}

// Threshold returns the acceptance threshold
func (s *Scorer) Threshold() int {
	return s.threshold
}

// Algorithm returns the configured algorithm name
func (s *Scorer) Algorithm() string {
	return s.algorithm
}

// Similarity returns the similarity score between two strings (0-100)
func (s *Scorer) Similarity(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	return s.scoreFn(a, b)
}

// BestMatch scores the query against every row's question and returns the
// single highest-scoring row. Ties keep the first row in table order (the
// comparison is strictly greater-than). ok is true only when a row exists
// and its score reaches the threshold; an empty row slice is not an error,
// just a miss.
func (s *Scorer) BestMatch(query string, rows []knowledge.Row) (best knowledge.Row, score int, ok bool) {
	bestIdx := -1
	bestScore := -1

	for i, row := range rows {
		sc := s.Similarity(query, row.Question)
		if sc > bestScore {
			bestIdx = i
			bestScore = sc
		}
	}

	if bestIdx < 0 || bestScore < s.threshold {
		return knowledge.Row{}, bestScore, false
	}
	return rows[bestIdx], bestScore, true
}

// ValidateAlgorithm reports whether name is a supported fuzzy algorithm
func ValidateAlgorithm(name string) error {
	switch name {
	case AlgorithmTokenSet, AlgorithmJaroWinkler, AlgorithmLevenshtein, AlgorithmCosine:
		return nil
	default:
		return fmt.Errorf("invalid fuzzy algorithm: %s (must be %s, %s, %s, or %s)",
			name, AlgorithmTokenSet, AlgorithmJaroWinkler, AlgorithmLevenshtein, AlgorithmCosine)
	}
}

// tokenSetScore is the fuzzywuzzy token-set ratio: symmetric, 0-100,
// 100 for token-set-identical strings.
func tokenSetScore(a, b string) int {
	return fuzzywuzzy.TokenSetRatio(a, b)
}

// edlibScore adapts a go-edlib similarity (0.0-1.0) to the 0-100 scale
func edlibScore(algorithm edlib.Algorithm) func(a, b string) int {
	return func(a, b string) int {
		a = strings.ToLower(a)
		b = strings.ToLower(b)
		if a == b {
			return 100
		}
		sim, err := edlib.StringsSimilarity(a, b, algorithm)
		if err != nil {
			return 0
		}
		return int(sim*100 + 0.5)
	}
}
