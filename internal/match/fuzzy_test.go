package match

import (
	"testing"

	"github.com/answerdesk/answerdesk/internal/knowledge"
)

func TestNewScorerDefaults(t *testing.T) {
	s := NewScorer(-1, "")

	if s.Threshold() != DefaultFuzzyThreshold {
		t.Errorf("Expected default threshold %d, got %d", DefaultFuzzyThreshold, s.Threshold())
	}
	if s.Algorithm() != AlgorithmTokenSet {
		t.Errorf("Expected default algorithm %s, got %s", AlgorithmTokenSet, s.Algorithm())
	}
}

func TestNewScorerUnknownAlgorithmFallsBack(t *testing.T) {
	s := NewScorer(70, "soundex")
	if s.Algorithm() != AlgorithmTokenSet {
		t.Errorf("Unknown algorithm should fall back to %s, got %s", AlgorithmTokenSet, s.Algorithm())
	}
}

func TestTokenSetSimilarity(t *testing.T) {
	s := NewScorer(70, AlgorithmTokenSet)

	tests := []struct {
		a       string
		b       string
		minSim  int
		maxSim  int
		message string
	}{
		{"how do robots learn", "how do robots learn", 100, 100, "identical"},
		{"how do robots learn", "robots learn how do", 100, 100, "reordered token set"},
		{"How do ROBOTS learn?", "how do robots learn", 100, 100, "case and punctuation ignored"},
		{"greeting", "greetings", 85, 99, "near-identical single word"},
		{"what is artificial intelligence", "artificial intelligence", 90, 100, "subset of tokens"},
		{"quantum banana", "how do robots learn", 0, 40, "unrelated"},
	}

	for _, tt := range tests {
		got := s.Similarity(tt.a, tt.b)
		if got < tt.minSim || got > tt.maxSim {
			t.Errorf("%s: Similarity(%q, %q) = %d, expected %d-%d", tt.message, tt.a, tt.b, got, tt.minSim, tt.maxSim)
		}
	}
}

func TestSimilarityIsSymmetric(t *testing.T) {
	s := NewScorer(70, AlgorithmTokenSet)

	pairs := [][2]string{
		{"how do robots learn", "robots can learn from data"},
		{"greeting", "greetings"},
		{"what is artificial intelligence", "artificial intelligence"},
	}

	for _, p := range pairs {
		ab := s.Similarity(p[0], p[1])
		ba := s.Similarity(p[1], p[0])
		if ab != ba {
			t.Errorf("Similarity(%q, %q) = %d but reversed = %d", p[0], p[1], ab, ba)
		}
	}
}

func TestSimilarityEmptyInputs(t *testing.T) {
	for _, algorithm := range []string{AlgorithmTokenSet, AlgorithmJaroWinkler, AlgorithmLevenshtein, AlgorithmCosine} {
		s := NewScorer(70, algorithm)
		if got := s.Similarity("", "anything"); got != 0 {
			t.Errorf("%s: Similarity with empty input = %d, expected 0", algorithm, got)
		}
		if got := s.Similarity("anything", ""); got != 0 {
			t.Errorf("%s: Similarity with empty candidate = %d, expected 0", algorithm, got)
		}
	}
}

func TestEdlibAlgorithms(t *testing.T) {
	for _, algorithm := range []string{AlgorithmJaroWinkler, AlgorithmLevenshtein, AlgorithmCosine} {
		s := NewScorer(70, algorithm)

		if s.Algorithm() != algorithm {
			t.Errorf("Expected algorithm %s, got %s", algorithm, s.Algorithm())
		}
		if got := s.Similarity("robots", "robots"); got != 100 {
			t.Errorf("%s: identical strings scored %d, expected 100", algorithm, got)
		}
		if got := s.Similarity("Robots", "roBOTS"); got != 100 {
			t.Errorf("%s: comparison should be case-insensitive, scored %d", algorithm, got)
		}
	}
}

func TestValidateAlgorithm(t *testing.T) {
	for _, algorithm := range []string{AlgorithmTokenSet, AlgorithmJaroWinkler, AlgorithmLevenshtein, AlgorithmCosine} {
		if err := ValidateAlgorithm(algorithm); err != nil {
			t.Errorf("ValidateAlgorithm(%q) returned error: %v", algorithm, err)
		}
	}
	if err := ValidateAlgorithm("soundex"); err == nil {
		t.Error("Expected error for unsupported algorithm")
	}
}

func TestBestMatchThresholdBoundary(t *testing.T) {
	rows := []knowledge.Row{{Question: "the only candidate", Answer: "the answer"}}

	tests := []struct {
		score  int
		accept bool
	}{
		{69, false},
		{70, true},
		{71, true},
	}

	for _, tt := range tests {
		s := NewScorer(70, AlgorithmTokenSet)
		s.scoreFn = func(a, b string) int { return tt.score }

		_, score, ok := s.BestMatch("query", rows)
		if ok != tt.accept {
			t.Errorf("Score %d: accepted=%v, expected %v", tt.score, ok, tt.accept)
		}
		if score != tt.score {
			t.Errorf("Expected reported score %d, got %d", tt.score, score)
		}
	}
}

func TestBestMatchTieBreak(t *testing.T) {
	rows := []knowledge.Row{
		{Question: "first", Answer: "first answer"},
		{Question: "second", Answer: "second answer"},
		{Question: "third", Answer: "third answer"},
	}

	s := NewScorer(70, AlgorithmTokenSet)
	s.scoreFn = func(a, b string) int { return 90 } // every row ties

	best, _, ok := s.BestMatch("query", rows)
	if !ok {
		t.Fatal("Expected a match")
	}
	if best.Answer != "first answer" {
		t.Errorf("Tie should keep the first row, got %q", best.Answer)
	}
}

func TestBestMatchPicksHighestScore(t *testing.T) {
	rows := []knowledge.Row{
		{Question: "low", Answer: "low answer"},
		{Question: "high", Answer: "high answer"},
		{Question: "mid", Answer: "mid answer"},
	}

	s := NewScorer(70, AlgorithmTokenSet)
	scores := map[string]int{"low": 71, "high": 95, "mid": 80}
	s.scoreFn = func(a, b string) int { return scores[b] }

	best, score, ok := s.BestMatch("query", rows)
	if !ok {
		t.Fatal("Expected a match")
	}
	if best.Answer != "high answer" || score != 95 {
		t.Errorf("Expected high answer with score 95, got %q with %d", best.Answer, score)
	}
}

func TestBestMatchEmptyRows(t *testing.T) {
	s := NewScorer(70, AlgorithmTokenSet)

	if _, _, ok := s.BestMatch("anything", nil); ok {
		t.Error("Empty candidate list must be a miss, not a match")
	}
	if _, _, ok := s.BestMatch("anything", []knowledge.Row{}); ok {
		t.Error("Zero-length candidate list must be a miss, not a match")
	}
}
