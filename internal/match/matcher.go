package match

import (
	"regexp"
	"sort"
	"strings"

	"github.com/surgebase/porter2"

	"github.com/answerdesk/answerdesk/internal/debug"
	"github.com/answerdesk/answerdesk/internal/knowledge"
	"github.com/answerdesk/answerdesk/internal/synonym"
)

// The two terminal messages. They are distinct outcomes: MsgNotUnderstood
// means the query produced no tokens at all, MsgNoAnswer means every
// matching stage came up empty.
const (
	MsgNotUnderstood = "I'm sorry, I couldn't understand your question. Please try rephrasing it."
	MsgNoAnswer      = "I'm sorry, I couldn't find a relevant answer. Could you please rephrase your question?"
)

// Matcher resolves free-text queries against a knowledge table. It holds no
// per-query state and never mutates the rows it is given, so one Matcher
// serves concurrent callers without locking.
type Matcher struct {
	normalizer   *synonym.Normalizer
	scorer       *Scorer
	stemKeywords bool
}

// NewMatcher creates a matcher. stemKeywords additionally compares Porter2
// stems in the keyword stage, so inflected forms ("learning" vs "learns")
// can match; it is off by default in the shipped configuration.
func NewMatcher(normalizer *synonym.Normalizer, scorer *Scorer, stemKeywords bool) *Matcher {
	return &Matcher{
		normalizer:   normalizer,
		scorer:       scorer,
		stemKeywords: stemKeywords,
	}
}

// Resolve runs the staged pipeline and returns either a row's answer or one
// of the two terminal messages. It never returns an error: an empty table
// means every stage misses and the terminal fallback is returned.
func (m *Matcher) Resolve(query string, rows []knowledge.Row) string {
	normalized := m.normalizer.Normalize(query)

	// Stage 1: exact match, cheapest and highest confidence.
	for _, row := range rows {
		if normalized == strings.ToLower(row.Question) {
			debug.LogMatch("exact match for %q\n", normalized)
			return row.Answer
		}
	}

	tokens := Tokenize(normalized)
	if len(tokens) == 0 {
		return MsgNotUnderstood
	}

	// Stage 2: whole-word keyword search, longest tokens first.
	if answer, ok := m.keywordStage(tokens, rows); ok {
		return answer
	}

	// Stage 3: fuzzy similarity over every question.
	if best, score, ok := m.scorer.BestMatch(normalized, rows); ok {
		debug.LogMatch("fuzzy match for %q scored %d against %q\n", normalized, score, best.Question)
		return best.Answer
	}

	return MsgNoAnswer
}

// keywordStage searches for each token as a whole word in the raw question
// text. Tokens are tried longest-first (a stable sort, so equal-length
// tokens keep query order); rows are scanned in table order. The first hit
// anywhere ends the stage.
func (m *Matcher) keywordStage(tokens []string, rows []knowledge.Row) (string, bool) {
	sorted := make([]string, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})

	for _, token := range sorted {
		pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(token) + `\b`)
		for _, row := range rows {
			if pattern.MatchString(row.Question) {
				debug.LogMatch("keyword %q matched %q\n", token, row.Question)
				return row.Answer, true
			}
		}

		if m.stemKeywords {
			if answer, ok := stemScan(token, rows); ok {
				return answer, true
			}
		}
	}

	return "", false
}

// stemScan compares the token's Porter2 stem against the stem of every word
// in each question, in table order.
func stemScan(token string, rows []knowledge.Row) (string, bool) {
	stem := porter2.Stem(strings.ToLower(token))
	for _, row := range rows {
		for _, word := range Tokenize(strings.ToLower(row.Question)) {
			if porter2.Stem(word) == stem {
				debug.LogMatch("stem %q matched word %q in %q\n", stem, word, row.Question)
				return row.Answer, true
			}
		}
	}
	return "", false
}
