// Package match implements the query resolution pipeline: the ordered chain
// of matching strategies that turns a free-text question into an answer from
// the knowledge table.
//
// # Matching Stages
//
// Resolve runs four stages in strict order; the first stage to produce an
// answer wins and no stage is retried:
//
//  1. Exact Match - the synonym-normalized query equals a row's question
//     (case-insensitive full-string comparison)
//  2. Keyword Match - whole-word search of query tokens against the raw
//     question text, longest tokens first
//  3. Fuzzy Match - token-set similarity scoring against every question,
//     accepting the best row at or above the threshold
//  4. Terminal Fallback - one of two fixed messages
//
// An empty or punctuation-only query short-circuits after tokenization with
// MsgNotUnderstood; every other miss ends with MsgNoAnswer. Resolve never
// returns an error: all failure modes are expressed as returned strings, and
// a degenerate empty table simply falls through to the terminal fallback.
//
// # Core Components
//
// Matcher: the single entry point. Pure function of the query, the row
// slice, and its construction-time configuration; safe for concurrent use.
//
// Scorer: fuzzy similarity with a configurable algorithm. The default
// token-set ratio is tolerant of word reordering, partial overlap, and
// omitted words, and produces stable integer scores (0-100) so the
// acceptance threshold behaves predictably.
//
// Tokenize: extracts word tokens (letters, digits, underscore) in order of
// appearance.
//
// # Usage Example
//
//	normalizer := synonym.NewNormalizer(synonym.DefaultTable(), false)
//	scorer := match.NewScorer(match.DefaultFuzzyThreshold, match.AlgorithmTokenSet)
//	matcher := match.NewMatcher(normalizer, scorer, false)
//
//	answer := matcher.Resolve("what is ai?", table.Rows())
package match
