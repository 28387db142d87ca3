package match

import "regexp"

// wordPattern matches maximal runs of word characters (letters, digits,
// underscore). Everything else is a separator.
var wordPattern = regexp.MustCompile(`\w+`)

// Tokenize extracts word tokens from text in left-to-right order. Duplicates
// are kept. Empty or separator-only input yields an empty slice.
func Tokenize(text string) []string {
	return wordPattern.FindAllString(text, -1)
}
