package qa

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`[a-zA-Z]+`)

// Tokenize splits text into lower-cased runs of ASCII letters. Digits,
// punctuation and whitespace only separate tokens.
func Tokenize(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}
