// Package wordlist provides word list filtering helpers.
package wordlist

import (
	"strings"
	"unicode"
)

// Clean trims a label and reports whether it is usable on a target.
func Clean(word string) (string, bool) {
	word = strings.TrimSpace(word)
	if word == "" {
		return "", false
	}
	for _, r := range word {
		if unicode.IsControl(r) {
			return "", false
		}
	}
	return word, true
}
