// Package textutil holds the small text plumbing every classifier builds on:
// normalization, accent stripping and number extraction.
package textutil

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	urlRe        = regexp.MustCompile(`http\S+`)
	nonAlphaRe   = regexp.MustCompile(`[^a-záéíóúñü0-9\s]`)
	multiSpaceRe = regexp.MustCompile(`\s+`)
	intRe        = regexp.MustCompile(`-?\d+`)
)

// Clean lowercases the text, removes URLs and everything that is not a
// Spanish letter, digit or space, and collapses runs of whitespace.
func Clean(text string) string {
	text = strings.ToLower(text)
	text = urlRe.ReplaceAllString(text, "")
	text = nonAlphaRe.ReplaceAllString(text, "")
	text = multiSpaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u", "Ü", "u",
)

// Fold lowercases and strips accents, for comparisons where "si" must match
// "sí".
func Fold(text string) string {
	return accentReplacer.Replace(strings.ToLower(strings.TrimSpace(text)))
}

// FirstInt extracts the first integer appearing in the text. ok is false when
// the text contains no digits at all.
func FirstInt(text string) (n int, ok bool) {
	match := intRe.FindString(text)
	if match == "" {
		return 0, false
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Clamp bounds n to the inclusive [min, max] range.
func Clamp(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
