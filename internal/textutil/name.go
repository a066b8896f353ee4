package textutil

import (
	"regexp"
	"strings"
)

// DefaultName is used when no name can be extracted from the answer.
const DefaultName = "Usuario"

var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:me llamo|soy|ll[aá]mame|puedes llamarme)\s+([a-záéíóúñü]+)`),
	regexp.MustCompile(`(?i)^([a-záéíóúñü]{2,})$`),
}

// ExtractName pulls a usable name or pseudonym out of a free-text answer.
// It tries the common introduction phrasings first, then falls back to the
// first word of the answer.
func ExtractName(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return DefaultName
	}

	for _, re := range namePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return capitalize(m[1])
		}
	}

	tokens := strings.Fields(text)
	if len(tokens) > 0 {
		return capitalize(tokens[0])
	}
	return DefaultName
}

func capitalize(word string) string {
	runes := []rune(strings.ToLower(word))
	if len(runes) == 0 {
		return DefaultName
	}
	runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
	return string(runes)
}
