package nlp

import (
	"strings"

	"serena/internal/textutil"
)

// Phrases that hedge or decline to commit to an answer. Matching is by
// substring over the folded text, so "pues no sé qué decirte" is ambiguous.
var ambiguousPhrases = []string{
	"no se",
	"no lo se",
	"no estoy seguro",
	"no estoy segura",
	"quizas",
	"tal vez",
	"puede ser",
	"no entiendo",
	"no se que decir",
	"npi",
	"ni idea",
	"depende",
	"mas o menos creo",
}

// IsAmbiguous reports whether the answer hedges instead of committing to a
// value. Ambiguous answers hold the state machine in place and trigger a
// clarification prompt.
func IsAmbiguous(text string) bool {
	folded := textutil.Fold(text)
	if folded == "" {
		return false
	}
	for _, phrase := range ambiguousPhrases {
		if strings.Contains(folded, phrase) {
			return true
		}
	}
	return false
}
