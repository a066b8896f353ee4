// Package moderation implements the blocked-word membership test used by the
// free-text analysis path.
package moderation

import (
	"bufio"
	"log"
	"os"
	"strings"
)

// Filter checks text against a word list loaded once at boot.
type Filter struct {
	words map[string]struct{}
}

// NewFilter loads the word list from path, one word per line. A missing or
// unreadable file yields an empty filter, not an error: moderation is
// advisory and must never take the service down.
func NewFilter(path string) *Filter {
	f := &Filter{words: make(map[string]struct{})}

	file, err := os.Open(path)
	if err != nil {
		log.Printf("Warning: word list %s not available, moderation disabled: %v", path, err)
		return f
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word != "" {
			f.words[word] = struct{}{}
		}
	}
	return f
}

// ContainsBlocked reports whether any blocked word appears in the text.
func (f *Filter) ContainsBlocked(text string) bool {
	if len(f.words) == 0 {
		return false
	}
	lowered := strings.ToLower(text)
	for word := range f.words {
		if strings.Contains(lowered, word) {
			return true
		}
	}
	return false
}
