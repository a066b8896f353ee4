// Package nlp implements the language components of the interview engine:
// intent and ambiguity classification plus the external sentiment and
// embedding collaborators.
package nlp

import (
	"context"
	"strings"

	"serena/internal/textutil"
)

// Intent is the coarse classification of a yes/no style answer.
type Intent string

const (
	IntentAffirmative Intent = "afirmativo"
	IntentNegative    Intent = "negativo"
	IntentUnknown     Intent = "desconocido"
)

// Curated phrase sets. Order matters only for readability; every phrase is
// checked. Phrases are stored folded (lowercase, no accents).
var affirmativePhrases = []string{
	"si",
	"claro",
	"por supuesto",
	"vale",
	"de acuerdo",
	"correcto",
	"acepto",
	"estoy de acuerdo",
	"quiero continuar",
	"asi es",
	"efectivamente",
	"me he sentido triste",
	"he perdido interes",
	"me ha pasado",
}

var negativePhrases = []string{
	"no",
	"prefiero no",
	"rechazo",
	"nunca",
	"no quiero",
	"no deseo",
	"para nada",
	"en absoluto",
	"me he sentido bien",
	"sigo disfrutando igual",
	"no me ha pasado",
}

// IntentClassifier maps free text to afirmativo/negativo/desconocido.
// Steps: exact match, token/substring match, then an optional
// embedding-similarity fallback. The first two steps are deterministic; the
// fallback is best-effort and never turns a decided intent around.
type IntentClassifier struct {
	embedder  Embedder
	threshold float64
}

// NewIntentClassifier builds the rule-only classifier.
func NewIntentClassifier() *IntentClassifier {
	return &IntentClassifier{}
}

// WithEmbedder enables the semantic-similarity fallback. threshold is the
// minimum cosine similarity for the dominant side to be accepted.
func (c *IntentClassifier) WithEmbedder(e Embedder, threshold float64) *IntentClassifier {
	c.embedder = e
	c.threshold = threshold
	return c
}

// Classify runs the full pipeline on one answer.
func (c *IntentClassifier) Classify(ctx context.Context, text string) Intent {
	folded := textutil.Fold(textutil.Clean(text))
	if folded == "" {
		return IntentUnknown
	}

	// (a) exact match against the curated sets
	for _, p := range affirmativePhrases {
		if folded == p {
			return IntentAffirmative
		}
	}
	for _, p := range negativePhrases {
		if folded == p {
			return IntentNegative
		}
	}

	// (b) substring match. Negation wins: "no, no quiero" contains "quiero
	// continuar"-style fragments less often than affirmatives contain "no".
	if containsAny(folded, negativePhrases) {
		return IntentNegative
	}
	if containsAny(folded, affirmativePhrases) {
		return IntentAffirmative
	}

	// (c) optional semantic similarity
	if c.embedder != nil {
		if intent := c.classifyBySimilarity(ctx, folded); intent != IntentUnknown {
			return intent
		}
	}
	return IntentUnknown
}

func containsAny(folded string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(padded(folded), padded(p)) {
			return true
		}
	}
	return false
}

// padded wraps the string in spaces so substring checks respect word
// boundaries ("nos vamos" must not match "no").
func padded(s string) string { return " " + s + " " }

func (c *IntentClassifier) classifyBySimilarity(ctx context.Context, folded string) Intent {
	input, err := c.embedder.Embed(ctx, folded)
	if err != nil || len(input) == 0 {
		return IntentUnknown
	}

	maxAff := c.maxSimilarity(ctx, input, affirmativePhrases)
	maxNeg := c.maxSimilarity(ctx, input, negativePhrases)

	if maxAff >= c.threshold && maxAff > maxNeg {
		return IntentAffirmative
	}
	if maxNeg >= c.threshold && maxNeg > maxAff {
		return IntentNegative
	}
	return IntentUnknown
}

func (c *IntentClassifier) maxSimilarity(ctx context.Context, input []float64, phrases []string) float64 {
	best := 0.0
	for _, p := range phrases {
		vec, err := c.embedder.Embed(ctx, p)
		if err != nil || len(vec) == 0 {
			continue
		}
		if sim := cosineSim(input, vec); sim > best {
			best = sim
		}
	}
	return best
}
