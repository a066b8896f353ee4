// Package scoring converts raw interview answers into per-symptom integer
// scores and derives the aggregate severity profile.
//
// Categorical symptoms (frequency, duration) score through an ordered
// phrase table with a clearly separated fuzzy fallback stage. Numeric
// symptoms clamp the first integer found in the answer. Binary symptoms map
// affirmative/negative to 1/0.
package scoring

import (
	"strings"

	"serena/internal/textutil"
)

// Symptom keys as persisted in the score store.
const (
	SymFrequency     = "frecuencia"
	SymDuration      = "duracion"
	SymIntensity     = "intensidad"
	SymAnhedonia     = "anhedonia"
	SymHopelessness  = "desesperanza"
	SymWorthlessness = "inutilidad"
	SymIdeation      = "ideacion"
	SymFatigue       = "fatiga"
	SymSleep         = "sueno"
	SymAppetite      = "apetito"
	SymConcentration = "concentracion"
	SymAgitation     = "agitacion"
	SymImpact        = "impacto_diario"
	SymEmpathy       = "empatia"
)

// Severity tiers derived from the sadness-triad mean.
const (
	SeverityMild     = "leve"
	SeverityModerate = "moderado"
	SeveritySevere   = "grave"
)

// TableEntry binds one canonical phrase to its score. Tables are ordered
// from least to most severe; scores are monotonically non-decreasing along
// that ordering.
type TableEntry struct {
	Phrase string
	Score  int
}

// FrequencyTable scores how often the sadness appears, 1..10.
var FrequencyTable = []TableEntry{
	{"nunca", 1},
	{"casi nunca", 2},
	{"pocas veces", 3},
	{"con poca frecuencia", 4},
	{"de vez en cuando", 5},
	{"algunas veces por semana", 6},
	{"a menudo", 7},
	{"muy seguido", 8},
	{"casi todos los dias", 9},
	{"todos los dias", 10},
}

// DurationTable scores how long each episode lasts, 1..10.
var DurationTable = []TableEntry{
	{"momentos puntuales", 1},
	{"unas horas", 2},
	{"mas de 6 horas", 3},
	{"un dia o mas", 4},
	{"entre tres y cinco dias", 5},
	{"una semana", 6},
	{"poco mas de una semana", 7},
	{"dos semanas", 8},
	{"varias semanas", 9},
	{"un mes o mas", 10},
}

// patternEntry is one fuzzy-fallback rule: any of the fragments appearing as
// a substring assigns the score. Rules are checked in order, most severe
// first, so a rambling answer resolves to its strongest signal.
type patternEntry struct {
	fragments []string
	score     int
}

var frequencyPatterns = []patternEntry{
	{[]string{"todos los dias", "cada dia", "a diario", "diariamente", "siempre", "constantemente"}, 10},
	{[]string{"casi todos"}, 9},
	{[]string{"muy seguido", "muy a menudo", "muchas veces"}, 8},
	{[]string{"a menudo", "con frecuencia", "frecuentemente"}, 7},
	{[]string{"por semana", "a la semana"}, 6},
	{[]string{"de vez en cuando", "a veces"}, 5},
	{[]string{"poca frecuencia"}, 4},
	{[]string{"pocas veces", "rara vez", "raramente"}, 3},
	{[]string{"casi nunca"}, 2},
	{[]string{"nunca"}, 1},
}

var durationPatterns = []patternEntry{
	{[]string{"mes", "meses"}, 10},
	{[]string{"varias semanas"}, 9},
	{[]string{"dos semanas", "quince dias"}, 8},
	{[]string{"mas de una semana"}, 7},
	{[]string{"una semana", "semana entera"}, 6},
	{[]string{"varios dias", "tres dias", "cuatro dias", "cinco dias"}, 5},
	{[]string{"un dia", "dia entero", "todo el dia"}, 4},
	{[]string{"muchas horas", "6 horas", "seis horas"}, 3},
	{[]string{"horas", "un par de horas", "un rato largo"}, 2},
	{[]string{"momentos", "un rato", "instantes", "puntual"}, 1},
}

// lowestScore is the default when neither exact nor fuzzy matching applies.
const lowestScore = 1

// ScoreFrequency scores a frequency answer, defaulting to the lowest score
// when nothing matches.
func ScoreFrequency(raw string) int {
	if score, ok := MatchFrequency(raw); ok {
		return score
	}
	return lowestScore
}

// ScoreDuration scores a duration answer, defaulting to the lowest score
// when nothing matches.
func ScoreDuration(raw string) int {
	if score, ok := MatchDuration(raw); ok {
		return score
	}
	return lowestScore
}

// MatchFrequency resolves a frequency answer. ok is false when neither the
// exact table nor the fuzzy patterns recognize it, which the dialogue layer
// turns into a re-prompt.
func MatchFrequency(raw string) (score int, ok bool) {
	return matchCategorical(raw, FrequencyTable, frequencyPatterns)
}

// MatchDuration resolves a duration answer.
func MatchDuration(raw string) (score int, ok bool) {
	return matchCategorical(raw, DurationTable, durationPatterns)
}

func matchCategorical(raw string, table []TableEntry, patterns []patternEntry) (int, bool) {
	folded := textutil.Fold(raw)

	// Stage 1: exact lookup of the canonical phrase.
	for _, entry := range table {
		if folded == entry.Phrase {
			return entry.Score, true
		}
	}

	// Stage 2: fuzzy substring matching over the expression patterns.
	for _, entry := range patterns {
		for _, fragment := range entry.fragments {
			if strings.Contains(folded, fragment) {
				return entry.score, true
			}
		}
	}
	return 0, false
}

// ScoreIntensity extracts the first integer of a 1-10 intensity answer and
// clamps it. ok is false when the answer holds no number.
func ScoreIntensity(raw string) (score int, ok bool) {
	n, ok := textutil.FirstInt(raw)
	if !ok {
		return 0, false
	}
	return textutil.Clamp(n, 1, 10), true
}

// ScoreEmpathy extracts and clamps the 0-10 empathy rating.
func ScoreEmpathy(raw string) (score int, ok bool) {
	n, ok := textutil.FirstInt(raw)
	if !ok {
		return 0, false
	}
	return textutil.Clamp(n, 0, 10), true
}

// ScoreBinary maps an affirmative answer to 1 and anything else to 0.
func ScoreBinary(affirmative bool) int {
	if affirmative {
		return 1
	}
	return 0
}

// Intensity buckets used for empathetic framing.
const (
	BucketLow  = "baja"
	BucketMid  = "media"
	BucketHigh = "alta"
)

// IntensityBucket folds a 1-10 score into low/mid/high.
func IntensityBucket(score int) string {
	switch {
	case score <= 3:
		return BucketLow
	case score <= 7:
		return BucketMid
	default:
		return BucketHigh
	}
}

// TriadMean is the mean of the three sadness-triad scores. Missing symptoms
// count as the lowest score so a partial profile still yields a tier.
func TriadMean(scores map[string]int) float64 {
	sum := 0
	for _, sym := range []string{SymFrequency, SymDuration, SymIntensity} {
		if v, ok := scores[sym]; ok {
			sum += v
		} else {
			sum += lowestScore
		}
	}
	return float64(sum) / 3
}

// Total sums every recorded symptom score.
func Total(scores map[string]int) int {
	total := 0
	for _, v := range scores {
		total += v
	}
	return total
}

// Severity maps the triad mean onto the coarse tier.
func Severity(mean float64) string {
	switch {
	case mean <= 3.5:
		return SeverityMild
	case mean <= 6.5:
		return SeverityModerate
	default:
		return SeveritySevere
	}
}
