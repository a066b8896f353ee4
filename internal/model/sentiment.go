package model

// Sentiment labels as exposed to users and stored in the audit trail.
const (
	EmotionPositive = "Positivo"
	EmotionNeutral  = "Neutro"
	EmotionNegative = "Negativo"
	EmotionUnknown  = "desconocido"
)

// Sentiment is the result of classifying one user answer.
type Sentiment struct {
	Label      string  `json:"estadoEmocional"`
	Confidence float64 `json:"confianza"`
}

// UnknownSentiment is the sentinel returned when the classifier cannot run:
// empty input, collaborator down, malformed reply. Never an error.
func UnknownSentiment() Sentiment {
	return Sentiment{Label: EmotionUnknown, Confidence: 0}
}

// IsNegative reports whether the answer carried a confidently negative tone.
func (s Sentiment) IsNegative() bool {
	return s.Label == EmotionNegative
}
