package model

import "time"

// TurnRecord is one append-only audit entry: a question the assistant asked
// and what the user answered, with the sentiment and score attached to that
// answer. Records are never mutated and are replayed ordered by timestamp.
type TurnRecord struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	SessionID  string    `json:"sessionId" bson:"sessionId"`
	State      string    `json:"estado" bson:"estado"`
	PromptText string    `json:"pregunta" bson:"pregunta"`
	UserAnswer string    `json:"respuestaUsuario" bson:"respuestaUsuario"`
	Emotion    string    `json:"emocion" bson:"emocion"`
	Confidence float64   `json:"confianza" bson:"confianza"`
	Score      *int      `json:"puntuacion,omitempty" bson:"puntuacion,omitempty"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
}

// Interaction is one anonymized exchange from the free-text analysis path.
// The user's message is stored only as a SHA-256 hash.
type Interaction struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	MessageHash string    `json:"mensajeHash" bson:"mensajeHash"`
	Reply       string    `json:"respuestaSistema" bson:"respuestaSistema"`
	Emotion     string    `json:"emocion" bson:"emocion"`
	Timestamp   time.Time `json:"timestamp" bson:"timestamp"`
}
