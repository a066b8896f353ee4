package model

// InputMode tells the client how the next answer should be captured.
type InputMode string

const (
	InputFreeText InputMode = "texto_libre" // plain text box
	InputChoices  InputMode = "sugerencias" // closed choice list only
	InputMixed    InputMode = "mixto"       // text box plus suggestion chips
	InputNone     InputMode = "fin"         // conversation over, no input
)

// TurnRequest is the inbound body of POST /v1/chat.
type TurnRequest struct {
	SessionID string `json:"session_id"`
	UserText  string `json:"mensaje_usuario"`
}

// TurnResponse is what the assistant says next and how the client should
// render the answer controls.
type TurnResponse struct {
	State       string    `json:"estado"`
	Message     string    `json:"mensaje"`
	InputMode   InputMode `json:"modo_entrada"`
	Suggestions []string  `json:"sugerencias"`
}

// AnalyzeRequest is the inbound body of POST /v1/analyze.
type AnalyzeRequest struct {
	UserText string `json:"mensaje_usuario"`
}

// AnalyzeResponse is the free-text analysis result.
type AnalyzeResponse struct {
	EmotionalState string `json:"estado_emocional"`
	Reply          string `json:"respuesta"`
}
