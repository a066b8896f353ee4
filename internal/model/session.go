package model

// StateInitial is where every new conversation starts.
const StateInitial = "presentacion"

// Session is the per-conversation state record kept in Redis between turns.
// Created on the first turn, rewritten on every non-terminal turn, deleted
// once the interview reaches a terminal state.
type Session struct {
	CurrentState string            `json:"estadoActual"`
	Answers      map[string]string `json:"datosGuardados"`
}

// NewSession returns the initial record for a fresh session id.
func NewSession() *Session {
	return &Session{
		CurrentState: StateInitial,
		Answers:      make(map[string]string),
	}
}
