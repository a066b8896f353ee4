// Package service wires the interview engine to its stores and
// collaborators.
package service

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"serena/internal/cache"
	"serena/internal/dialog"
	"serena/internal/model"
	"serena/internal/nlp"
	"serena/internal/repository"
)

// ConversationService is the orchestration entry point: one call per turn.
//
// The session record is read, stepped and written back on every turn. Two
// concurrent turns for the same session id race on that read-modify-write
// and can lose an update; the source system behaves the same way and this
// port keeps that behavior. The cache interface is where a version check
// would go if that ever needs fixing.
type ConversationService struct {
	states    cache.StateCache
	scores    cache.ScoreCache
	history   repository.HistoryRepo
	machine   *dialog.Machine
	sentiment nlp.SentimentClassifier
}

// NewConversationService creates the conversation controller.
func NewConversationService(
	states cache.StateCache,
	scores cache.ScoreCache,
	history repository.HistoryRepo,
	machine *dialog.Machine,
	sentiment nlp.SentimentClassifier,
) *ConversationService {
	return &ConversationService{
		states:    states,
		scores:    scores,
		history:   history,
		machine:   machine,
		sentiment: sentiment,
	}
}

// HandleTurn processes one user message for one session and returns the
// assistant's next turn. Collaborator and persistence failures degrade; the
// only error-shaped outcome is the generic conversational error response.
func (s *ConversationService) HandleTurn(ctx context.Context, sessionID, userText string) *model.TurnResponse {
	session, err := s.states.Get(ctx, sessionID)
	if err != nil {
		log.Printf("state store read failed for session %s: %v", sessionID, err)
		return errorResponse()
	}
	if session == nil {
		session = model.NewSession()
	}

	// Validation short-circuit: empty input re-prompts the current question
	// without scoring, state change or audit entry.
	if strings.TrimSpace(userText) == "" {
		prompt, err := s.machine.Prompt(session.CurrentState, session.Answers)
		if err != nil {
			return errorResponse()
		}
		prompt.State = session.CurrentState
		return &prompt
	}

	scores, err := s.scores.Get(ctx, sessionID)
	if err != nil {
		log.Printf("score store read failed for session %s: %v", sessionID, err)
		scores = make(map[string]int)
	}

	// The question being answered, for the audit trail.
	askedPrompt, _ := s.machine.Prompt(session.CurrentState, session.Answers)

	sentiment := s.sentiment.Classify(ctx, userText)

	before := copyScores(scores)
	in := dialog.Input{Text: userText, Sentiment: sentiment}

	resp, err := s.machine.Step(ctx, in, session.CurrentState, session.Answers, scores)
	if err != nil {
		// Corrupted or stale state record: fail this turn only, leave the
		// stored record untouched so the next turn gets a fresh chance.
		log.Printf("session %s in unrecognized state %q", sessionID, session.CurrentState)
		return errorResponse()
	}

	s.appendAudit(ctx, sessionID, session.CurrentState, askedPrompt.Message, userText, sentiment, turnScore(before, scores))

	if dialog.IsTerminal(resp.State) {
		s.teardown(ctx, sessionID)
		return &resp
	}

	session.CurrentState = resp.State
	if err := s.states.Set(ctx, sessionID, session); err != nil {
		log.Printf("state store write failed for session %s: %v", sessionID, err)
	}
	if err := s.scores.Set(ctx, sessionID, scores); err != nil {
		log.Printf("score store write failed for session %s: %v", sessionID, err)
	}
	return &resp
}

// appendAudit writes the turn record. Audit failures are logged and
// swallowed: the conversational response is never blocked by persistence.
func (s *ConversationService) appendAudit(ctx context.Context, sessionID, state, prompt, answer string, sentiment model.Sentiment, score *int) {
	record := &model.TurnRecord{
		ID:         uuid.New().String(),
		SessionID:  sessionID,
		State:      state,
		PromptText: prompt,
		UserAnswer: answer,
		Emotion:    sentiment.Label,
		Confidence: sentiment.Confidence,
		Score:      score,
	}
	if err := s.history.Append(ctx, record); err != nil {
		log.Printf("audit append failed for session %s: %v", sessionID, err)
	}
}

func (s *ConversationService) teardown(ctx context.Context, sessionID string) {
	if err := s.states.Delete(ctx, sessionID); err != nil {
		log.Printf("state teardown failed for session %s: %v", sessionID, err)
	}
	if err := s.scores.Delete(ctx, sessionID); err != nil {
		log.Printf("score teardown failed for session %s: %v", sessionID, err)
	}
}

// turnScore extracts the score recorded by this turn, nil when the turn
// scored nothing.
func turnScore(before, after map[string]int) *int {
	for key, val := range after {
		if prev, ok := before[key]; !ok || prev != val {
			v := val
			return &v
		}
	}
	return nil
}

func copyScores(scores map[string]int) map[string]int {
	out := make(map[string]int, len(scores))
	for k, v := range scores {
		out[k] = v
	}
	return out
}

// errorResponse is the generic user-visible failure: always a normal
// conversational message, never a raw protocol error.
func errorResponse() *model.TurnResponse {
	return &model.TurnResponse{
		State:       "error",
		Message:     "Ha ocurrido un error inesperado. Por favor, vuelve a intentarlo en un momento.",
		InputMode:   model.InputFreeText,
		Suggestions: []string{},
	}
}
