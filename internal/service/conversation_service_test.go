package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serena/internal/dialog"
	"serena/internal/model"
	"serena/internal/nlp"
	"serena/internal/scoring"
)

// In-memory fakes for the Redis and Mongo stores.

type fakeStateCache struct {
	sessions map[string]*model.Session
}

func newFakeStateCache() *fakeStateCache {
	return &fakeStateCache{sessions: make(map[string]*model.Session)}
}

func (f *fakeStateCache) Get(_ context.Context, sessionID string) (*model.Session, error) {
	return f.sessions[sessionID], nil
}

func (f *fakeStateCache) Set(_ context.Context, sessionID string, session *model.Session) error {
	f.sessions[sessionID] = session
	return nil
}

func (f *fakeStateCache) Delete(_ context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

type fakeScoreCache struct {
	scores map[string]map[string]int
}

func newFakeScoreCache() *fakeScoreCache {
	return &fakeScoreCache{scores: make(map[string]map[string]int)}
}

func (f *fakeScoreCache) Get(_ context.Context, sessionID string) (map[string]int, error) {
	if s, ok := f.scores[sessionID]; ok {
		return s, nil
	}
	return make(map[string]int), nil
}

func (f *fakeScoreCache) Set(_ context.Context, sessionID string, scores map[string]int) error {
	f.scores[sessionID] = scores
	return nil
}

func (f *fakeScoreCache) Delete(_ context.Context, sessionID string) error {
	delete(f.scores, sessionID)
	return nil
}

type fakeHistoryRepo struct {
	records      []*model.TurnRecord
	interactions []*model.Interaction
}

func (f *fakeHistoryRepo) Append(_ context.Context, record *model.TurnRecord) error {
	f.records = append(f.records, record)
	return nil
}

func (f *fakeHistoryRepo) GetBySessionID(_ context.Context, sessionID string) ([]*model.TurnRecord, error) {
	var out []*model.TurnRecord
	for _, r := range f.records {
		if r.SessionID == sessionID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeHistoryRepo) SaveInteraction(_ context.Context, interaction *model.Interaction) error {
	f.interactions = append(f.interactions, interaction)
	return nil
}

type fakeSentiment struct {
	result model.Sentiment
}

func (f *fakeSentiment) Classify(_ context.Context, _ string) model.Sentiment {
	return f.result
}

type conversationFixture struct {
	svc     *ConversationService
	states  *fakeStateCache
	scores  *fakeScoreCache
	history *fakeHistoryRepo
}

func newConversationFixture() *conversationFixture {
	states := newFakeStateCache()
	scores := newFakeScoreCache()
	history := &fakeHistoryRepo{}
	machine := dialog.NewMachine(nlp.NewIntentClassifier())
	sentiment := &fakeSentiment{result: model.UnknownSentiment()}
	return &conversationFixture{
		svc:     NewConversationService(states, scores, history, machine, sentiment),
		states:  states,
		scores:  scores,
		history: history,
	}
}

func TestHandleTurnInitializesSession(t *testing.T) {
	fx := newConversationFixture()
	ctx := context.Background()

	resp := fx.svc.HandleTurn(ctx, "s1", "hola")
	assert.Equal(t, dialog.StateConsent, resp.State)

	stored := fx.states.sessions["s1"]
	require.NotNil(t, stored)
	assert.Equal(t, dialog.StateConsent, stored.CurrentState)

	require.Len(t, fx.history.records, 1)
	rec := fx.history.records[0]
	assert.Equal(t, "s1", rec.SessionID)
	assert.Equal(t, dialog.StatePresentation, rec.State)
	assert.Equal(t, "hola", rec.UserAnswer)
	assert.NotEmpty(t, rec.ID)
	assert.Nil(t, rec.Score)
}

func TestHandleTurnEmptyInputReprompts(t *testing.T) {
	fx := newConversationFixture()
	ctx := context.Background()

	fx.states.sessions["s1"] = &model.Session{
		CurrentState: dialog.StateFrequency,
		Answers:      map[string]string{},
	}

	resp := fx.svc.HandleTurn(ctx, "s1", "   ")
	assert.Equal(t, dialog.StateFrequency, resp.State)
	assert.Equal(t, model.InputChoices, resp.InputMode)

	// No state change and no audit entry.
	assert.Equal(t, dialog.StateFrequency, fx.states.sessions["s1"].CurrentState)
	assert.Empty(t, fx.history.records)
}

func TestHandleTurnPersistsScores(t *testing.T) {
	fx := newConversationFixture()
	ctx := context.Background()

	fx.states.sessions["s1"] = &model.Session{
		CurrentState: dialog.StateFrequency,
		Answers:      map[string]string{},
	}

	resp := fx.svc.HandleTurn(ctx, "s1", "Todos los días")
	assert.Equal(t, dialog.StateDuration, resp.State)
	assert.Equal(t, 10, fx.scores.scores["s1"][scoring.SymFrequency])

	require.Len(t, fx.history.records, 1)
	require.NotNil(t, fx.history.records[0].Score)
	assert.Equal(t, 10, *fx.history.records[0].Score)
}

func TestHandleTurnTerminalTeardown(t *testing.T) {
	fx := newConversationFixture()
	ctx := context.Background()

	fx.states.sessions["s1"] = &model.Session{
		CurrentState: dialog.StateEmpathy,
		Answers:      map[string]string{"nombre_usuario": "Iris"},
	}
	fx.scores.scores["s1"] = map[string]int{scoring.SymFrequency: 5}

	resp := fx.svc.HandleTurn(ctx, "s1", "un 8")
	assert.Equal(t, dialog.StateEnd, resp.State)

	_, stateKept := fx.states.sessions["s1"]
	_, scoresKept := fx.scores.scores["s1"]
	assert.False(t, stateKept)
	assert.False(t, scoresKept)

	// The audit trail survives the teardown.
	require.Len(t, fx.history.records, 1)
}

func TestHandleTurnCrisisTeardown(t *testing.T) {
	fx := newConversationFixture()
	ctx := context.Background()

	fx.states.sessions["s1"] = &model.Session{
		CurrentState: dialog.StateIdeation,
		Answers:      map[string]string{},
	}

	resp := fx.svc.HandleTurn(ctx, "s1", "Sí, pensé en hacerme daño y tengo un plan")
	assert.Equal(t, dialog.StateCrisisEnd, resp.State)
	assert.Contains(t, resp.Message, "024")

	_, stateKept := fx.states.sessions["s1"]
	assert.False(t, stateKept)

	require.Len(t, fx.history.records, 1)
	require.NotNil(t, fx.history.records[0].Score)
	assert.Equal(t, 3, *fx.history.records[0].Score)
}

func TestHandleTurnUnknownStateFailsTurnOnly(t *testing.T) {
	fx := newConversationFixture()
	ctx := context.Background()

	fx.states.sessions["s1"] = &model.Session{
		CurrentState: "estado_fantasma",
		Answers:      map[string]string{},
	}

	resp := fx.svc.HandleTurn(ctx, "s1", "hola")
	assert.Equal(t, "error", resp.State)

	// The stored record is left untouched for the next turn.
	assert.Equal(t, "estado_fantasma", fx.states.sessions["s1"].CurrentState)
	assert.Empty(t, fx.history.records)
}
