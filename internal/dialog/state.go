// Package dialog implements the interview state machine: a registry of named
// states, each binding a prompt builder to a transition function. The machine
// itself is pure; persistence of session state, scores and audit records is
// the caller's job.
package dialog

import (
	"context"
	"errors"

	"serena/internal/model"
	"serena/internal/nlp"
)

// Interview states. The names travel on the wire as the response's estado.
const (
	StatePresentation  = "presentacion"
	StateConsent       = "consentimiento"
	StateAskName       = "preguntar_nombre"
	StateAskIdentity   = "preguntar_identidad"
	StateSadnessIntro  = "inicio_exploracion_tristeza"
	StateFrequency     = "preguntar_frecuencia"
	StateDuration      = "preguntar_duracion"
	StateIntensity     = "preguntar_intensidad"
	StateAnhedonia     = "preguntar_anhedonia"
	StateAnhedoniaDet  = "detalle_anhedonia"
	StateHopelessness  = "preguntar_desesperanza"
	StateWorthlessness = "preguntar_inutilidad"
	StateWorthlessDet  = "detalle_inutilidad"
	StateIdeation      = "preguntar_ideacion_suicida"
	StateFatigue       = "preguntar_fatiga"
	StateSleep         = "preguntar_sueno"
	StateSleepDet      = "detalle_sueno"
	StateAppetite      = "preguntar_apetito"
	StateAppetiteDet   = "detalle_apetito"
	StateConcentration = "preguntar_concentracion"
	StateConcentraDet  = "detalle_concentracion"
	StateAgitation     = "preguntar_agitacion"
	StateAgitationDet  = "detalle_agitacion"
	StateAntecedents   = "preguntar_antecedentes"
	StateConsequents1  = "preguntar_consecuentes_1"
	StateConsequents2  = "preguntar_consecuentes_2"
	StateImpact        = "preguntar_impacto_diario"
	StateImpactDet     = "detalle_impacto_diario"
	StateStrategies1   = "preguntar_estrategias_1"
	StateStrategies2   = "preguntar_estrategias_2"
	StateSummary       = "mostrar_resumen"
	StateEmpathy       = "preguntar_empatia"
	StateEnd           = "fin"
	StateCrisisEnd     = "cerrar_evaluacion_por_riesgo_alto"
)

// ErrUnknownState signals a corrupted or stale session record. The turn
// fails without mutating anything; the next turn gets a fresh chance.
var ErrUnknownState = errors.New("unknown conversation state")

// IsTerminal reports whether the state ends the conversation.
func IsTerminal(state string) bool {
	return state == StateEnd || state == StateCrisisEnd
}

// Input is one classified user turn as the machine sees it. Sentiment is
// computed once by the controller and reused for the audit record.
type Input struct {
	Text      string
	Sentiment model.Sentiment
}

// transitionFunc consumes one answer in one state. It may mutate answers and
// scores and returns the next prompt (whose State field is the next state).
type transitionFunc func(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse

// stateSpec binds a state to its prompt builder and transition.
type stateSpec struct {
	prompt     func(answers map[string]string) model.TurnResponse
	transition transitionFunc
}

// Machine drives the interview. Safe for concurrent use: all per-session
// data comes in through Step's arguments.
type Machine struct {
	intents *nlp.IntentClassifier
	states  map[string]stateSpec
}

// NewMachine builds the state registry around the given intent classifier.
func NewMachine(intents *nlp.IntentClassifier) *Machine {
	m := &Machine{intents: intents}
	m.states = map[string]stateSpec{
		StatePresentation:  {promptPresentation, transitionPresentation},
		StateConsent:       {promptPresentation, transitionConsent},
		StateAskName:       {promptAskName, transitionAskName},
		StateAskIdentity:   {promptAskIdentity, transitionAskIdentity},
		StateSadnessIntro:  {promptSadnessIntro, transitionSadnessIntro},
		StateFrequency:     {promptFrequency, transitionFrequency},
		StateDuration:      {promptDuration, transitionDuration},
		StateIntensity:     {promptIntensity, transitionIntensity},
		StateAnhedonia:     {promptAnhedonia, transitionAnhedonia},
		StateAnhedoniaDet:  {promptAnhedoniaDetail, transitionAnhedoniaDetail},
		StateHopelessness:  {promptHopelessness, transitionHopelessness},
		StateWorthlessness: {promptWorthlessness, transitionWorthlessness},
		StateWorthlessDet:  {promptWorthlessDetail, transitionWorthlessDetail},
		StateIdeation:      {promptIdeation, transitionIdeation},
		StateFatigue:       {promptFatigue, transitionFatigue},
		StateSleep:         {promptSleep, transitionSleep},
		StateSleepDet:      {promptSleepDetail, transitionSleepDetail},
		StateAppetite:      {promptAppetite, transitionAppetite},
		StateAppetiteDet:   {promptAppetiteDetail, transitionAppetiteDetail},
		StateConcentration: {promptConcentration, transitionConcentration},
		StateConcentraDet:  {promptConcentrationDetail, transitionConcentrationDetail},
		StateAgitation:     {promptAgitation, transitionAgitation},
		StateAgitationDet:  {promptAgitationDetail, transitionAgitationDetail},
		StateAntecedents:   {promptAntecedents, transitionAntecedents},
		StateConsequents1:  {promptConsequents1, transitionConsequents1},
		StateConsequents2:  {promptConsequents2, transitionConsequents2},
		StateImpact:        {promptImpact, transitionImpact},
		StateImpactDet:     {promptImpactDetail, transitionImpactDetail},
		StateStrategies1:   {promptStrategies1, transitionStrategies1},
		StateStrategies2:   {promptStrategies2, transitionStrategies2},
		StateSummary:       {promptSummaryWait, transitionSummary},
		StateEmpathy:       {promptEmpathy, transitionEmpathy},
	}
	return m
}

// Step consumes one non-empty user turn in the given state. answers and
// scores are mutated in place. ErrUnknownState is the only error.
func (m *Machine) Step(ctx context.Context, in Input, state string, answers map[string]string, scores map[string]int) (model.TurnResponse, error) {
	spec, ok := m.states[state]
	if !ok {
		return model.TurnResponse{}, ErrUnknownState
	}
	return spec.transition(m, ctx, in, answers, scores), nil
}

// Prompt re-emits the current state's question, used for the empty-input
// re-prompt path.
func (m *Machine) Prompt(state string, answers map[string]string) (model.TurnResponse, error) {
	spec, ok := m.states[state]
	if !ok {
		return model.TurnResponse{}, ErrUnknownState
	}
	return spec.prompt(answers), nil
}

// clarify holds the state and asks the user to rephrase, keeping the same
// input controls so closed lists stay closed.
func (m *Machine) clarify(state string, answers map[string]string) model.TurnResponse {
	base := m.states[state].prompt(answers)
	return model.TurnResponse{
		State: state,
		Message: "Permíteme explicarlo de otra forma. No te preocupes si no tienes una respuesta clara aún, " +
			"puedes tomarte tu tiempo para pensarla o decir lo primero que te venga a la mente.\n\n" + base.Message,
		InputMode:   base.InputMode,
		Suggestions: base.Suggestions,
	}
}

// empathicPreface builds the empathetic opener from the detected sentiment.
func empathicPreface(s model.Sentiment) string {
	if s.IsNegative() {
		return "Lamento que te sientas así, compartirlo ya es un primer paso importante. "
	}
	return "Gracias por compartirlo. "
}

// userName returns the stored name or the neutral fallback.
func userName(answers map[string]string) string {
	if name, ok := answers["nombre_usuario"]; ok && name != "" {
		return name
	}
	return "Usuario"
}
