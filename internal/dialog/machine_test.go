package dialog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serena/internal/model"
	"serena/internal/nlp"
	"serena/internal/scoring"
)

func newTestMachine() *Machine {
	return NewMachine(nlp.NewIntentClassifier())
}

func step(t *testing.T, m *Machine, state, text string, answers map[string]string, scores map[string]int) model.TurnResponse {
	t.Helper()
	resp, err := m.Step(context.Background(), Input{Text: text, Sentiment: model.UnknownSentiment()}, state, answers, scores)
	require.NoError(t, err)
	return resp
}

func TestPresentationGreetsOnAnyInput(t *testing.T) {
	m := newTestMachine()
	for _, opener := range []string{"hola", "buenas tardes", "empecemos ya"} {
		resp := step(t, m, StatePresentation, opener, map[string]string{}, map[string]int{})
		assert.Equal(t, StateConsent, resp.State, "opener %q", opener)
		assert.Equal(t, model.InputMixed, resp.InputMode)
		assert.Len(t, resp.Suggestions, 2)
	}
}

func TestConsent(t *testing.T) {
	m := newTestMachine()

	t.Run("accept moves to name", func(t *testing.T) {
		for _, text := range []string{"Sí, estoy de acuerdo", "Sí, quiero continuar"} {
			answers := map[string]string{}
			resp := step(t, m, StateConsent, text, answers, map[string]int{})
			assert.Equal(t, StateAskName, resp.State, "input %q", text)
			assert.Equal(t, text, answers["consentimiento"])
		}
	})

	t.Run("decline ends the conversation", func(t *testing.T) {
		resp := step(t, m, StateConsent, "No, prefiero no continuar", map[string]string{}, map[string]int{})
		assert.Equal(t, StateEnd, resp.State)
		assert.Equal(t, model.InputNone, resp.InputMode)
		assert.True(t, IsTerminal(resp.State))
	})

	t.Run("ambiguous holds the state", func(t *testing.T) {
		resp := step(t, m, StateConsent, "no sé, quizás", map[string]string{}, map[string]int{})
		assert.Equal(t, StateConsent, resp.State)
	})
}

func TestNameAndIdentity(t *testing.T) {
	m := newTestMachine()
	answers := map[string]string{}

	resp := step(t, m, StateAskName, "me llamo lucía", answers, map[string]int{})
	assert.Equal(t, StateAskIdentity, resp.State)
	assert.Equal(t, "Lucía", answers["nombre_usuario"])
	assert.Contains(t, resp.Message, "Lucía")

	resp = step(t, m, StateAskIdentity, "Femenino", answers, map[string]int{})
	assert.Equal(t, StateSadnessIntro, resp.State)
	assert.Equal(t, "femenino", answers["identidad"])
}

func TestSadnessIntroNegativeEndsEarly(t *testing.T) {
	m := newTestMachine()
	answers := map[string]string{"nombre_usuario": "Juan"}
	resp := step(t, m, StateSadnessIntro, "No, me he sentido bien", answers, map[string]int{})
	assert.Equal(t, StateEnd, resp.State)
	assert.Contains(t, resp.Message, "Juan")
}

func TestFrequencyScoring(t *testing.T) {
	m := newTestMachine()

	t.Run("closed-list answer scores and advances", func(t *testing.T) {
		answers, scores := map[string]string{}, map[string]int{}
		resp := step(t, m, StateFrequency, "Todos los días", answers, scores)
		assert.Equal(t, StateDuration, resp.State)
		assert.Equal(t, 10, scores[scoring.SymFrequency])
		assert.Equal(t, "Todos los días", answers["frecuencia_tristeza"])
	})

	t.Run("unrecognized answer re-prompts without scoring", func(t *testing.T) {
		answers, scores := map[string]string{}, map[string]int{}
		resp := step(t, m, StateFrequency, "zanahoria", answers, scores)
		assert.Equal(t, StateFrequency, resp.State)
		assert.Empty(t, scores)
		assert.Empty(t, answers)
	})

	t.Run("ambiguous re-prompt is idempotent", func(t *testing.T) {
		answers, scores := map[string]string{}, map[string]int{}
		first := step(t, m, StateFrequency, "no sé", answers, scores)
		second := step(t, m, StateFrequency, "no sé", answers, scores)
		assert.Equal(t, first, second)
		assert.Empty(t, scores)
	})
}

func TestIntensityBucketsFraming(t *testing.T) {
	m := newTestMachine()

	answers, scores := map[string]string{}, map[string]int{}
	resp := step(t, m, StateIntensity, "entre 8 y 9", answers, scores)
	assert.Equal(t, StateAnhedonia, resp.State)
	assert.Equal(t, 8, scores[scoring.SymIntensity])
	assert.Contains(t, resp.Message, "ponerle número")

	answers, scores = map[string]string{}, map[string]int{}
	resp = step(t, m, StateIntensity, "un 3", answers, scores)
	assert.Equal(t, StateAnhedonia, resp.State)
	assert.Equal(t, 3, scores[scoring.SymIntensity])
	assert.NotContains(t, resp.Message, "ponerle número")
}

func TestBinarySymptomBranching(t *testing.T) {
	m := newTestMachine()

	t.Run("affirmative goes to detail", func(t *testing.T) {
		answers, scores := map[string]string{}, map[string]int{}
		resp := step(t, m, StateAnhedonia, "Sí, he perdido interés", answers, scores)
		assert.Equal(t, StateAnhedoniaDet, resp.State)
		assert.Equal(t, 1, scores[scoring.SymAnhedonia])
		assert.Equal(t, "si", answers["anhedonia"])
	})

	t.Run("negative skips detail", func(t *testing.T) {
		answers, scores := map[string]string{}, map[string]int{}
		resp := step(t, m, StateAnhedonia, "No, sigo disfrutando igual", answers, scores)
		assert.Equal(t, StateHopelessness, resp.State)
		assert.Equal(t, 0, scores[scoring.SymAnhedonia])
	})

	t.Run("detail saves free text", func(t *testing.T) {
		answers := map[string]string{}
		resp := step(t, m, StateSleepDet, "me despierto de madrugada", answers, map[string]int{})
		assert.Equal(t, StateAppetite, resp.State)
		assert.Equal(t, "me despierto de madrugada", answers["detalle_sueno"])
	})
}

func TestIdeationScreening(t *testing.T) {
	m := newTestMachine()

	t.Run("no-risk answer scores zero and continues", func(t *testing.T) {
		answers, scores := map[string]string{}, map[string]int{}
		resp := step(t, m, StateIdeation, "No, en ningún momento", answers, scores)
		assert.Equal(t, StateFatigue, resp.State)
		assert.Equal(t, 0, scores[scoring.SymIdeation])
	})

	t.Run("intermediate buckets keep the interview going", func(t *testing.T) {
		answers, scores := map[string]string{}, map[string]int{}
		resp := step(t, m, StateIdeation, "Sí, pensé en hacerme daño, pero no tengo intención", answers, scores)
		assert.Equal(t, StateFatigue, resp.State)
		assert.Equal(t, 2, scores[scoring.SymIdeation])
	})

	t.Run("plan answer terminates with resources", func(t *testing.T) {
		answers := map[string]string{"nombre_usuario": "Mar"}
		scores := map[string]int{}
		resp := step(t, m, StateIdeation, "Sí, pensé en hacerme daño y tengo un plan", answers, scores)
		assert.Equal(t, StateCrisisEnd, resp.State)
		assert.Equal(t, model.InputNone, resp.InputMode)
		assert.Equal(t, 3, scores[scoring.SymIdeation])
		assert.Contains(t, resp.Message, "024")
		assert.Contains(t, resp.Message, "717 003 717")
		assert.Contains(t, resp.Message, "112")
		assert.True(t, IsTerminal(resp.State))
	})

	t.Run("free text mentioning a plan also escalates", func(t *testing.T) {
		scores := map[string]int{}
		resp := step(t, m, StateIdeation, "últimamente tengo un plan para hacerlo", map[string]string{}, scores)
		assert.Equal(t, StateCrisisEnd, resp.State)
		assert.Equal(t, 3, scores[scoring.SymIdeation])
	})

	t.Run("unresolvable answer re-prompts the closed list", func(t *testing.T) {
		scores := map[string]int{}
		resp := step(t, m, StateIdeation, "prefiero cambiar de tema", map[string]string{}, scores)
		assert.Equal(t, StateIdeation, resp.State)
		assert.Equal(t, model.InputChoices, resp.InputMode)
		assert.Equal(t, ideationChoices(), resp.Suggestions)
		assert.Empty(t, scores)
	})

	t.Run("leading no never counts as denial", func(t *testing.T) {
		// Hedges, refusals and distress that happen to start with "no" must
		// re-prompt, never record a no-risk score.
		for _, text := range []string{
			"no sé",
			"no quiero hablar de eso",
			"no aguanto más, quiero morirme",
		} {
			scores := map[string]int{}
			resp := step(t, m, StateIdeation, text, map[string]string{}, scores)
			assert.Equal(t, StateIdeation, resp.State, "input %q", text)
			assert.Equal(t, ideationChoices(), resp.Suggestions, "input %q", text)
			assert.Empty(t, scores, "input %q", text)
		}
	})

	t.Run("bare no still resolves to no risk", func(t *testing.T) {
		scores := map[string]int{}
		resp := step(t, m, StateIdeation, "No", map[string]string{}, scores)
		assert.Equal(t, StateFatigue, resp.State)
		assert.Equal(t, 0, scores[scoring.SymIdeation])
	})

	t.Run("crisis wins regardless of low accumulated scores", func(t *testing.T) {
		scores := map[string]int{scoring.SymFrequency: 1, scoring.SymDuration: 1, scoring.SymIntensity: 1}
		resp := step(t, m, StateIdeation, "tengo un plan", map[string]string{}, scores)
		assert.Equal(t, StateCrisisEnd, resp.State)
	})
}

func TestSummaryAndEmpathyClose(t *testing.T) {
	m := newTestMachine()

	t.Run("severity tier from the triad", func(t *testing.T) {
		answers := map[string]string{"nombre_usuario": "Iris"}
		scores := map[string]int{
			scoring.SymFrequency: 10,
			scoring.SymDuration:  8,
			scoring.SymIntensity: 9,
		}
		resp := step(t, m, StateStrategies2, "salgo a caminar", answers, scores)
		assert.Equal(t, StateSummary, resp.State)
		assert.Contains(t, resp.Message, scoring.SeveritySevere)
		assert.Equal(t, scoring.SeveritySevere, answers["evaluacion"])
	})

	t.Run("summary acknowledgement moves to empathy", func(t *testing.T) {
		resp := step(t, m, StateSummary, "Continuar", map[string]string{}, map[string]int{})
		assert.Equal(t, StateEmpathy, resp.State)
	})

	t.Run("empathy rating closes the interview", func(t *testing.T) {
		answers, scores := map[string]string{}, map[string]int{}
		resp := step(t, m, StateEmpathy, "un 9", answers, scores)
		assert.Equal(t, StateEnd, resp.State)
		assert.Equal(t, model.InputNone, resp.InputMode)
		assert.Equal(t, 9, scores[scoring.SymEmpathy])
	})

	t.Run("non-numeric rating re-prompts", func(t *testing.T) {
		resp := step(t, m, StateEmpathy, "muy empático todo", map[string]string{}, map[string]int{})
		assert.Equal(t, StateEmpathy, resp.State)
	})
}

func TestUnknownState(t *testing.T) {
	m := newTestMachine()
	_, err := m.Step(context.Background(), Input{Text: "hola"}, "estado_fantasma", map[string]string{}, map[string]int{})
	assert.ErrorIs(t, err, ErrUnknownState)

	_, err = m.Prompt("estado_fantasma", map[string]string{})
	assert.ErrorIs(t, err, ErrUnknownState)
}

func TestPromptMatchesTransitionQuestion(t *testing.T) {
	m := newTestMachine()
	resp, err := m.Prompt(StateFrequency, map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, StateFrequency, resp.State)
	assert.Equal(t, model.InputChoices, resp.InputMode)
	assert.Len(t, resp.Suggestions, 10)
}
