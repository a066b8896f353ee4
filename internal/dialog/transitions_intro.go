package dialog

import (
	"context"
	"fmt"

	"serena/internal/model"
	"serena/internal/nlp"
	"serena/internal/textutil"
)

// transitionPresentation greets and moves straight to the consent question,
// whatever the user opened with.
func transitionPresentation(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse {
	return promptPresentation(answers)
}

func transitionConsent(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse {
	if nlp.IsAmbiguous(in.Text) {
		return m.clarify(StateConsent, answers)
	}

	switch m.intents.Classify(ctx, in.Text) {
	case nlp.IntentAffirmative:
		answers["consentimiento"] = in.Text
		return promptAskName(answers)
	case nlp.IntentNegative:
		return model.TurnResponse{
			State: StateEnd,
			Message: "Entiendo tu decisión. Gracias por tu tiempo. " +
				"Si en otro momento quieres hablar, estaré disponible para escucharte.",
			InputMode:   model.InputNone,
			Suggestions: []string{},
		}
	default:
		return m.clarify(StateConsent, answers)
	}
}

func transitionAskName(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse {
	answers["nombre_usuario"] = textutil.ExtractName(in.Text)
	return promptAskIdentity(answers)
}

func transitionAskIdentity(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse {
	answers["identidad"] = textutil.Fold(in.Text)
	return promptSadnessIntro(answers)
}

func transitionSadnessIntro(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse {
	if nlp.IsAmbiguous(in.Text) {
		return m.clarify(StateSadnessIntro, answers)
	}

	switch m.intents.Classify(ctx, in.Text) {
	case nlp.IntentAffirmative:
		answers["respuesta_tristeza"] = in.Text
		return promptFrequency(answers)
	case nlp.IntentNegative:
		return model.TurnResponse{
			State: StateEnd,
			Message: fmt.Sprintf("¡Me alegra saberlo, %s! Parece que no estás experimentando tristeza en estos momentos. ", userName(answers)) +
				"Gracias por tu participación.",
			InputMode:   model.InputNone,
			Suggestions: []string{},
		}
	default:
		return m.clarify(StateSadnessIntro, answers)
	}
}
