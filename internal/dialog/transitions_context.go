package dialog

import (
	"context"
	"fmt"

	"serena/internal/model"
	"serena/internal/scoring"
)

func transitionAntecedents(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse {
	answers["antecedentes_generales"] = in.Text
	return withPreface(in.Sentiment, promptConsequents1(answers))
}

func transitionConsequents1(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse {
	answers["consecuentes_generales_1"] = in.Text
	return promptConsequents2(answers)
}

func transitionConsequents2(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse {
	answers["consecuentes_generales_2"] = in.Text
	return promptImpact(answers)
}

func transitionImpact(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse {
	affirmative, reprompt := m.gateYesNo(ctx, in, StateImpact, answers)
	if reprompt != nil {
		return *reprompt
	}
	answers["impacto_diario"] = boolAnswer(affirmative)
	scores[scoring.SymImpact] = scoring.ScoreBinary(affirmative)

	if affirmative {
		return promptImpactDetail(answers)
	}
	return promptStrategies1(answers)
}

func transitionImpactDetail(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse {
	answers["detalle_impacto_diario"] = in.Text
	return withPreface(in.Sentiment, promptStrategies1(answers))
}

func transitionStrategies1(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse {
	answers["estrategias_1"] = in.Text
	return promptStrategies2(answers)
}

func transitionStrategies2(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse {
	answers["estrategias_2"] = in.Text
	return summaryResponse(answers, scores)
}

// summaryResponse closes the questionnaire with the severity profile built
// from the sadness-triad scores.
func summaryResponse(answers map[string]string, scores map[string]int) model.TurnResponse {
	mean := scoring.TriadMean(scores)
	tier := scoring.Severity(mean)
	answers["evaluacion"] = tier

	return model.TurnResponse{
		State: StateSummary,
		Message: fmt.Sprintf("Hemos terminado con las preguntas, %s. Muchas gracias por tu confianza.\n\n", userName(answers)) +
			fmt.Sprintf("Según lo que me has contado sobre la frecuencia, duración e intensidad de tu tristeza, tu perfil orienta hacia un nivel %s.\n", tier) +
			"Recuerda que esto es solo una orientación y nunca un diagnóstico: esa valoración corresponde a un profesional.\n\n" +
			"Cuando quieras, continuamos con una última pregunta.",
		InputMode:   model.InputMixed,
		Suggestions: []string{"Continuar"},
	}
}

func transitionSummary(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse {
	return promptEmpathy(answers)
}

func transitionEmpathy(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse {
	score, ok := scoring.ScoreEmpathy(in.Text)
	if !ok {
		return m.clarify(StateEmpathy, answers)
	}
	answers["puntuacion_empatia"] = in.Text
	scores[scoring.SymEmpathy] = score

	return model.TurnResponse{
		State: StateEnd,
		Message: "¡Gracias por compartir cómo te has sentido! " +
			"Con esta información podremos generar un pequeño informe de tu estado emocional, que quedará disponible para descargar.\n\n" +
			"Cuídate mucho. Si en otro momento quieres volver a hablar, aquí estaré.",
		InputMode:   model.InputNone,
		Suggestions: []string{},
	}
}
