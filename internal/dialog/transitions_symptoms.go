package dialog

import (
	"context"

	"serena/internal/model"
	"serena/internal/nlp"
	"serena/internal/scoring"
)

// gateYesNo runs the shared ambiguity and intent gates of a binary symptom
// state. A non-nil response means the user must be re-prompted.
func (m *Machine) gateYesNo(ctx context.Context, in Input, state string, answers map[string]string) (affirmative bool, reprompt *model.TurnResponse) {
	if nlp.IsAmbiguous(in.Text) {
		resp := m.clarify(state, answers)
		return false, &resp
	}
	switch m.intents.Classify(ctx, in.Text) {
	case nlp.IntentAffirmative:
		return true, nil
	case nlp.IntentNegative:
		return false, nil
	default:
		resp := m.clarify(state, answers)
		return false, &resp
	}
}

func boolAnswer(affirmative bool) string {
	if affirmative {
		return "si"
	}
	return "no"
}

func transitionAnhedonia(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse {
	affirmative, reprompt := m.gateYesNo(ctx, in, StateAnhedonia, answers)
	if reprompt != nil {
		return *reprompt
	}
	answers["anhedonia"] = boolAnswer(affirmative)
	answers["anhedonia_texto"] = in.Text
	scores[scoring.SymAnhedonia] = scoring.ScoreBinary(affirmative)

	if affirmative {
		return promptAnhedoniaDetail(answers)
	}
	return promptHopelessness(answers)
}

func transitionAnhedoniaDetail(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse {
	answers["actividades_sin_disfrute"] = in.Text
	return withPreface(in.Sentiment, promptHopelessness(answers))
}

func transitionHopelessness(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse {
	affirmative, reprompt := m.gateYesNo(ctx, in, StateHopelessness, answers)
	if reprompt != nil {
		return *reprompt
	}
	answers["desesperanza"] = boolAnswer(affirmative)
	scores[scoring.SymHopelessness] = scoring.ScoreBinary(affirmative)

	next := promptWorthlessness(answers)
	if affirmative {
		return withPreface(in.Sentiment, next)
	}
	return next
}

func transitionWorthlessness(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse {
	affirmative, reprompt := m.gateYesNo(ctx, in, StateWorthlessness, answers)
	if reprompt != nil {
		return *reprompt
	}
	answers["inutilidad"] = boolAnswer(affirmative)
	scores[scoring.SymWorthlessness] = scoring.ScoreBinary(affirmative)

	if affirmative {
		return promptWorthlessDetail(answers)
	}
	return promptIdeation(answers)
}

func transitionWorthlessDetail(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse {
	answers["detalle_inutilidad"] = in.Text
	return promptIdeation(answers)
}

func transitionFatigue(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse {
	affirmative, reprompt := m.gateYesNo(ctx, in, StateFatigue, answers)
	if reprompt != nil {
		return *reprompt
	}
	answers["fatiga"] = boolAnswer(affirmative)
	scores[scoring.SymFatigue] = scoring.ScoreBinary(affirmative)
	return promptSleep(answers)
}

func transitionSleep(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse {
	affirmative, reprompt := m.gateYesNo(ctx, in, StateSleep, answers)
	if reprompt != nil {
		return *reprompt
	}
	answers["sueno"] = boolAnswer(affirmative)
	scores[scoring.SymSleep] = scoring.ScoreBinary(affirmative)

	if affirmative {
		return promptSleepDetail(answers)
	}
	return promptAppetite(answers)
}

func transitionSleepDetail(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse {
	answers["detalle_sueno"] = in.Text
	return promptAppetite(answers)
}

func transitionAppetite(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse {
	affirmative, reprompt := m.gateYesNo(ctx, in, StateAppetite, answers)
	if reprompt != nil {
		return *reprompt
	}
	answers["apetito"] = boolAnswer(affirmative)
	scores[scoring.SymAppetite] = scoring.ScoreBinary(affirmative)

	if affirmative {
		return promptAppetiteDetail(answers)
	}
	return promptConcentration(answers)
}

func transitionAppetiteDetail(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse {
	answers["detalle_apetito"] = in.Text
	return promptConcentration(answers)
}

func transitionConcentration(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse {
	affirmative, reprompt := m.gateYesNo(ctx, in, StateConcentration, answers)
	if reprompt != nil {
		return *reprompt
	}
	answers["concentracion"] = boolAnswer(affirmative)
	scores[scoring.SymConcentration] = scoring.ScoreBinary(affirmative)

	if affirmative {
		return promptConcentrationDetail(answers)
	}
	return promptAgitation(answers)
}

func transitionConcentrationDetail(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse {
	answers["detalle_concentracion"] = in.Text
	return promptAgitation(answers)
}

func transitionAgitation(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse {
	affirmative, reprompt := m.gateYesNo(ctx, in, StateAgitation, answers)
	if reprompt != nil {
		return *reprompt
	}
	answers["agitacion"] = boolAnswer(affirmative)
	scores[scoring.SymAgitation] = scoring.ScoreBinary(affirmative)

	if affirmative {
		return promptAgitationDetail(answers)
	}
	return promptAntecedents(answers)
}

func transitionAgitationDetail(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse {
	answers["detalle_agitacion"] = in.Text
	return promptAntecedents(answers)
}
