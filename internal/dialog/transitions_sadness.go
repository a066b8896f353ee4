package dialog

import (
	"context"

	"serena/internal/model"
	"serena/internal/nlp"
	"serena/internal/scoring"
)

// withPreface prepends the empathetic opener to an already built prompt.
func withPreface(s model.Sentiment, resp model.TurnResponse) model.TurnResponse {
	resp.Message = empathicPreface(s) + resp.Message
	return resp
}

func transitionFrequency(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse {
	if nlp.IsAmbiguous(in.Text) {
		return m.clarify(StateFrequency, answers)
	}

	score, ok := scoring.MatchFrequency(in.Text)
	if !ok {
		return m.clarify(StateFrequency, answers)
	}

	answers["frecuencia_tristeza"] = in.Text
	scores[scoring.SymFrequency] = score
	return promptDuration(answers)
}

func transitionDuration(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse {
	if nlp.IsAmbiguous(in.Text) {
		return m.clarify(StateDuration, answers)
	}

	score, ok := scoring.MatchDuration(in.Text)
	if !ok {
		return m.clarify(StateDuration, answers)
	}

	answers["duracion_tristeza"] = in.Text
	scores[scoring.SymDuration] = score
	return promptIntensity(answers)
}

func transitionIntensity(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse {
	if nlp.IsAmbiguous(in.Text) {
		return m.clarify(StateIntensity, answers)
	}

	score, ok := scoring.ScoreIntensity(in.Text)
	if !ok {
		return m.clarify(StateIntensity, answers)
	}

	answers["intensidad_tristeza"] = in.Text
	scores[scoring.SymIntensity] = score

	next := promptAnhedonia(answers)
	if scoring.IntensityBucket(score) == scoring.BucketHigh {
		next.Message = "Gracias por contármelo, sé que no es fácil ponerle número a algo tan intenso. " + next.Message
		return next
	}
	return withPreface(in.Sentiment, next)
}
