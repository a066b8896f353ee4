package dialog

import (
	"context"
	"strings"

	"serena/internal/model"
	"serena/internal/scoring"
	"serena/internal/textutil"
)

// Crisis escalation policy for the ideation-screening state. This state
// never falls back to free-text intent classification: an answer that does
// not resolve to a risk bucket re-prompts the same closed list, so a risk
// signal is never silently dropped.

// The four fixed choices, in bucket order 0..3.
var ideationBuckets = []string{
	"No, en ningún momento",
	"Sí, pero sin intención de hacerme daño",
	"Sí, pensé en hacerme daño, pero no tengo intención",
	"Sí, pensé en hacerme daño y tengo un plan",
}

func ideationChoices() []string {
	choices := make([]string, len(ideationBuckets))
	copy(choices, ideationBuckets)
	return choices
}

// Hotlines rendered in the crisis message.
const (
	hotlineSuicidio  = "024"
	hotlineEsperanza = "717 003 717"
	hotlineEmergency = "112"
)

// matchIdeationBucket resolves an answer to its risk bucket. Exact
// normalized match on the fixed choices first, then conservative keyword
// rules. ok is false when the answer is unrecognizable.
func matchIdeationBucket(text string) (bucket int, ok bool) {
	folded := textutil.Fold(text)

	for i, choice := range ideationBuckets {
		if folded == textutil.Fold(choice) {
			return i, true
		}
	}

	// Keyword rules, highest risk checked first.
	switch {
	case strings.Contains(folded, "plan"):
		return 3, true
	case strings.Contains(folded, "hacerme dano") || strings.Contains(folded, "hacerme daño"):
		return 2, true
	case strings.Contains(folded, "sin intencion"):
		return 1, true
	// Bucket 0 needs the explicit denial, not just a leading "no": hedges
	// and refusals must re-prompt instead of recording a no-risk score.
	case strings.Contains(folded, "ningun momento") || folded == "no":
		return 0, true
	}
	return 0, false
}

// ideationFraming is the empathetic opener for the non-crisis buckets.
var ideationFraming = map[int]string{
	0: "Me alegra saber que no has tenido esos pensamientos. Gracias por tu sinceridad. ",
	1: "Gracias por confiármelo, sé que no es fácil hablar de esto. Tenerlo presente ya es importante. ",
	2: "Lamento mucho que hayas pasado por esos pensamientos. Gracias por tu valentía al compartirlo. ",
}

func transitionIdeation(m *Machine, ctx context.Context, in Input, answers map[string]string, scores map[string]int) model.TurnResponse {
	bucket, ok := matchIdeationBucket(in.Text)
	if !ok {
		// Same fixed list again; no free-text fallback here.
		base := promptIdeation(answers)
		base.Message = "Necesito que elijas una de las opciones para poder acompañarte bien.\n\n" + base.Message
		return base
	}

	answers["ideacion_suicida_texto"] = in.Text
	scores[scoring.SymIdeation] = bucket

	if bucket == riskBucketCrisis {
		return crisisResponse(answers)
	}

	next := promptFatigue(answers)
	next.Message = ideationFraming[bucket] + next.Message
	return next
}

// riskBucketCrisis is the plan-and-intent bucket that forces termination.
const riskBucketCrisis = 3

// crisisResponse is the fixed safety-resources reply. It bypasses the normal
// transition table regardless of any accumulated score.
func crisisResponse(answers map[string]string) model.TurnResponse {
	return model.TurnResponse{
		State: StateCrisisEnd,
		Message: "Gracias por tu sinceridad, " + userName(answers) + ". Lo que me cuentas es muy importante y no quiero que pases por esto sin apoyo.\n\n" +
			"Esta conversación no puede darte la ayuda que mereces ahora mismo, así que vamos a detener aquí la evaluación.\n\n" +
			"Por favor, contacta cuanto antes con alguno de estos recursos:\n" +
			"• Línea de atención a la conducta suicida: " + hotlineSuicidio + "\n" +
			"• Teléfono de la Esperanza: " + hotlineEsperanza + "\n" +
			"• Emergencias: " + hotlineEmergency + "\n\n" +
			"Si estás en peligro inmediato, llama a emergencias o acude al servicio de urgencias más cercano. No estás solo/a.",
		InputMode:   model.InputNone,
		Suggestions: []string{},
	}
}
