package dialog

import (
	"fmt"

	"serena/internal/model"
)

// Prompt builders. Each returns the full question for its state; transition
// functions reuse them so the asked text and the re-prompted text never
// drift apart.

func promptPresentation(_ map[string]string) model.TurnResponse {
	return model.TurnResponse{
		State: StateConsent,
		Message: "¡Hola! Soy un asistente virtual diseñado para ayudar en la evaluación de tu estado de ánimo.\n\n" +
			"Te haré algunas preguntas para conocer cómo te has sentido en los últimos días. " +
			"Esta evaluación no sustituye a una consulta profesional y su único propósito es recopilar información de manera clara y organizada.\n\n" +
			"Ten en cuenta que soy un asistente virtual o chatbot, no un psicólogo humano, por lo que te pido por favor que escribas respuestas concisas.\n\n" +
			"Antes de comenzar, necesito tu consentimiento. Recuerda que, en cualquier caso, tu información será tratada con confidencialidad.\n\n" +
			"¿Estás de acuerdo en continuar con la evaluación?",
		InputMode:   model.InputMixed,
		Suggestions: []string{"Sí, estoy de acuerdo", "No, prefiero no continuar"},
	}
}

func promptAskName(_ map[string]string) model.TurnResponse {
	return model.TurnResponse{
		State: StateAskName,
		Message: "¿Con qué nombre o seudónimo puedo dirigirme a ti?\n\n" +
			"Puedes escribirme tu nombre real o cualquier nombre con el que te sientas cómodo/a, por ejemplo: 'Alejandro', 'María', 'Juan'.",
		InputMode:   model.InputFreeText,
		Suggestions: []string{},
	}
}

func promptAskIdentity(answers map[string]string) model.TurnResponse {
	return model.TurnResponse{
		State: StateAskIdentity,
		Message: fmt.Sprintf("Un placer conocerte, %s.\n", userName(answers)) +
			"¿Qué etiqueta identifica mejor tu identidad?\n\n" +
			"Puedes responder libremente, por ejemplo: 'Masculino', 'Femenino' o 'No binario'.",
		InputMode:   model.InputMixed,
		Suggestions: []string{"Masculino", "Femenino", "No binario"},
	}
}

func promptSadnessIntro(answers map[string]string) model.TurnResponse {
	return model.TurnResponse{
		State: StateSadnessIntro,
		Message: fmt.Sprintf("Gracias, %s. Ahora voy a hacerte algunas preguntas sobre cómo te has sentido últimamente.\n", userName(answers)) +
			"No hay respuestas correctas o incorrectas. Lo importante es que respondas con sinceridad, según tu experiencia.\n\n" +
			"Para empezar, ¿dirías que has sentido tristeza o bajones emocionales en los últimos días?\n\n" +
			"Puedes responder, por ejemplo: 'Sí, me he sentido muy triste' o 'No, en general me he sentido bien'.",
		InputMode:   model.InputMixed,
		Suggestions: []string{"Sí, me he sentido triste", "No, me he sentido bien", "No estoy seguro"},
	}
}

func promptFrequency(_ map[string]string) model.TurnResponse {
	return model.TurnResponse{
		State: StateFrequency,
		Message: "Gracias por compartirlo. Ahora me gustaría saber con qué frecuencia sueles experimentar esa tristeza.\n\n" +
			"Selecciona la opción que mejor refleje tu experiencia. No te preocupes por ser exacto, solo una estimación general.",
		InputMode: model.InputChoices,
		Suggestions: []string{
			"Todos los días",
			"Casi todos los días",
			"Muy seguido",
			"A menudo",
			"Algunas veces por semana",
			"De vez en cuando",
			"Con poca frecuencia",
			"Pocas veces",
			"Casi nunca",
			"Nunca",
		},
	}
}

func promptDuration(_ map[string]string) model.TurnResponse {
	return model.TurnResponse{
		State: StateDuration,
		Message: "Gracias por compartirlo. Me gustaría saber cuánto tiempo suele durarte esa tristeza cuando aparece.\n\n" +
			"Selecciona una opción que refleje lo que sueles experimentar.",
		InputMode: model.InputChoices,
		Suggestions: []string{
			"Momentos puntuales",
			"Unas horas",
			"Más de 6 horas",
			"Un día o más",
			"Entre tres y cinco días",
			"Una semana",
			"Poco más de una semana",
			"Dos semanas",
			"Varias semanas",
			"Un mes o más",
		},
	}
}

func promptIntensity(_ map[string]string) model.TurnResponse {
	return model.TurnResponse{
		State: StateIntensity,
		Message: "Por último sobre la tristeza, ¿cómo describirías su intensidad cuando aparece?\n\n" +
			"Puedes usar una escala del 1 (muy leve) al 10 (muy intensa), o expresarlo de forma aproximada, como:\n" +
			"'Creo que un 3', 'Más o menos un 7', 'Entre 8 y 9', etc.",
		InputMode:   model.InputMixed,
		Suggestions: []string{"3", "5", "8", "10"},
	}
}

func promptAnhedonia(_ map[string]string) model.TurnResponse {
	return model.TurnResponse{
		State: StateAnhedonia,
		Message: "A veces, lo que antes disfrutábamos deja de parecernos interesante o emocionante.\n\n" +
			"¿Has notado si en los últimos días has perdido el interés o el placer en algunas actividades que solías disfrutar?\n\n" +
			"Puedes responder, por ejemplo: 'Sí, ya no disfruto de algunas cosas' o 'No, sigo disfrutando igual'.",
		InputMode:   model.InputMixed,
		Suggestions: []string{"Sí, he perdido interés", "No, sigo disfrutando igual"},
	}
}

func promptAnhedoniaDetail(_ map[string]string) model.TurnResponse {
	return model.TurnResponse{
		State: StateAnhedoniaDet,
		Message: "Gracias por compartirlo. ¿Podrías decirme qué actividades específicas has dejado de disfrutar recientemente?\n" +
			"Esto me ayuda a entender mejor en qué áreas has notado el cambio.",
		InputMode:   model.InputMixed,
		Suggestions: []string{"Salir con amigos", "Escuchar música", "Hacer deporte"},
	}
}

func promptHopelessness(_ map[string]string) model.TurnResponse {
	return model.TurnResponse{
		State: StateHopelessness,
		Message: "Cuando piensas en el futuro, ¿te resulta difícil encontrar algo que te ilusione o motive?\n\n" +
			"Puedes responder con sinceridad, por ejemplo: 'Sí, últimamente nada me motiva' o 'No, tengo cosas que me ilusionan'.",
		InputMode:   model.InputMixed,
		Suggestions: []string{"Sí, me cuesta ver el futuro con ilusión", "No, tengo metas", "No estoy seguro"},
	}
}

func promptWorthlessness(_ map[string]string) model.TurnResponse {
	return model.TurnResponse{
		State: StateWorthlessness,
		Message: "A veces, cuando estamos tristes, podemos ser muy duros con nosotros mismos.\n\n" +
			"¿En los últimos días has sentido que no eres suficiente?\n\n" +
			"Puedes responder, por ejemplo: 'Sí, a veces me siento así' o 'No, no me ha pasado'.",
		InputMode:   model.InputMixed,
		Suggestions: []string{"Sí, me ha pasado", "No, no me ha pasado", "No estoy seguro"},
	}
}

func promptWorthlessDetail(_ map[string]string) model.TurnResponse {
	return model.TurnResponse{
		State: StateWorthlessDet,
		Message: "Lamento que hayas tenido esa sensación. Gracias por compartirlo.\n\n" +
			"¿En qué situaciones se te viene normalmente este pensamiento a la cabeza?",
		InputMode:   model.InputMixed,
		Suggestions: []string{"Cuando me equivoco", "Cuando me comparo", "Cuando estoy solo/a"},
	}
}

func promptIdeation(_ map[string]string) model.TurnResponse {
	return model.TurnResponse{
		State: StateIdeation,
		Message: "Sé que esta es una pregunta difícil, pero es importante poder hablar de ello.\n\n" +
			"En las últimas dos semanas, ¿has tenido pensamientos de suicidio?\n" +
			"Por ejemplo, algunas personas piensan que sería mejor no estar aquí, que la vida no merece la pena, o incluso piensan en hacerse daño.\n\n" +
			"Puedes responder con sinceridad. Estoy aquí para escucharte sin juzgar.",
		InputMode:   model.InputChoices,
		Suggestions: ideationChoices(),
	}
}

func promptFatigue(_ map[string]string) model.TurnResponse {
	return model.TurnResponse{
		State: StateFatigue,
		Message: "Sigamos con otros aspectos. ¿Has notado últimamente que te falta energía o te cansas con más facilidad de lo habitual?\n\n" +
			"Puedes responder, por ejemplo: 'Sí, me canso enseguida' o 'No, tengo la energía de siempre'.",
		InputMode:   model.InputMixed,
		Suggestions: []string{"Sí, me falta energía", "No, me siento con energía"},
	}
}

func promptSleep(_ map[string]string) model.TurnResponse {
	return model.TurnResponse{
		State: StateSleep,
		Message: "¿Has notado últimamente cambios o dificultades con tu sueño?\n\n" +
			"Por ejemplo, dormir mucho más de lo habitual, costarte conciliar el sueño o despertarte varias veces.",
		InputMode:   model.InputMixed,
		Suggestions: []string{"Sí, he notado cambios", "No, duermo como siempre"},
	}
}

func promptSleepDetail(_ map[string]string) model.TurnResponse {
	return model.TurnResponse{
		State:       StateSleepDet,
		Message:     "Gracias por contármelo. ¿Qué tipo de dificultades has notado con tu sueño?",
		InputMode:   model.InputMixed,
		Suggestions: []string{"Me cuesta dormirme", "Me despierto varias veces", "Duermo demasiado"},
	}
}

func promptAppetite(_ map[string]string) model.TurnResponse {
	return model.TurnResponse{
		State: StateAppetite,
		Message: "¿Has notado cambios en tu apetito o en la cantidad de comida que tomas?\n\n" +
			"Puede ser tanto comer menos de lo habitual como comer bastante más.",
		InputMode:   model.InputMixed,
		Suggestions: []string{"Sí, he notado cambios", "No, como igual que siempre"},
	}
}

func promptAppetiteDetail(_ map[string]string) model.TurnResponse {
	return model.TurnResponse{
		State:       StateAppetiteDet,
		Message:     "Entiendo. ¿Qué tipo de cambios has notado en tu apetito?",
		InputMode:   model.InputMixed,
		Suggestions: []string{"Como menos que antes", "Como más que antes", "Como a deshoras"},
	}
}

func promptConcentration(_ map[string]string) model.TurnResponse {
	return model.TurnResponse{
		State: StateConcentration,
		Message: "¿Te ha costado concentrarte en actividades como leer, trabajar o seguir una conversación?\n\n" +
			"Puedes responder, por ejemplo: 'Sí, me distraigo todo el rato' o 'No, me concentro igual que siempre'.",
		InputMode:   model.InputMixed,
		Suggestions: []string{"Sí, me cuesta concentrarme", "No, me concentro bien"},
	}
}

func promptConcentrationDetail(_ map[string]string) model.TurnResponse {
	return model.TurnResponse{
		State:       StateConcentraDet,
		Message:     "Gracias. ¿Con qué actividades te cuesta más concentrarte?",
		InputMode:   model.InputMixed,
		Suggestions: []string{"Leer", "Trabajar o estudiar", "Seguir una conversación"},
	}
}

func promptAgitation(_ map[string]string) model.TurnResponse {
	return model.TurnResponse{
		State: StateAgitation,
		Message: "¿Has notado que últimamente sientes inquietud o agitación?\n\n" +
			"Por ejemplo, no poder quedarte quieto/a, moverte de un lado a otro o sentirte en tensión.",
		InputMode:   model.InputMixed,
		Suggestions: []string{"Sí, me siento inquieto/a", "No, me siento tranquilo/a"},
	}
}

func promptAgitationDetail(_ map[string]string) model.TurnResponse {
	return model.TurnResponse{
		State:       StateAgitationDet,
		Message:     "Entiendo. ¿Cómo describirías esa inquietud que has sentido últimamente?",
		InputMode:   model.InputFreeText,
		Suggestions: []string{},
	}
}

func promptAntecedents(_ map[string]string) model.TurnResponse {
	return model.TurnResponse{
		State: StateAntecedents,
		Message: "Ya queda poco, gracias por llegar hasta aquí.\n\n" +
			"¿Hay algo que suela desencadenar tu tristeza, como situaciones, pensamientos o preocupaciones?",
		InputMode:   model.InputFreeText,
		Suggestions: []string{},
	}
}

func promptConsequents1(_ map[string]string) model.TurnResponse {
	return model.TurnResponse{
		State:       StateConsequents1,
		Message:     "Cuando sientes tristeza, ¿qué sueles hacer?",
		InputMode:   model.InputFreeText,
		Suggestions: []string{},
	}
}

func promptConsequents2(_ map[string]string) model.TurnResponse {
	return model.TurnResponse{
		State:       StateConsequents2,
		Message:     "¿Has notado cambios en tu comportamiento cuando sientes tristeza?",
		InputMode:   model.InputFreeText,
		Suggestions: []string{},
	}
}

func promptImpact(_ map[string]string) model.TurnResponse {
	return model.TurnResponse{
		State: StateImpact,
		Message: "¿Dirías que estos sentimientos han afectado tu vida diaria?\n\n" +
			"Por ejemplo, en el trabajo, los estudios, tus relaciones o tu cuidado personal.",
		InputMode:   model.InputMixed,
		Suggestions: []string{"Sí, me han afectado", "No, hago vida normal"},
	}
}

func promptImpactDetail(_ map[string]string) model.TurnResponse {
	return model.TurnResponse{
		State:       StateImpactDet,
		Message:     "Gracias por contármelo. ¿En qué aspectos sientes más dificultades en tu día a día?",
		InputMode:   model.InputMixed,
		Suggestions: []string{"Trabajo o estudios", "Relaciones", "Cuidado personal"},
	}
}

func promptStrategies1(_ map[string]string) model.TurnResponse {
	return model.TurnResponse{
		State:       StateStrategies1,
		Message:     "Para terminar, hablemos de lo que te ayuda. ¿Qué cosas sueles hacer para lidiar con la tristeza?",
		InputMode:   model.InputFreeText,
		Suggestions: []string{},
	}
}

func promptStrategies2(_ map[string]string) model.TurnResponse {
	return model.TurnResponse{
		State:       StateStrategies2,
		Message:     "¿Existen actividades o estrategias que te ayuden a sentirte mejor cuando sientes tristeza?",
		InputMode:   model.InputFreeText,
		Suggestions: []string{},
	}
}

func promptSummaryWait(_ map[string]string) model.TurnResponse {
	return model.TurnResponse{
		State:       StateSummary,
		Message:     "Cuando quieras, continuamos con la última pregunta.",
		InputMode:   model.InputFreeText,
		Suggestions: []string{},
	}
}

func promptEmpathy(_ map[string]string) model.TurnResponse {
	return model.TurnResponse{
		State: StateEmpathy,
		Message: "Una última cosa: ¿cómo calificarías la empatía de este asistente durante la conversación?\n\n" +
			"Usa una escala del 0 (nada empático) al 10 (muy empático).",
		InputMode:   model.InputMixed,
		Suggestions: []string{"3", "5", "8", "10"},
	}
}
