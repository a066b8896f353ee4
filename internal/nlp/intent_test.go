package nlp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAmbiguous(t *testing.T) {
	ambiguous := []string{
		"No sé",
		"no lo sé, la verdad",
		"tal vez",
		"quizás sí",
		"ni idea",
		"depende del día",
	}
	for _, text := range ambiguous {
		assert.True(t, IsAmbiguous(text), "expected ambiguous: %q", text)
	}

	committed := []string{
		"sí",
		"no",
		"claro que sí",
		"",
	}
	for _, text := range committed {
		assert.False(t, IsAmbiguous(text), "expected committed: %q", text)
	}
}

func TestClassifyRules(t *testing.T) {
	c := NewIntentClassifier()
	ctx := context.Background()

	t.Run("affirmative", func(t *testing.T) {
		for _, text := range []string{
			"sí",
			"Sí, estoy de acuerdo",
			"claro que sí",
			"vale",
			"me he sentido triste últimamente",
		} {
			assert.Equal(t, IntentAffirmative, c.Classify(ctx, text), "input %q", text)
		}
	})

	t.Run("negative", func(t *testing.T) {
		for _, text := range []string{
			"no",
			"No, prefiero no continuar",
			"para nada",
			"no me ha pasado",
		} {
			assert.Equal(t, IntentNegative, c.Classify(ctx, text), "input %q", text)
		}
	})

	t.Run("negation wins over embedded affirmatives", func(t *testing.T) {
		assert.Equal(t, IntentNegative, c.Classify(ctx, "no, aunque a veces digo que sí"))
	})

	t.Run("word boundaries respected", func(t *testing.T) {
		// "nos vamos" must not match the bare "no".
		assert.Equal(t, IntentUnknown, c.Classify(ctx, "nos vamos"))
	})

	t.Run("unknown", func(t *testing.T) {
		assert.Equal(t, IntentUnknown, c.Classify(ctx, "zanahoria"))
		assert.Equal(t, IntentUnknown, c.Classify(ctx, ""))
	})
}

// fakeEmbedder returns fixed vectors keyed by text, zero vector otherwise.
type fakeEmbedder struct {
	vectors map[string][]float64
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	if v, ok := f.vectors[text]; ok {
		return v, nil
	}
	return []float64{0, 0}, nil
}

func TestClassifyBySimilarityFallback(t *testing.T) {
	ctx := context.Background()

	t.Run("dominant affirmative above threshold", func(t *testing.T) {
		emb := &fakeEmbedder{vectors: map[string][]float64{
			"asi me siento yo tambien": {1, 0},
			"si":                       {0.95, 0.05},
			"no":                       {0, 1},
		}}
		c := NewIntentClassifier().WithEmbedder(emb, 0.7)
		assert.Equal(t, IntentAffirmative, c.Classify(ctx, "así me siento yo también"))
	})

	t.Run("below threshold stays unknown", func(t *testing.T) {
		emb := &fakeEmbedder{vectors: map[string][]float64{
			"asi me siento yo tambien": {1, 0},
			"si":                       {0.2, 0.98},
			"no":                       {0.1, 0.99},
		}}
		c := NewIntentClassifier().WithEmbedder(emb, 0.9)
		assert.Equal(t, IntentUnknown, c.Classify(ctx, "así me siento yo también"))
	})

	t.Run("rules still win before the fallback runs", func(t *testing.T) {
		emb := &fakeEmbedder{vectors: map[string][]float64{
			"si": {1, 0},
			"no": {0, 1},
		}}
		c := NewIntentClassifier().WithEmbedder(emb, 0.7)
		assert.Equal(t, IntentNegative, c.Classify(ctx, "para nada"))
	})
}
