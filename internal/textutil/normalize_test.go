package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	t.Run("strips urls and punctuation", func(t *testing.T) {
		got := Clean("¡Hola!  Mira https://example.com/x?y=1 esto...")
		assert.Equal(t, "hola mira esto", got)
	})

	t.Run("keeps spanish letters and digits", func(t *testing.T) {
		got := Clean("Mañana será un 7, ¿no?")
		assert.Equal(t, "mañana será un 7 no", got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", Clean("   "))
	})
}

func TestFold(t *testing.T) {
	assert.Equal(t, "si", Fold("SÍ"))
	assert.Equal(t, "corazon", Fold("Corazón"))
	assert.Equal(t, "todos los dias", Fold("  Todos los días "))
}

func TestFirstInt(t *testing.T) {
	t.Run("first number wins", func(t *testing.T) {
		n, ok := FirstInt("entre 8 y 9")
		assert.True(t, ok)
		assert.Equal(t, 8, n)
	})

	t.Run("no digits", func(t *testing.T) {
		_, ok := FirstInt("ninguno")
		assert.False(t, ok)
	})

	t.Run("negative", func(t *testing.T) {
		n, ok := FirstInt("-3")
		assert.True(t, ok)
		assert.Equal(t, -3, n)
	})
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(0, 1, 10))
	assert.Equal(t, 10, Clamp(12, 1, 10))
	assert.Equal(t, 7, Clamp(7, 1, 10))
}

func TestExtractName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"me llamo maría", "María"},
		{"Soy Pedro", "Pedro"},
		{"puedes llamarme luna", "Luna"},
		{"Ana", "Ana"},
		{"", DefaultName},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ExtractName(tc.in), "input %q", tc.in)
	}
}
