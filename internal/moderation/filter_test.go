package moderation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWordList(t *testing.T, words string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "palabras.txt")
	require.NoError(t, os.WriteFile(path, []byte(words), 0o644))
	return path
}

func TestFilter(t *testing.T) {
	f := NewFilter(writeWordList(t, "idiota\nestúpido\n\n  gilipollas  \n"))

	t.Run("blocked word anywhere in the text", func(t *testing.T) {
		assert.True(t, f.ContainsBlocked("eres un IDIOTA"))
		assert.True(t, f.ContainsBlocked("vaya gilipollas"))
	})

	t.Run("clean text passes", func(t *testing.T) {
		assert.False(t, f.ContainsBlocked("hoy me siento triste"))
	})
}

func TestFilterMissingFileDisablesModeration(t *testing.T) {
	f := NewFilter(filepath.Join(t.TempDir(), "no_existe.txt"))
	assert.False(t, f.ContainsBlocked("cualquier cosa"))
}
