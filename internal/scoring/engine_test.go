package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoricalTablesAreMonotonic(t *testing.T) {
	for name, table := range map[string][]TableEntry{
		"frequency": FrequencyTable,
		"duration":  DurationTable,
	} {
		t.Run(name, func(t *testing.T) {
			prev := 0
			for _, entry := range table {
				assert.GreaterOrEqual(t, entry.Score, prev, "phrase %q breaks the ordering", entry.Phrase)
				prev = entry.Score
			}
		})
	}
}

func TestMatchFrequency(t *testing.T) {
	t.Run("exact phrase with accents", func(t *testing.T) {
		score, ok := MatchFrequency("Todos los días")
		require.True(t, ok)
		assert.Equal(t, 10, score)
	})

	t.Run("exact lowest", func(t *testing.T) {
		score, ok := MatchFrequency("nunca")
		require.True(t, ok)
		assert.Equal(t, 1, score)
	})

	t.Run("fuzzy resolves strongest signal", func(t *testing.T) {
		score, ok := MatchFrequency("pues me pasa a diario, la verdad")
		require.True(t, ok)
		assert.Equal(t, 10, score)
	})

	t.Run("unrecognizable", func(t *testing.T) {
		_, ok := MatchFrequency("zanahoria")
		assert.False(t, ok)
	})
}

func TestMatchDuration(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		score, ok := MatchDuration("Un mes o más")
		require.True(t, ok)
		assert.Equal(t, 10, score)
	})

	t.Run("fuzzy weeks", func(t *testing.T) {
		score, ok := MatchDuration("como dos semanas seguidas")
		require.True(t, ok)
		assert.Equal(t, 8, score)
	})

	t.Run("fuzzy months outrank days", func(t *testing.T) {
		score, ok := MatchDuration("dias y dias, casi un mes ya")
		require.True(t, ok)
		assert.Equal(t, 10, score)
	})

	t.Run("hour counts stay in the hours range", func(t *testing.T) {
		score, ok := MatchDuration("unas tres horas")
		require.True(t, ok)
		assert.Equal(t, 2, score)
	})

	t.Run("day counts reach the several-days bucket", func(t *testing.T) {
		score, ok := MatchDuration("unos tres dias seguidos")
		require.True(t, ok)
		assert.Equal(t, 5, score)
	})
}

func TestScoreDefaultsToLowest(t *testing.T) {
	assert.Equal(t, 1, ScoreFrequency("zanahoria"))
	assert.Equal(t, 1, ScoreDuration("zanahoria"))
}

func TestScoreIntensity(t *testing.T) {
	t.Run("plain number", func(t *testing.T) {
		score, ok := ScoreIntensity("un 7 mas o menos")
		require.True(t, ok)
		assert.Equal(t, 7, score)
	})

	t.Run("clamped above", func(t *testing.T) {
		score, ok := ScoreIntensity("12")
		require.True(t, ok)
		assert.Equal(t, 10, score)
	})

	t.Run("clamped below", func(t *testing.T) {
		score, ok := ScoreIntensity("0")
		require.True(t, ok)
		assert.Equal(t, 1, score)
	})

	t.Run("no number", func(t *testing.T) {
		_, ok := ScoreIntensity("bastante fuerte")
		assert.False(t, ok)
	})
}

func TestScoreEmpathy(t *testing.T) {
	score, ok := ScoreEmpathy("un 10, sin duda")
	require.True(t, ok)
	assert.Equal(t, 10, score)

	score, ok = ScoreEmpathy("-3")
	require.True(t, ok)
	assert.Equal(t, 0, score)
}

func TestScoreBinary(t *testing.T) {
	assert.Equal(t, 1, ScoreBinary(true))
	assert.Equal(t, 0, ScoreBinary(false))
}

func TestIntensityBucket(t *testing.T) {
	assert.Equal(t, BucketLow, IntensityBucket(3))
	assert.Equal(t, BucketMid, IntensityBucket(4))
	assert.Equal(t, BucketMid, IntensityBucket(7))
	assert.Equal(t, BucketHigh, IntensityBucket(8))
}

func TestTriadMean(t *testing.T) {
	t.Run("full triad", func(t *testing.T) {
		scores := map[string]int{SymFrequency: 10, SymDuration: 8, SymIntensity: 9}
		assert.InDelta(t, 9.0, TriadMean(scores), 0.001)
	})

	t.Run("missing symptoms count as lowest", func(t *testing.T) {
		scores := map[string]int{SymFrequency: 7}
		assert.InDelta(t, 3.0, TriadMean(scores), 0.001)
	})
}

func TestSeverity(t *testing.T) {
	assert.Equal(t, SeverityMild, Severity(1.0))
	assert.Equal(t, SeverityMild, Severity(3.5))
	assert.Equal(t, SeverityModerate, Severity(3.6))
	assert.Equal(t, SeverityModerate, Severity(6.5))
	assert.Equal(t, SeveritySevere, Severity(6.6))
}

func TestTotal(t *testing.T) {
	scores := map[string]int{SymFrequency: 5, SymAnhedonia: 1, SymIdeation: 2}
	assert.Equal(t, 8, Total(scores))
}
