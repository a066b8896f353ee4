package config

import (
	"os"
	"strconv"
)

// NLPConfig configures the external language collaborators. Both services
// are optional: when an URL is empty the corresponding client degrades to a
// neutral result instead of calling out.
type NLPConfig struct {
	// SentimentURL is the sentiment classifier endpoint (POST, json in/out).
	SentimentURL string

	// EmbedderURL is the semantic-similarity embedding endpoint used only by
	// the intent classifier fallback.
	EmbedderURL string

	// SimilarityThreshold is the minimum cosine similarity for the embedding
	// fallback to accept a side.
	SimilarityThreshold float64

	// TimeoutMS bounds every collaborator HTTP call.
	TimeoutMS int
}

// DefaultNLPConfig returns the NLP collaborator configuration from the
// environment.
func DefaultNLPConfig() *NLPConfig {
	return &NLPConfig{
		SentimentURL:        os.Getenv("SENTIMENT_URL"),
		EmbedderURL:         os.Getenv("EMBEDDER_URL"),
		SimilarityThreshold: getEnvFloat("SIMILARITY_THRESHOLD", 0.70),
		TimeoutMS:           getEnvInt("NLP_TIMEOUT_MS", 5000),
	}
}

// SentimentEnabled reports whether a real sentiment service is configured.
func (c *NLPConfig) SentimentEnabled() bool { return c.SentimentURL != "" }

// EmbedderEnabled reports whether the similarity fallback is configured.
func (c *NLPConfig) EmbedderEnabled() bool { return c.EmbedderURL != "" }

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
