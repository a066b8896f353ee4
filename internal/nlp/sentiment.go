package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"serena/internal/config"
	"serena/internal/model"
)

// SentimentClassifier classifies the emotional tone of one answer. It never
// returns an error: any failure maps to the unknown sentinel so a turn is
// never aborted by the collaborator.
type SentimentClassifier interface {
	Classify(ctx context.Context, text string) model.Sentiment
}

// SentimentClient calls an external sentiment service (a pysentimiento-style
// model behind HTTP). When no endpoint is configured every call returns the
// neutral sentinel.
type SentimentClient struct {
	cfg    *config.NLPConfig
	client *http.Client
}

// NewSentimentClient builds the sentiment collaborator client.
func NewSentimentClient(cfg *config.NLPConfig) *SentimentClient {
	return &SentimentClient{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

type sentimentRequest struct {
	Text string `json:"texto"`
}

type sentimentResponse struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classify returns the sentiment of the text, degraded to the unknown
// sentinel on empty input or any collaborator failure.
func (s *SentimentClient) Classify(ctx context.Context, text string) model.Sentiment {
	if strings.TrimSpace(text) == "" {
		return model.UnknownSentiment()
	}
	if !s.cfg.SentimentEnabled() {
		return model.UnknownSentiment()
	}

	raw, err := s.call(ctx, text)
	if err != nil {
		log.Printf("sentiment service unavailable, degrading to unknown: %v", err)
		return model.UnknownSentiment()
	}
	return adjustSentiment(text, raw)
}

func (s *SentimentClient) call(ctx context.Context, text string) (sentimentResponse, error) {
	var out sentimentResponse

	body, err := json.Marshal(sentimentRequest{Text: text})
	if err != nil {
		return out, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.SentimentURL, bytes.NewReader(body))
	if err != nil {
		return out, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return out, fmt.Errorf("sentiment service returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, err
	}
	return out, nil
}

// adjustSentiment applies the rule overrides on top of the raw model output.
// A low-confidence negative on a hedging answer reads as neutral.
func adjustSentiment(text string, raw sentimentResponse) model.Sentiment {
	label := strings.ToUpper(raw.Label)
	if label == "NEG" && raw.Score < 0.85 && strings.Contains(strings.ToLower(text), "no sé") {
		label = "NEU"
	}

	translated := map[string]string{
		"POS": model.EmotionPositive,
		"NEU": model.EmotionNeutral,
		"NEG": model.EmotionNegative,
	}
	name, ok := translated[label]
	if !ok {
		return model.UnknownSentiment()
	}
	return model.Sentiment{Label: name, Confidence: raw.Score}
}
