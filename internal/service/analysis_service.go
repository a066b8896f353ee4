package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"

	"serena/internal/cache"
	"serena/internal/model"
	"serena/internal/moderation"
	"serena/internal/nlp"
	"serena/internal/repository"
)

// AnalysisService handles the standalone free-text analysis path: classify
// one message, answer with an empathetic canned reply and store an
// anonymized trace of the exchange.
type AnalysisService struct {
	replies   cache.ReplyCache
	history   repository.HistoryRepo
	filter    *moderation.Filter
	sentiment nlp.SentimentClassifier
}

// NewAnalysisService creates the free-text analysis service.
func NewAnalysisService(
	replies cache.ReplyCache,
	history repository.HistoryRepo,
	filter *moderation.Filter,
	sentiment nlp.SentimentClassifier,
) *AnalysisService {
	return &AnalysisService{
		replies:   replies,
		history:   history,
		filter:    filter,
		sentiment: sentiment,
	}
}

const blockedReply = "Parece que tu mensaje contiene lenguaje que no puedo procesar. " +
	"Si necesitas hablar con alguien, estoy aquí para escucharte con respeto."

// Analyze classifies the message and returns an empathetic reply. Identical
// messages are answered from cache; every fresh exchange is stored with the
// message anonymized to its SHA-256 hash.
func (s *AnalysisService) Analyze(ctx context.Context, text string) *model.AnalyzeResponse {
	if strings.TrimSpace(text) == "" {
		return &model.AnalyzeResponse{
			EmotionalState: model.EmotionUnknown,
			Reply:          "No he recibido ningún mensaje. ¿Quieres contarme cómo te sientes?",
		}
	}

	if cached, err := s.replies.Get(ctx, text); err != nil {
		log.Printf("reply cache read failed: %v", err)
	} else if cached != nil {
		return cached
	}

	if s.filter.ContainsBlocked(text) {
		resp := &model.AnalyzeResponse{
			EmotionalState: model.EmotionUnknown,
			Reply:          blockedReply,
		}
		s.store(ctx, text, resp)
		return resp
	}

	sentiment := s.sentiment.Classify(ctx, text)
	resp := &model.AnalyzeResponse{
		EmotionalState: sentiment.Label,
		Reply:          replyFor(sentiment.Label),
	}
	s.store(ctx, text, resp)

	if err := s.replies.Set(ctx, text, resp); err != nil {
		log.Printf("reply cache write failed: %v", err)
	}
	return resp
}

func replyFor(label string) string {
	switch label {
	case model.EmotionPositive:
		return "Me alegra mucho leer eso. Gracias por compartir cómo te sientes."
	case model.EmotionNegative:
		return "Siento que estés pasando por un momento difícil. Estoy aquí para escucharte, " +
			"¿quieres contarme un poco más?"
	case model.EmotionNeutral:
		return "Gracias por contármelo. ¿Hay algo más que quieras compartir conmigo?"
	default:
		return "No he podido interpretar bien tu mensaje, pero me importa cómo te sientes. " +
			"¿Puedes contármelo con otras palabras?"
	}
}

// store saves the anonymized exchange. Failures are logged and swallowed.
func (s *AnalysisService) store(ctx context.Context, text string, resp *model.AnalyzeResponse) {
	interaction := &model.Interaction{
		MessageHash: anonymize(text),
		Reply:       resp.Reply,
		Emotion:     resp.EmotionalState,
	}
	if err := s.history.SaveInteraction(ctx, interaction); err != nil {
		log.Printf("interaction save failed: %v", err)
	}
}

func anonymize(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
