package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"serena/internal/cache"
	"serena/internal/config"
	"serena/internal/dialog"
	"serena/internal/moderation"
	"serena/internal/nlp"
	"serena/internal/repository"
	"serena/internal/service"
	"serena/internal/transport/rest"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()
	nlpCfg := config.DefaultNLPConfig()
	log.Printf("NLP config:")
	if nlpCfg.SentimentEnabled() {
		log.Printf("  sentiment: %s", nlpCfg.SentimentURL)
	} else {
		log.Println("  sentiment: NOT SET (answers classified as desconocido)")
	}
	if nlpCfg.EmbedderEnabled() {
		log.Printf("  embedder:  %s (threshold %.2f)", nlpCfg.EmbedderURL, nlpCfg.SimilarityThreshold)
	} else {
		log.Println("  embedder:  NOT SET (rule-only intent classification)")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize repositories and caches
	historyRepo := repository.NewHistoryRepo(db)
	stateCache := cache.NewStateCache(rdb)
	scoreCache := cache.NewScoreCache(rdb)
	replyCache := cache.NewReplyCache(rdb)

	// Initialize NLP collaborators
	sentiment := nlp.NewSentimentClient(nlpCfg)
	intents := nlp.NewIntentClassifier()
	if embedder := nlp.NewHTTPEmbedder(nlpCfg); embedder != nil {
		intents = intents.WithEmbedder(embedder, nlpCfg.SimilarityThreshold)
	}
	filter := moderation.NewFilter(cfg.WordListPath)
	machine := dialog.NewMachine(intents)

	// Initialize services
	authSvc := service.NewAuthService()
	conversationSvc := service.NewConversationService(stateCache, scoreCache, historyRepo, machine, sentiment)
	analysisSvc := service.NewAnalysisService(replyCache, historyRepo, filter, sentiment)
	reportSvc := service.NewReportService(historyRepo)

	// Create router with container
	container := &rest.Container{
		AuthService:         authSvc,
		ConversationService: conversationSvc,
		AnalysisService:     analysisSvc,
		ReportService:       reportSvc,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/chat")
		log.Println("  POST /v1/analyze")
		log.Println("  POST /v1/auth/login")
		log.Println("  GET  /v1/sessions/{sessionId}/history")
		log.Println("  GET  /v1/sessions/{sessionId}/report")
		log.Println("  GET  /health")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
