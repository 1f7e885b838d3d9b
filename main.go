package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pranavshinde369/feelio/internal/adapter/llm"
	"github.com/pranavshinde369/feelio/internal/config"
	"github.com/pranavshinde369/feelio/internal/repository"
	"github.com/pranavshinde369/feelio/internal/safety"
	"github.com/pranavshinde369/feelio/internal/service"
	"github.com/pranavshinde369/feelio/internal/session"
	transport "github.com/pranavshinde369/feelio/internal/transport/http"
)

func main() {
	cfg := config.Load()

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	log.Info("starting feelio engine",
		"port", cfg.HTTPPort,
		"database", cfg.DatabaseURL,
		"model", cfg.GeminiModel,
		"safety_net", cfg.EnableSafetyNet)

	// Transcript store
	transcripts, err := repository.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to initialize transcript store", "error", err)
	}
	defer transcripts.Close()

	// LLM client (FEELIO_MODE=MOCK selects the mock backend)
	llmClient := llm.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)

	// Crisis screening policy
	ctx := context.Background()
	screener, err := safety.NewScreener(ctx, safety.DefaultPolicy)
	if err != nil {
		log.Fatal("failed to initialize safety screener", "error", err)
	}

	// Service + server
	svc := service.New(cfg, session.NewMemoryStore(), transcripts, llmClient, screener)
	server := transport.NewServer(cfg, svc)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal("failed to start server", "error", err)
		}
	}()

	log.Info("API started", "port", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shut down gracefully", "error", err)
	}

	log.Info("stopped")
}
