// Package service orchestrates the per-turn pipeline: safety screening,
// signal fusion, trajectory tracking, playbook selection, prompt assembly,
// and fallback handling.
package service

import (
	"github.com/pranavshinde369/feelio/internal/adapter/llm"
	"github.com/pranavshinde369/feelio/internal/config"
	"github.com/pranavshinde369/feelio/internal/repository"
	"github.com/pranavshinde369/feelio/internal/safety"
	"github.com/pranavshinde369/feelio/internal/session"
)

type Service struct {
	config      *config.Config
	sessions    session.Store
	transcripts repository.TranscriptStore
	llmClient   llm.Client
	screener    *safety.Screener
}

func New(cfg *config.Config, sessions session.Store, transcripts repository.TranscriptStore, llmClient llm.Client, screener *safety.Screener) *Service {
	return &Service{
		config:      cfg,
		sessions:    sessions,
		transcripts: transcripts,
		llmClient:   llmClient,
		screener:    screener,
	}
}
