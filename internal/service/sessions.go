package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/pranavshinde369/feelio/internal/dialogue"
	"github.com/pranavshinde369/feelio/internal/domain"
	"github.com/pranavshinde369/feelio/internal/session"
)

// StartSession creates (or returns) the session for the given id. An empty
// id gets a generated one.
func (s *Service) StartSession(ctx context.Context, sessionID string) *session.State {
	conv := s.llmClient.StartConversation(dialogue.Persona)
	st := s.sessions.Create(sessionID, conv)

	if err := s.transcripts.CreateSession(ctx, &domain.Session{
		SessionID: st.ID,
		Status:    st.Status,
		CreatedAt: st.CreatedAt,
	}); err != nil {
		log.Warn("failed to persist session", "session", st.ID, "error", err)
	}
	return st
}

// getOrCreateSession resolves the id lazily, matching first-contact
// semantics: messaging an unknown session starts one.
func (s *Service) getOrCreateSession(ctx context.Context, sessionID string) *session.State {
	if st, err := s.sessions.Get(sessionID); err == nil {
		return st
	}
	return s.StartSession(ctx, sessionID)
}

// EndSession terminates the session and returns a parting synopsis of the
// conversation, generated by the model under the usual fallback discipline.
func (s *Service) EndSession(ctx context.Context, sessionID string) (string, error) {
	st, err := s.sessions.Get(sessionID)
	if err != nil {
		return "", err
	}

	st.Lock()
	summary := s.generateSummary(ctx, st)
	st.Status = domain.SessionStatusEnded
	st.Unlock()

	s.sessions.Delete(sessionID)
	if err := s.transcripts.UpdateSessionStatus(ctx, sessionID, domain.SessionStatusEnded); err != nil {
		log.Warn("failed to mark session ended", "session", sessionID, "error", err)
	}

	log.Info("session ended", "session", sessionID)
	return summary, nil
}

// generateSummary condenses the session into feelings + actions. Caller
// holds the session lock.
func (s *Service) generateSummary(ctx context.Context, st *session.State) string {
	if len(st.Turns) == 0 {
		return dialogue.NoSessionData
	}

	snippets := st.Turns
	if len(snippets) > 6 {
		snippets = snippets[len(snippets)-6:]
	}
	prompt := dialogue.BuildSummaryPrompt(st.Trajectory.Recent(20), snippets)

	callCtx, cancel := context.WithTimeout(ctx, s.config.LLMTimeout)
	defer cancel()

	summary, err := s.llmClient.GenerateOnce(callCtx, prompt)
	if err != nil {
		log.Error("summary generation failed", "session", st.ID, "error", err)
		return dialogue.SummaryUnavailable
	}
	if len(summary) == 0 {
		return dialogue.SummaryUnavailable
	}
	return summary
}

// SessionDigest is the local, model-free session overview.
type SessionDigest struct {
	Summary   string                 `json:"summary"`
	TurnCount int                    `json:"turn_count"`
	Emotions  map[domain.Emotion]int `json:"emotions"`
}

// Digest builds the turn-count/emotion-histogram overview from the
// transcript store. No model call; always succeeds given a known session.
func (s *Service) Digest(ctx context.Context, sessionID string) (*SessionDigest, error) {
	if _, err := s.sessions.Get(sessionID); err != nil {
		return nil, err
	}

	counts, err := s.transcripts.EmotionCounts(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	total := 0
	labels := make([]string, 0, len(counts))
	for e, n := range counts {
		total += n
		labels = append(labels, string(e))
	}
	if total == 0 {
		return &SessionDigest{Summary: "No conversation yet", Emotions: counts}, nil
	}

	return &SessionDigest{
		Summary:   digestLine(total, labels),
		TurnCount: total,
		Emotions:  counts,
	}, nil
}

func digestLine(total int, labels []string) string {
	sort.Strings(labels)
	return fmt.Sprintf("Session had %d exchanges. Primary emotions: %s",
		total, strings.Join(labels, ", "))
}
