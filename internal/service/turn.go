package service

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pranavshinde369/feelio/internal/dialogue"
	"github.com/pranavshinde369/feelio/internal/domain"
	"github.com/pranavshinde369/feelio/internal/fusion"
	"github.com/pranavshinde369/feelio/internal/playbook"
	"github.com/pranavshinde369/feelio/internal/session"
)

// ProcessTurn runs one conversational turn end to end. The user never sees
// a raw error: every internal fault degrades to a canned empathetic reply.
// A validation error (malformed signals) is the only error returned.
func (s *Service) ProcessTurn(ctx context.Context, sessionID string, raw domain.SignalRecord) (result *domain.TurnResult, err error) {
	rec, err := fusion.Normalize(raw)
	if err != nil {
		return nil, err
	}

	st := s.getOrCreateSession(ctx, sessionID)
	st.Lock()
	defer st.Unlock()

	// Outermost safety net: an unexpected fault anywhere below becomes a
	// generic reassuring reply instead of terminating the conversation.
	defer func() {
		if r := recover(); r != nil {
			log.Error("turn pipeline panic", "session", st.ID, "panic", r)
			result = &domain.TurnResult{
				ReplyText: dialogue.PipelineFallback,
				Emotion:   domain.EmotionNeutral,
				Delivery:  dialogue.DeliveryFor(dialogue.PaceNormal),
				Fallback:  true,
				Turn:      len(st.Turns),
			}
			err = nil
		}
	}()

	// Crisis screening runs before anything else and bypasses the model.
	if s.config.EnableSafetyNet && rec.Text != "" && s.screener.IsHighRisk(ctx, rec.Text) {
		return s.crisisTurn(ctx, st, rec), nil
	}

	emotion := s.resolveEmotion(st, rec)
	st.Trajectory.Record(emotion)

	trend := st.Trajectory.Summarize()
	contradiction := dialogue.DetectContradiction(rec.Text, emotion)
	action := playbook.Select(emotion, rec.Text)
	pace := dialogue.DeterminePace(rec.Text)
	turnNum := len(st.Turns) + 1

	prompt := dialogue.BuildTurnPrompt(dialogue.PromptInput{
		UserText:      rec.Text,
		Emotion:       emotion,
		Trajectory:    trend,
		Contradiction: contradiction,
		Playbook:      action,
		Pace:          pace,
		Turn:          turnNum,
	})

	replyText, fellBack := s.converse(ctx, st, emotion, prompt)

	s.recordTurn(ctx, st, domain.TurnRecord{
		SessionID: st.ID,
		Turn:      turnNum,
		UserText:  rec.Text,
		AIText:    replyText,
		Emotion:   emotion,
		CreatedAt: time.Now(),
	})
	st.Signals.Publish(emotion)

	return &domain.TurnResult{
		ReplyText: replyText,
		Emotion:   emotion,
		Playbook:  action,
		Delivery:  dialogue.DeliveryFor(pace),
		Fallback:  fellBack,
		Turn:      turnNum,
	}, nil
}

// resolveEmotion picks this turn's label: an explicit visual label wins,
// then fused numeric signals, then the session's last published reading.
func (s *Service) resolveEmotion(st *session.State, rec domain.SignalRecord) domain.Emotion {
	if rec.VisualEmotion != "" {
		return rec.VisualEmotion
	}
	if rec.HasSignals() || rec.Text != "" {
		return fusion.Fuse(rec)
	}
	return st.Signals.Read().Emotion
}

// converse sends the assembled prompt through the session's dialogue
// context. All transport and validation failures collapse into the
// per-emotion fallback table; no error escapes this boundary.
func (s *Service) converse(ctx context.Context, st *session.State, emotion domain.Emotion, prompt string) (string, bool) {
	callCtx, cancel := context.WithTimeout(ctx, s.config.LLMTimeout)
	defer cancel()

	raw, err := st.Conversation.Send(callCtx, prompt)
	if err != nil {
		log.Error("model call failed", "session", st.ID, "error", err)
		return dialogue.FallbackReply(emotion), true
	}

	reply := dialogue.ParsePlainReply(raw)
	if reply.Kind != dialogue.ReplyPlainText {
		log.Warn("implausible model reply, using fallback", "session", st.ID, "length", len(raw))
		return dialogue.FallbackReply(emotion), true
	}
	return reply.Text, false
}

// crisisTurn returns the fixed crisis response. It is a prioritized normal
// branch, not an error path: nothing here can fail. The turn is logged with
// the crisis flag and excluded from trajectory, playbook, and contradiction
// logic.
func (s *Service) crisisTurn(ctx context.Context, st *session.State, rec domain.SignalRecord) *domain.TurnResult {
	log.Warn("high-risk content detected", "session", st.ID)

	emotion := st.Signals.Read().Emotion
	turnNum := len(st.Turns) + 1

	s.recordTurn(ctx, st, domain.TurnRecord{
		SessionID: st.ID,
		Turn:      turnNum,
		UserText:  rec.Text,
		AIText:    dialogue.CrisisMessage,
		Emotion:   emotion,
		IsCrisis:  true,
		CreatedAt: time.Now(),
	})

	return &domain.TurnResult{
		ReplyText:      dialogue.CrisisMessage,
		Emotion:        emotion,
		CrisisDetected: true,
		Delivery:       domain.Delivery{Slow: true, PrePause: 0.5},
		Turn:           turnNum,
	}
}

// recordTurn appends to the in-memory log and persists best-effort.
func (s *Service) recordTurn(ctx context.Context, st *session.State, t domain.TurnRecord) {
	st.AppendTurn(t)
	if err := s.transcripts.RecordTurn(ctx, &t); err != nil {
		log.Warn("failed to persist turn", "session", st.ID, "turn", t.Turn, "error", err)
	}
}
