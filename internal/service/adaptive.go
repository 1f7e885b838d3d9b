package service

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pranavshinde369/feelio/internal/dialogue"
	"github.com/pranavshinde369/feelio/internal/domain"
	"github.com/pranavshinde369/feelio/internal/fusion"
	"github.com/pranavshinde369/feelio/internal/session"
)

// ProcessAdaptive runs the adaptive-UI variant of a turn: fuse signals, ask
// the model for the structured JSON contract, and return reply text plus UI
// instructions. Silence is allowed here; the model is told the user is just
// observing. A session id is optional: when present the turn is recorded,
// when absent the call is stateless.
func (s *Service) ProcessAdaptive(ctx context.Context, sessionID string, raw domain.SignalRecord) (*domain.TurnResult, error) {
	rec, err := fusion.Normalize(raw)
	if err != nil {
		return nil, err
	}

	var st *session.State
	if sessionID != "" {
		st = s.getOrCreateSession(ctx, sessionID)
		st.Lock()
		defer st.Unlock()
	}

	if s.config.EnableSafetyNet && rec.Text != "" && s.screener.IsHighRisk(ctx, rec.Text) {
		if st != nil {
			return s.crisisTurn(ctx, st, rec), nil
		}
		return &domain.TurnResult{
			ReplyText:      dialogue.CrisisMessage,
			Emotion:        domain.EmotionNeutral,
			CrisisDetected: true,
			Delivery:       domain.Delivery{Slow: true, PrePause: 0.5},
		}, nil
	}

	emotion := fusion.Fuse(rec)
	if rec.VisualEmotion != "" {
		emotion = rec.VisualEmotion
	}

	structured, fellBack := s.generateStructured(ctx, emotion, rec.Text)

	result := &domain.TurnResult{
		ReplyText:        structured.ReplyText,
		Emotion:          emotion,
		ActionSuggestion: structured.ActionSuggestion,
		Delivery:         dialogue.DeliveryFor(dialogue.DeterminePace(rec.Text)),
		UI: &domain.AdaptiveUI{
			ThemeColor:    structured.UIHexColor,
			AnimationMode: domain.Animation(structured.Animation),
			ShowWidget:    true,
		},
		Fallback: fellBack,
	}

	if st != nil {
		st.Trajectory.Record(emotion)
		turnNum := len(st.Turns) + 1
		s.recordTurn(ctx, st, domain.TurnRecord{
			SessionID: st.ID,
			Turn:      turnNum,
			UserText:  rec.Text,
			AIText:    structured.ReplyText,
			Emotion:   emotion,
			CreatedAt: time.Now(),
		})
		st.Signals.Publish(emotion)
		result.Turn = turnNum
	}

	return result, nil
}

// generateStructured requests the JSON contract and validates it. Transport
// errors and schema violations both route to the fixed structured fallback.
func (s *Service) generateStructured(ctx context.Context, emotion domain.Emotion, userText string) (dialogue.StructuredReply, bool) {
	callCtx, cancel := context.WithTimeout(ctx, s.config.LLMTimeout)
	defer cancel()

	raw, err := s.llmClient.GenerateJSON(callCtx, dialogue.BuildStructuredPrompt(emotion, userText))
	if err != nil {
		log.Error("structured model call failed", "error", err)
		return dialogue.FallbackStructured(), true
	}

	reply := dialogue.ParseStructuredReply(raw)
	if reply.Kind != dialogue.ReplyStructured {
		log.Warn("malformed structured reply, using fallback", "length", len(raw))
		return dialogue.FallbackStructured(), true
	}
	return reply.Structured, false
}
