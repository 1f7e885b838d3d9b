package service

import (
	"context"

	"github.com/pranavshinde369/feelio/internal/domain"
	"github.com/pranavshinde369/feelio/internal/fusion"
)

// PublishSignals fuses one signal frame from the live feed and overwrites
// the session's current-emotion cell. The dialogue path reads the cell at
// its own pace; frames are never queued.
func (s *Service) PublishSignals(ctx context.Context, sessionID string, raw domain.SignalRecord) (domain.Emotion, error) {
	rec, err := fusion.Normalize(raw)
	if err != nil {
		return "", err
	}

	st := s.getOrCreateSession(ctx, sessionID)

	emotion := rec.VisualEmotion
	if emotion == "" {
		emotion = fusion.Fuse(rec)
	}
	st.Signals.Publish(emotion)
	return emotion, nil
}

// CurrentEmotion returns the session's latest published reading.
func (s *Service) CurrentEmotion(sessionID string) (domain.Emotion, error) {
	st, err := s.sessions.Get(sessionID)
	if err != nil {
		return "", err
	}
	return st.Signals.Read().Emotion, nil
}
