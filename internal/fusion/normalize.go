// Package fusion combines multimodal signal scores into one dominant
// emotion label.
package fusion

import (
	"fmt"
	"strings"

	"github.com/pranavshinde369/feelio/internal/domain"
)

// Normalize clamps a raw signal record into its declared domain: face
// probabilities to [0,1], voice jitter to >= 0, text trimmed. A visual
// emotion label outside the known vocabularies is rejected rather than
// coerced.
func Normalize(raw domain.SignalRecord) (domain.SignalRecord, error) {
	rec := domain.SignalRecord{
		Text:          strings.TrimSpace(raw.Text),
		FaceSadness:   clamp01(raw.FaceSadness),
		FaceStress:    clamp01(raw.FaceStress),
		FaceJoy:       clamp01(raw.FaceJoy),
		VoiceJitter:   raw.VoiceJitter,
		VisualEmotion: raw.VisualEmotion,
	}
	if rec.VoiceJitter < 0 {
		rec.VoiceJitter = 0
	}
	if rec.VisualEmotion != "" && !rec.VisualEmotion.IsKnown() {
		return domain.SignalRecord{}, fmt.Errorf("unknown visual emotion %q", rec.VisualEmotion)
	}
	return rec, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
