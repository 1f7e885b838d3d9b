package domain

// SignalRecord is the canonical per-turn input after normalization. Bounded
// fields are clamped to their declared range; absent fields are zero. The
// record is created fresh per request and discarded after fusion.
type SignalRecord struct {
	// Text the user typed or spoke this turn. Empty means silence.
	Text string `json:"user_text,omitempty"`

	// Face probabilities in [0,1], from the browser vision loop.
	FaceSadness float64 `json:"face_sadness"`
	FaceStress  float64 `json:"face_stress"`
	FaceJoy     float64 `json:"face_joy"`

	// Pitch/tone variance from the audio loop, >= 0.
	VoiceJitter float64 `json:"voice_jitter"`

	// VisualEmotion is the categorical alternative to the numeric scores:
	// a single label from the visual model's vocabulary. When set, fusion
	// is skipped and the label is used directly.
	VisualEmotion Emotion `json:"visual_emotion,omitempty"`
}

// HasSignals reports whether any modality carries a non-zero reading.
func (r SignalRecord) HasSignals() bool {
	return r.FaceSadness > 0 || r.FaceStress > 0 || r.FaceJoy > 0 ||
		r.VoiceJitter > 0 || r.VisualEmotion != ""
}
