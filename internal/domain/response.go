package domain

// Animation is the fixed set of UI animation modes the model may request.
type Animation string

const (
	AnimationBreatheSlow Animation = "breathe_slow"
	AnimationPulseFast   Animation = "pulse_fast"
	AnimationStatic      Animation = "static"
	AnimationFlow        Animation = "flow"
)

// ValidAnimation reports whether s is a member of the animation enum.
func ValidAnimation(s string) bool {
	switch Animation(s) {
	case AnimationBreatheSlow, AnimationPulseFast, AnimationStatic, AnimationFlow:
		return true
	}
	return false
}

// AdaptiveUI carries the appearance instructions returned to the frontend.
type AdaptiveUI struct {
	ThemeColor    string    `json:"theme_color"`
	AnimationMode Animation `json:"animation_mode"`
	ShowWidget    bool      `json:"show_widget"`
}

// Delivery is the pacing contract handed to the speech/playback layer. The
// delivery layer owns the actual timing.
type Delivery struct {
	Slow     bool    `json:"slow"`
	PrePause float64 `json:"pre_pause_seconds"`
}

// TurnResult is everything the engine produces for one conversational turn.
type TurnResult struct {
	ReplyText        string      `json:"reply_text"`
	Emotion          Emotion     `json:"emotion"`
	CrisisDetected   bool        `json:"crisis_detected"`
	Playbook         string      `json:"playbook,omitempty"`
	Delivery         Delivery    `json:"delivery"`
	UI               *AdaptiveUI `json:"ui_adaptation,omitempty"`
	ActionSuggestion string      `json:"action_suggestion,omitempty"`
	Fallback         bool        `json:"fallback,omitempty"`
	Turn             int         `json:"turn"`
}
