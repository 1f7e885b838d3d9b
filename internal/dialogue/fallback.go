package dialogue

import "github.com/pranavshinde369/feelio/internal/domain"

// CrisisMessage is the fixed, non-generated response for high-risk turns.
// It has no external dependency that can fail.
const CrisisMessage = "I hear you mentioning harm. Your safety matters. " +
	"If you are in danger, contact a local emergency number or a trusted person right now. " +
	"I can listen and help you plan one safe step."

// SummaryUnavailable is returned when summary generation fails.
const SummaryUnavailable = "Summary unavailable"

// NoSessionData is returned when there is nothing to summarize.
const NoSessionData = "No session data captured."

// GenericFallback covers emotions without a dedicated fallback line.
const GenericFallback = "I'm here to listen. Please go on."

// PipelineFallback is the outermost safety net for unexpected faults in the
// turn pipeline.
const PipelineFallback = "I'm sensing some strong emotions. Could you tell me more about what's on your mind?"

var fallbackReplies = map[domain.Emotion]string{
	domain.EmotionHappy:       "I can hear the warmth in your words. What's brought you this joy?",
	domain.EmotionJoyful:      "I can hear the warmth in your words. What's brought you this joy?",
	domain.EmotionSad:         "I sense sadness in what you're sharing. I'm here to listen more deeply.",
	domain.EmotionMelancholic: "I sense sadness in what you're sharing. I'm here to listen more deeply.",
	domain.EmotionAnxious:     "There's some worry coming through. Let's slow down and explore what's underneath.",
	domain.EmotionFear:        "There's some worry coming through. Let's slow down and explore what's underneath.",
	domain.EmotionStressed:    "That sounds like a lot of pressure. Let's take it one piece at a time.",
	domain.EmotionAngry:       "I can feel the heat in this. It's okay to let it out here, slowly.",
	domain.EmotionCalm:        "You sound grounded right now. What's helped you get to this place?",
	domain.EmotionNeutral:     "I'm sensing you might have a lot on your mind. Where would you like to start?",
}

// FallbackReply returns the canned response for the emotion, never empty.
func FallbackReply(emotion domain.Emotion) string {
	if reply, ok := fallbackReplies[emotion]; ok {
		return reply
	}
	return GenericFallback
}

// FallbackStructured is the canned adaptive-UI response used when the model
// cannot supply a valid structured reply.
func FallbackStructured() StructuredReply {
	return StructuredReply{
		ReplyText:        "I'm here with you. Take a moment.",
		UIHexColor:       "#E0F2F1",
		Animation:        string(domain.AnimationBreatheSlow),
		ActionSuggestion: "Just breathe",
	}
}
