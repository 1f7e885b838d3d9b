package dialogue

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pranavshinde369/feelio/internal/domain"
)

func TestContradictionFlagged(t *testing.T) {
	flag := DetectContradiction("I'm fine", domain.EmotionSad)
	assert.NotEqual(t, NoContradiction, flag)
	assert.Contains(t, flag, "sad")
}

func TestContradictionNotFlaggedWhenJoyful(t *testing.T) {
	assert.Equal(t, NoContradiction, DetectContradiction("I'm fine", domain.EmotionJoyful))
}

func TestContradictionNeedsReassuranceToken(t *testing.T) {
	assert.Equal(t, NoContradiction, DetectContradiction("everything hurts", domain.EmotionSad))
}

func TestDeterminePace(t *testing.T) {
	short := "I had a rough day"
	long := strings.Repeat("word ", 19)
	assert.Equal(t, PaceNormal, DeterminePace(short))
	assert.Equal(t, PaceSlower, DeterminePace(long))
}

func TestDeterminePaceThresholdIsStrict(t *testing.T) {
	eighteen := strings.TrimSpace(strings.Repeat("word ", 18))
	assert.Equal(t, 18, WordCount(eighteen))
	assert.Equal(t, PaceNormal, DeterminePace(eighteen))
}

func TestDeliveryFor(t *testing.T) {
	assert.Equal(t, domain.Delivery{Slow: true, PrePause: 0.8}, DeliveryFor(PaceSlower))
	assert.Equal(t, domain.Delivery{Slow: false, PrePause: 0.2}, DeliveryFor(PaceNormal))
}

func TestBuildTurnPromptCarriesAllContext(t *testing.T) {
	prompt := BuildTurnPrompt(PromptInput{
		UserText:      "work is too hard",
		Emotion:       domain.EmotionStressed,
		Trajectory:    "mostly stressed",
		Contradiction: NoContradiction,
		Playbook:      "Pressure valve: dump every open loop onto paper.",
		Pace:          PaceNormal,
		Turn:          3,
	})
	assert.Contains(t, prompt, "USER SAID: 'work is too hard'")
	assert.Contains(t, prompt, "EMOTION STATE: 'stressed'")
	assert.Contains(t, prompt, "EMOTION TRAJECTORY: mostly stressed")
	assert.Contains(t, prompt, "CONTRADICTION FLAG: none noted")
	assert.Contains(t, prompt, "PACE HINT: normal")
	assert.Contains(t, prompt, "[CONVERSATION TURN: 3]")
}

func TestBuildTurnPromptSilentUser(t *testing.T) {
	prompt := BuildTurnPrompt(PromptInput{Emotion: domain.EmotionCalm, Turn: 1})
	assert.Contains(t, prompt, SilentUserText)
}

func TestParsePlainReplyTooShort(t *testing.T) {
	assert.Equal(t, ReplyMalformed, ParsePlainReply("  ok ").Kind)
	assert.Equal(t, ReplyMalformed, ParsePlainReply("").Kind)
}

func TestParsePlainReplyValid(t *testing.T) {
	r := ParsePlainReply("  That sounds heavy. Try one small step.  ")
	assert.Equal(t, ReplyPlainText, r.Kind)
	assert.Equal(t, "That sounds heavy. Try one small step.", r.Text)
}

func TestParseStructuredReplyValid(t *testing.T) {
	raw := `{"reply_text":"Breathe with me for a moment.","ui_hex_color":"#E0F2F1","animation":"breathe_slow","action_suggestion":"Drop your shoulders"}`
	r := ParseStructuredReply(raw)
	assert.Equal(t, ReplyStructured, r.Kind)
	assert.Equal(t, "#E0F2F1", r.Structured.UIHexColor)
}

func TestParseStructuredReplyFencedJSON(t *testing.T) {
	raw := "```json\n{\"reply_text\":\"Breathe with me now.\",\"ui_hex_color\":\"#FFCDD2\",\"animation\":\"flow\",\"action_suggestion\":\"Sip water\"}\n```"
	assert.Equal(t, ReplyStructured, ParseStructuredReply(raw).Kind)
}

func TestParseStructuredReplyRejectsBadFields(t *testing.T) {
	cases := []string{
		`not json at all`,
		`{"reply_text":"hi","ui_hex_color":"#E0F2F1","animation":"breathe_slow","action_suggestion":"x"}`,
		`{"reply_text":"Breathe with me.","ui_hex_color":"teal","animation":"breathe_slow","action_suggestion":"x"}`,
		`{"reply_text":"Breathe with me.","ui_hex_color":"#E0F2F1","animation":"spin_fast","action_suggestion":"x"}`,
	}
	for _, raw := range cases {
		assert.Equal(t, ReplyMalformed, ParseStructuredReply(raw).Kind, "raw: %s", raw)
	}
}

func TestFallbackReplyNeverEmpty(t *testing.T) {
	for _, e := range append(append([]domain.Emotion{}, domain.FusedLabels...), domain.CategoricalLabels...) {
		assert.NotEmpty(t, FallbackReply(e))
	}
	assert.Equal(t, GenericFallback, FallbackReply(domain.Emotion("unmapped")))
}

func TestFallbackDistinctWordingPerEmotion(t *testing.T) {
	assert.NotEqual(t, FallbackReply(domain.EmotionSad), FallbackReply(domain.EmotionCalm))
	assert.NotEqual(t, FallbackReply(domain.EmotionAnxious), FallbackReply(domain.EmotionNeutral))
}
