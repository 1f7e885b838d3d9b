package dialogue

import (
	"fmt"
	"strings"

	"github.com/pranavshinde369/feelio/internal/domain"
)

// Persona is the system instruction configured once per session
// conversation. The model's own memory of prior turns is relied upon; the
// per-turn prompt never resends history.
const Persona = `You are Dr. Libra, a practical and solution-oriented AI therapist.
YOUR GOAL: Validate the user's feelings, then offer a concrete path forward.

RULES:
1. THE "VALIDATE -> SOLVE" LOOP: First, acknowledge the emotion (1 sentence). Then, immediately offer a coping strategy, a different perspective (reframing), or a small actionable step.
2. USE CBT TECHNIQUES: If the user is anxious, suggest grounding. If sad, suggest behavioral activation (small movement). If angry, suggest cooling down.
3. DETECT CONTRADICTIONS: If the user says "I'm fine" but looks SAD, say: "You're saying you're fine, but you look down. It's okay to admit if you need a solution for that sadness."
4. BE CONCISE: Keep it under 3 sentences so it speaks quickly.
5. NO GENERIC ADVICE: Avoid "drink water" or "take a deep breath" unless specific. Give psychological tools.`

// SilentUserText stands in for the utterance when the user sends signals
// without words.
const SilentUserText = "(User is silent, just observing)"

// PromptInput is everything the assembler folds into one instruction block.
type PromptInput struct {
	UserText      string
	Emotion       domain.Emotion
	Trajectory    string
	Contradiction string
	Playbook      string
	Pace          PaceHint
	Turn          int
}

// BuildTurnPrompt assembles the per-turn instruction. The turn counter makes
// each prompt unique within the stateful conversation.
func BuildTurnPrompt(in PromptInput) string {
	userText := in.UserText
	if userText == "" {
		userText = SilentUserText
	}

	var b strings.Builder
	b.WriteString("CONTEXT: Short, solution-focused spoken therapy. ")
	fmt.Fprintf(&b, "USER SAID: '%s'. ", userText)
	fmt.Fprintf(&b, "EMOTION STATE: '%s'. ", in.Emotion)
	fmt.Fprintf(&b, "EMOTION TRAJECTORY: %s. ", in.Trajectory)
	fmt.Fprintf(&b, "CONTRADICTION FLAG: %s. ", in.Contradiction)
	fmt.Fprintf(&b, "SUGGESTED PLAYBOOK: %s. ", in.Playbook)
	fmt.Fprintf(&b, "PACE HINT: %s. ", in.Pace)
	b.WriteString("INSTRUCTION: 1) Validate based on words, 2) offer ONE specific tool right now, 3) keep under 3 sentences, 4) if contradiction, invite gentle clarification, 5) match the pace hint (slightly slower if requested).")
	fmt.Fprintf(&b, "\n[CONVERSATION TURN: %d]", in.Turn)
	return b.String()
}

// BuildStructuredPrompt asks for the adaptive-UI JSON contract instead of
// free text.
func BuildStructuredPrompt(emotion domain.Emotion, userText string) string {
	if userText == "" {
		userText = SilentUserText
	}
	return fmt.Sprintf(`You are Feelio, an adaptive AI interface.
Current User State: %s
User Input: %q

Your goal is to soothe, encourage, or mirror the user's energy.

Return a JSON object strictly matching this schema:
{
    "reply_text": "Your short empathetic verbal response (max 20 words)",
    "ui_hex_color": "A hex code suitable for the mood (e.g. #FFCDD2 for stress, #E0F2F1 for calm)",
    "animation": "one of [breathe_slow, pulse_fast, static, flow]",
    "action_suggestion": "A micro-action (e.g. 'Drop your shoulders', 'Sip water')"
}`, strings.ToUpper(string(emotion)), userText)
}

// BuildSummaryPrompt condenses the session into feelings + actions.
func BuildSummaryPrompt(recentEmotions []domain.Emotion, snippets []domain.TurnRecord) string {
	labels := make([]string, len(recentEmotions))
	for i, e := range recentEmotions {
		labels[i] = string(e)
	}

	var transcript strings.Builder
	for _, t := range snippets {
		fmt.Fprintf(&transcript, "user: %q / therapist: %q (%s); ", t.UserText, t.AIText, t.Emotion)
	}

	return fmt.Sprintf(
		"You are an AI therapist preparing a concise handoff. "+
			"Summarize the session in 3 bullet points: (1) observed emotions trend, (2) key concerns, (3) agreed small actions. "+
			"Keep it under 80 words. "+
			"Recent emotions: [%s]. "+
			"Transcript snippets: %s",
		strings.Join(labels, ", "), transcript.String())
}
