// Package playbook maps the current emotional state and utterance keywords
// to one concrete coping action from a fixed catalog.
package playbook

import (
	"strings"

	"github.com/pranavshinde369/feelio/internal/domain"
)

// keywordOverride wins over the emotion-keyed catalog. Checked in order;
// the first match returns immediately.
type keywordOverride struct {
	keywords []string
	action   string
}

var overrides = []keywordOverride{
	{
		keywords: []string{"panic", "anxious"},
		action:   "Panic kit: 3 paced breaths (inhale 4, exhale 6) plus name 3 things you see.",
	},
	{
		keywords: []string{"sleep", "insomnia"},
		action:   "Sleep wind-down: lights dim, slow exhale 6s for 1 minute, then write one worry and shelve it till morning.",
	},
	{
		keywords: []string{"overwhelm", "burnout"},
		action:   "Overwhelm triage: list top 3 tasks, pick one 10-minute starter and ignore the rest for 30 minutes.",
	},
}

var catalog = map[domain.Emotion]string{
	domain.EmotionSad:         "Run a 5-minute activation: stand, stretch, and text one friend a kind line.",
	domain.EmotionFear:        "Try 5-4-3-2-1 grounding with one slow exhale per step.",
	domain.EmotionAngry:       "Cool-down reset: cold water on wrists + step outside for 2 minutes before replying to anyone.",
	domain.EmotionDisgust:     "Name-then-reframe: label the trigger, then list one boundary you can set today.",
	domain.EmotionSurprise:    "Stabilize with box breathing: 4 in, 4 hold, 4 out, 4 hold for two cycles.",
	domain.EmotionNeutral:     "Micro check-in: what mattered most today? Pick one tiny action that honors it in 5 minutes.",
	domain.EmotionMelancholic: "Gentle lift: open a window, one slow stretch, then write a single sentence about what feels heavy.",
	domain.EmotionStressed:    "Pressure valve: dump every open loop onto paper for 2 minutes, then star only one.",
	domain.EmotionAnxious:     "Ground first: 3 paced breaths, feet flat, name the one worry that is loudest.",
	domain.EmotionCalm:        "Bank the calm: note one thing that helped you get here so you can repeat it.",
	domain.EmotionJoyful:      "Savor it: name what sparked this and share it with one person today.",
	domain.EmotionHappy:       "Savor it: name what sparked this and share it with one person today.",
}

// defaultAction covers any label without a catalog entry.
const defaultAction = "Pick one concrete action in 5 minutes (move, text, or jot a thought). Keep it small and doable."

// Select chooses the coping action for this turn. Keyword overrides in the
// lowercased text take priority; then the emotion-keyed catalog; then the
// generic default.
func Select(emotion domain.Emotion, userText string) string {
	text := strings.ToLower(userText)
	for _, ov := range overrides {
		for _, kw := range ov.keywords {
			if strings.Contains(text, kw) {
				return ov.action
			}
		}
	}
	if action, ok := catalog[emotion]; ok {
		return action
	}
	return defaultAction
}
