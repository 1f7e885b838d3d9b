package fusion

import (
	"strings"

	"github.com/pranavshinde369/feelio/internal/domain"
)

// Calm starts with a baseline advantage so that a quiet signal record
// resolves to calm rather than an arbitrary zero-score label.
const calmBaseline = 0.5

// negativeAffectWords is a shallow text heuristic for the state tag only;
// deep text understanding is the language model's job.
var negativeAffectWords = []string{"help", "cant", "hard", "tired"}

// Fuse maps a normalized signal record to exactly one dominant emotion.
// Pure and deterministic: no I/O, no history. Ties on the top score resolve
// to the earliest label in domain.FusedLabels.
func Fuse(rec domain.SignalRecord) domain.Emotion {
	scores := map[domain.Emotion]float64{
		domain.EmotionCalm:        calmBaseline,
		domain.EmotionStressed:    0,
		domain.EmotionAnxious:     0,
		domain.EmotionJoyful:      0,
		domain.EmotionMelancholic: 0,
	}

	// Vision carries the most weight.
	if rec.FaceStress > 0.5 {
		scores[domain.EmotionStressed] += rec.FaceStress * 0.8
	}
	if rec.FaceSadness > 0.5 {
		scores[domain.EmotionMelancholic] += rec.FaceSadness * 0.9
	}
	if rec.FaceJoy > 0.6 {
		scores[domain.EmotionJoyful] += 1.0
	}

	// Voice jitter reads as anxiety and erodes the calm baseline. The calm
	// score may go negative; it is never clamped.
	if rec.VoiceJitter > 0.7 {
		scores[domain.EmotionAnxious] += 0.7
		scores[domain.EmotionCalm] -= 0.5
	}

	if rec.Text != "" {
		text := strings.ToLower(rec.Text)
		for _, w := range negativeAffectWords {
			if strings.Contains(text, w) {
				scores[domain.EmotionStressed] += 0.5
				break
			}
		}
	}

	dominant := domain.FusedLabels[0]
	best := scores[dominant]
	for _, label := range domain.FusedLabels[1:] {
		if scores[label] > best {
			dominant = label
			best = scores[label]
		}
	}
	return dominant
}
