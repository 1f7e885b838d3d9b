// Package domain contains the core data types shared across the engine.
package domain

// Emotion is one label out of a fixed, closed vocabulary. The fusion engine
// produces fused labels; the visual feed reports categorical labels from the
// face model. Both sets are valid values and never extended at runtime.
type Emotion string

// Fused labels produced by the scoring engine.
const (
	EmotionCalm        Emotion = "calm"
	EmotionStressed    Emotion = "stressed"
	EmotionAnxious     Emotion = "anxious"
	EmotionJoyful      Emotion = "joyful"
	EmotionMelancholic Emotion = "melancholic"
)

// Categorical labels reported by the visual emotion model.
const (
	EmotionHappy    Emotion = "happy"
	EmotionSad      Emotion = "sad"
	EmotionAngry    Emotion = "angry"
	EmotionFear     Emotion = "fear"
	EmotionDisgust  Emotion = "disgust"
	EmotionSurprise Emotion = "surprise"
	EmotionNeutral  Emotion = "neutral"
)

// FusedLabels is the fixed priority order used by the fusion engine. Ties on
// the dominant score resolve to the earliest label in this list.
var FusedLabels = []Emotion{
	EmotionCalm,
	EmotionStressed,
	EmotionAnxious,
	EmotionJoyful,
	EmotionMelancholic,
}

// CategoricalLabels is the visual model's vocabulary.
var CategoricalLabels = []Emotion{
	EmotionHappy,
	EmotionSad,
	EmotionAngry,
	EmotionFear,
	EmotionDisgust,
	EmotionSurprise,
	EmotionNeutral,
}

var distressSet = map[Emotion]bool{
	EmotionSad:         true,
	EmotionFear:        true,
	EmotionAngry:       true,
	EmotionDisgust:     true,
	EmotionSurprise:    true,
	EmotionStressed:    true,
	EmotionAnxious:     true,
	EmotionMelancholic: true,
}

// IsDistress reports whether the label belongs to the distress subset used
// by contradiction detection.
func (e Emotion) IsDistress() bool {
	return distressSet[e]
}

var knownLabels = func() map[Emotion]bool {
	m := make(map[Emotion]bool, len(FusedLabels)+len(CategoricalLabels))
	for _, e := range FusedLabels {
		m[e] = true
	}
	for _, e := range CategoricalLabels {
		m[e] = true
	}
	return m
}()

// IsKnown reports whether the label belongs to either vocabulary.
func (e Emotion) IsKnown() bool {
	return knownLabels[e]
}
