package dialogue

import (
	"regexp"

	"github.com/pranavshinde369/feelio/internal/domain"
)

// PaceHint tunes response delivery speed from utterance length.
type PaceHint string

const (
	PaceNormal PaceHint = "normal"
	PaceSlower PaceHint = "slower"
)

// slowerWordThreshold: longer utterances earn a slower, more deliberate
// reply.
const slowerWordThreshold = 18

var wordPattern = regexp.MustCompile(`\w+`)

// WordCount counts word tokens in the utterance.
func WordCount(text string) int {
	return len(wordPattern.FindAllString(text, -1))
}

// DeterminePace derives the pacing hint for this turn. Pure; computed once
// per turn.
func DeterminePace(userText string) PaceHint {
	if WordCount(userText) > slowerWordThreshold {
		return PaceSlower
	}
	return PaceNormal
}

// DeliveryFor translates the pace hint into the contract handed to the
// speech layer.
func DeliveryFor(pace PaceHint) domain.Delivery {
	if pace == PaceSlower {
		return domain.Delivery{Slow: true, PrePause: 0.8}
	}
	return domain.Delivery{Slow: false, PrePause: 0.2}
}
