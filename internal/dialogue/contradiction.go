// Package dialogue assembles the per-turn instruction for the language
// model, validates its reply, and supplies deterministic fallbacks.
package dialogue

import (
	"fmt"
	"strings"

	"github.com/pranavshinde369/feelio/internal/domain"
)

// NoContradiction is the sentinel returned when words and expression agree.
const NoContradiction = "none noted"

var reassuranceTokens = []string{"fine", "okay", "good"}

// DetectContradiction flags the mismatch between a verbal "I'm fine" and a
// distressed expression. Advisory context only; it never alters control
// flow.
func DetectContradiction(userText string, emotion domain.Emotion) string {
	text := strings.ToLower(userText)
	saysFine := false
	for _, token := range reassuranceTokens {
		if strings.Contains(text, token) {
			saysFine = true
			break
		}
	}
	if saysFine && emotion.IsDistress() {
		return fmt.Sprintf("User says fine but looks %s. Invite gentle check-in.", emotion)
	}
	return NoContradiction
}
