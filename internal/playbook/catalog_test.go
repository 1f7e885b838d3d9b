package playbook

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pranavshinde369/feelio/internal/domain"
)

func TestKeywordOverrideBeatsEmotion(t *testing.T) {
	// "panic" in the text wins even over a calm reading.
	got := Select(domain.EmotionCalm, "I keep having panic attacks")
	assert.True(t, strings.HasPrefix(got, "Panic kit:"), "got %q", got)
}

func TestOverrideOrderFirstMatchWins(t *testing.T) {
	got := Select(domain.EmotionNeutral, "anxious and can't sleep")
	assert.True(t, strings.HasPrefix(got, "Panic kit:"), "got %q", got)
}

func TestEmotionCatalogLookup(t *testing.T) {
	got := Select(domain.EmotionSad, "nothing much happened")
	assert.Equal(t, catalog[domain.EmotionSad], got)
}

func TestStressedFallsThroughToCatalog(t *testing.T) {
	got := Select(domain.EmotionStressed, "work is too hard")
	assert.Equal(t, catalog[domain.EmotionStressed], got)
}

func TestUnknownEmotionUsesDefault(t *testing.T) {
	got := Select(domain.Emotion("perplexed"), "hmm")
	assert.Equal(t, defaultAction, got)
}
