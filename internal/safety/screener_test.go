package safety

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestScreener(t *testing.T) *Screener {
	t.Helper()
	s, err := NewScreener(context.Background(), DefaultPolicy)
	if err != nil {
		t.Fatalf("failed to create screener: %v", err)
	}
	return s
}

func TestHighRiskPhrases(t *testing.T) {
	s := newTestScreener(t)
	ctx := context.Background()

	risky := []string{
		"I want to end my life",
		"sometimes I think about SUICIDE",
		"i might hurt myself tonight",
		"there's no reason to live anymore",
		"I just want to give up",
	}
	for _, text := range risky {
		assert.True(t, s.IsHighRisk(ctx, text), "expected high risk: %q", text)
	}
}

func TestBenignPhrases(t *testing.T) {
	s := newTestScreener(t)
	ctx := context.Background()

	benign := []string{
		"work is too hard",
		"I had a rough day but I'm okay",
		"my plant died and I feel sad",
		"",
	}
	for _, text := range benign {
		assert.False(t, s.IsHighRisk(ctx, text), "expected benign: %q", text)
	}
}
