// Package safety screens user utterances for self-harm and crisis language.
// The keyword policy is deliberately permissive: a false positive costs an
// extra crisis message, a false negative is unacceptable.
package safety

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/v1/rego"
)

// Screener evaluates the crisis policy against each utterance.
type Screener struct {
	query rego.PreparedEvalQuery
}

// NewScreener compiles the given rego policy content.
func NewScreener(ctx context.Context, policyContent string) (*Screener, error) {
	r := rego.New(
		rego.Query("data.crisis_policy.high_risk"),
		rego.Module("crisis_policy.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Screener{query: query}, nil
}

// IsHighRisk reports whether the text matches the crisis policy. Evaluation
// failures count as high risk: the crisis path has no dependency that can
// fail, so erring toward it is always safe.
func (s *Screener) IsHighRisk(ctx context.Context, text string) bool {
	results, err := s.query.Eval(ctx, rego.EvalInput(map[string]interface{}{
		"text": text,
	}))
	if err != nil {
		return true
	}
	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return false
	}

	risk, ok := results[0].Expressions[0].Value.(bool)
	if !ok {
		return true
	}
	return risk
}

// DefaultPolicy is the built-in crisis keyword policy: case-insensitive
// substring match over a fixed phrase list.
const DefaultPolicy = `
package crisis_policy

default high_risk := false

keywords := [
	"suicide",
	"kill myself",
	"end my life",
	"hurt myself",
	"self harm",
	"self-harm",
	"cut myself",
	"want to die",
	"no reason to live",
	"give up",
]

high_risk if {
	some kw in keywords
	contains(lower(input.text), kw)
}
`
