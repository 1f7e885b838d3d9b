package llm

import (
	"context"
	"fmt"
	"strings"
)

// MockClient is a deterministic Client implementation for local development
// and tests. No network, no key.
type MockClient struct{}

// NewMockClient creates a new mock LLM client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// StartConversation returns a conversation that echoes context back in a
// plausibly therapeutic shape.
func (m *MockClient) StartConversation(systemInstruction string) Conversation {
	return &mockConversation{}
}

// GenerateOnce returns a canned summary-shaped response.
func (m *MockClient) GenerateOnce(ctx context.Context, prompt string) (string, error) {
	if strings.Contains(prompt, "3 bullet points") {
		return "- Mood moved from tense toward settled.\n- Main concern: workload pressure.\n- Agreed action: one 10-minute starter task.", nil
	}
	return "[MOCK] I hear you. Let's take one small step together.", nil
}

// GenerateJSON returns a valid structured adaptive-UI reply.
func (m *MockClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	return `{"reply_text":"I'm right here with you.","ui_hex_color":"#E0F2F1","animation":"breathe_slow","action_suggestion":"Drop your shoulders"}`, nil
}

type mockConversation struct {
	turns int
}

func (c *mockConversation) Send(ctx context.Context, message string) (string, error) {
	c.turns++
	// Surface a fragment of the prompt so tests can see the plumbing.
	fragment := message
	if idx := strings.Index(message, "INSTRUCTION:"); idx > 0 {
		fragment = strings.TrimSpace(message[:idx])
	}
	if len(fragment) > 120 {
		fragment = fragment[:120] + "..."
	}
	return fmt.Sprintf("[MOCK turn %d] That sounds real. Try one small step now. (%s)", c.turns, fragment), nil
}
