// Package llm provides an abstraction for the language-model backend.
package llm

import "context"

// Client defines the engine-facing contract with the language model. The
// transport owns retries and connection details; the engine owns the prompt
// contract and fallback behavior.
type Client interface {
	// StartConversation opens a stateful dialogue context with the given
	// system instruction. The backend retains prior turns; callers send
	// only the new message each turn.
	StartConversation(systemInstruction string) Conversation

	// GenerateOnce sends a single stateless prompt and returns free text.
	GenerateOnce(ctx context.Context, prompt string) (string, error)

	// GenerateJSON sends a single stateless prompt requesting a JSON reply.
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// Conversation is one stateful dialogue context.
type Conversation interface {
	// Send appends a message to the conversation and returns the model's
	// reply text.
	Send(ctx context.Context, message string) (string, error)
}

// Ensure implementations satisfy the interface.
var (
	_ Client = (*GeminiClient)(nil)
	_ Client = (*MockClient)(nil)
)
