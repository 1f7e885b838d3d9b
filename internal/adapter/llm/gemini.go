package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"
)

// GeminiClient implements Client against the Google Gemini API.
type GeminiClient struct {
	apiKey string
	model  string

	mu     sync.Mutex
	client *genai.Client
}

// NewGeminiClient creates a Gemini client with lazy initialization: the
// underlying API client is created on first use.
func NewGeminiClient(apiKey, model string) *GeminiClient {
	return &GeminiClient{apiKey: apiKey, model: model}
}

func (c *GeminiClient) initClient(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client != nil {
		return c.client, nil
	}
	if c.apiKey == "" {
		return nil, fmt.Errorf("gemini API key not configured")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: c.apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	c.client = client
	return client, nil
}

// StartConversation opens a Gemini dialogue context. History accumulates in
// the conversation handle and is resent by the SDK layer; the engine only
// ever supplies the newest message.
func (c *GeminiClient) StartConversation(systemInstruction string) Conversation {
	return &geminiConversation{
		parent:            c,
		systemInstruction: systemInstruction,
	}
}

// GenerateOnce sends a single stateless prompt.
func (c *GeminiClient) GenerateOnce(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, prompt, "")
}

// GenerateJSON sends a single stateless prompt with a JSON response MIME
// type so the model emits the structured contract directly.
func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, prompt, "application/json")
}

func (c *GeminiClient) generate(ctx context.Context, prompt string, mimeType string) (string, error) {
	client, err := c.initClient(ctx)
	if err != nil {
		return "", err
	}

	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	config := &genai.GenerateContentConfig{}
	if mimeType != "" {
		config.ResponseMIMEType = mimeType
	}

	result, err := client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	return extractText(result), nil
}

func (c *GeminiClient) generateWithSystem(ctx context.Context, systemInstruction string, history []*genai.Content) (string, error) {
	client, err := c.initClient(ctx)
	if err != nil {
		return "", err
	}

	config := &genai.GenerateContentConfig{}
	if systemInstruction != "" {
		config.SystemInstruction = genai.NewContentFromText(systemInstruction, genai.RoleUser)
	}

	result, err := client.Models.GenerateContent(ctx, c.model, history, config)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	return extractText(result), nil
}

// extractText concatenates the text parts of the first candidate, skipping
// thought parts.
func extractText(result *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.Text == "" || part.Thought {
				continue
			}
			b.WriteString(part.Text)
		}
		break
	}
	return b.String()
}

// geminiConversation keeps the accumulated turn history for one session.
// Turns within a session are strictly sequential, so no lock is needed
// beyond the serving layer's per-session serialization.
type geminiConversation struct {
	parent            *GeminiClient
	systemInstruction string
	history           []*genai.Content
}

func (g *geminiConversation) Send(ctx context.Context, message string) (string, error) {
	pending := append(append([]*genai.Content{}, g.history...),
		genai.NewContentFromText(message, genai.RoleUser))

	reply, err := g.parent.generateWithSystem(ctx, g.systemInstruction, pending)
	if err != nil {
		return "", err
	}

	// Commit the exchange only after a successful round trip so a failed
	// turn leaves the history unchanged.
	g.history = append(pending, genai.NewContentFromText(reply, genai.RoleModel))
	return reply, nil
}
