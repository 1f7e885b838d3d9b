package llm

import (
	"os"

	"github.com/charmbracelet/log"
)

const (
	// EnvFeelioMode is the environment variable name for mode selection.
	EnvFeelioMode = "FEELIO_MODE"
	// ModeMock indicates the mock backend should be used.
	ModeMock = "MOCK"
)

// NewClient creates an LLM client based on the FEELIO_MODE environment
// variable. FEELIO_MODE=MOCK returns the mock backend; anything else
// returns the Gemini client.
func NewClient(apiKey, model string) Client {
	if os.Getenv(EnvFeelioMode) == ModeMock {
		log.Info("FEELIO_MODE=MOCK detected, using mock LLM client")
		return NewMockClient()
	}
	return NewGeminiClient(apiKey, model)
}
