package ai

import (
	"context"
)

// LLMProvider defines the contract for free-form answer generation.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type LLMProvider interface {
	// Answer produces a short German reply to a general travel question.
	// profileHints carries dynamic information like "travel_style", "budget_range", etc.
	Answer(ctx context.Context, userMessage string, profileHints map[string]string) (string, error)
}
