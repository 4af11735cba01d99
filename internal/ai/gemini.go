package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements LLMProvider using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")
	model.SetTemperature(0.6)
	model.SetMaxOutputTokens(512)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// Answer sends a general travel question to the model and returns the plain-text reply.
func (p *GeminiProvider) Answer(ctx context.Context, userMessage string, profileHints map[string]string) (string, error) {
	fullPrompt := fmt.Sprintf("%s\n\nNutzerfrage: %s", buildSystemPrompt(profileHints), userMessage)

	resp, err := p.model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out.WriteString(string(txt))
		}
	}

	answer := strings.TrimSpace(out.String())
	if answer == "" {
		return "", fmt.Errorf("empty response from Gemini")
	}
	return answer, nil
}

// buildSystemPrompt constructs the instructions for the AI.
func buildSystemPrompt(hints map[string]string) string {
	style := hints["travel_style"]
	budget := hints["budget_range"]
	group := hints["group_type"]

	if style == "" {
		style = "unbekannt"
	}
	if budget == "" {
		budget = "unbekannt"
	}
	if group == "" {
		group = "unbekannt"
	}

	return fmt.Sprintf(`Rolle: Du bist ein freundlicher deutschsprachiger Reiseassistent.
Kontext zum Nutzer:
- Reisestil: %s
- Budgetrahmen: %s
- Reisegruppe: %s

Regeln:
- Antworte immer auf Deutsch, kurz und konkret (maximal 5 Sätze).
- Beantworte nur Fragen rund ums Reisen. Bei anderen Themen verweise höflich auf die Reiseplanung.
- Erfinde keine Preise oder Verfügbarkeiten; formuliere Schätzungen als Richtwerte.`, style, budget, group)
}
