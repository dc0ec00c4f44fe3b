// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/finance-dashboard/backend/internal/application/adapter"
)

// GeminiService implements the adapter.AdvisorService using Google Gemini.
// It narrates the already-computed insight figures; raw records never reach
// the model.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Recommend asks Gemini for a short list of recommendations over the
// computed figures.
func (s *GeminiService) Recommend(ctx context.Context, request *adapter.AdvisorRequest) ([]string, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(s.buildPrompt(request)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	recommendations, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return recommendations, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(request *adapter.AdvisorRequest) string {
	var sb strings.Builder

	sb.WriteString(`You are a personal finance advisor for a single-user dashboard. You are given this month's already-computed figures. Write short, concrete recommendations.

RULES:
- At most 5 recommendations.
- Each recommendation is one plain sentence, no markdown.
- Only use the figures provided; do not invent numbers.
- Skip generic advice that does not follow from the figures.

FIGURES:
`)
	sb.WriteString(fmt.Sprintf("- Month: %s\n", request.MonthLabel))
	sb.WriteString(fmt.Sprintf("- Income: %s\n", request.MonthlyIncome))
	sb.WriteString(fmt.Sprintf("- Expenses: %s\n", request.MonthlyExpenses))
	sb.WriteString(fmt.Sprintf("- Savings rate: %s%%\n", request.SavingsRatePercent))
	sb.WriteString(fmt.Sprintf("- Projected month-end balance: %s\n", request.ProjectedBalance))
	sb.WriteString(fmt.Sprintf("- Emergency fund: %s\n", request.EmergencyFundNote))

	writeNotes := func(label string, notes []string) {
		if len(notes) == 0 {
			return
		}
		sb.WriteString(label + ":\n")
		for _, note := range notes {
			sb.WriteString("- " + note + "\n")
		}
	}
	writeNotes("SPENDING ANOMALIES", request.AnomalyNotes)
	writeNotes("RECURRING EXPENSES", request.RecurringNotes)
	writeNotes("PORTFOLIO DRIFT", request.DriftNotes)

	sb.WriteString(`
RESPONSE FORMAT: Return only a JSON array of recommendation strings, no additional text.
`)
	return sb.String()
}

// parseResponse extracts the recommendation list from the Gemini response.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) ([]string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}
	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var recommendations []string
	if err := json.Unmarshal([]byte(textContent), &recommendations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recommendations: %w", err)
	}
	return recommendations, nil
}
