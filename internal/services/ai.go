package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/genai"
)

// DisabledSummaryPlaceholder is recorded instead of a real summary when AI
// evaluation is switched off. No score is ever computed in that mode.
const DisabledSummaryPlaceholder = "AI summarization is currently disabled"

// AIService wraps the remote text-completion model used for resume
// evaluation. The enabled flag is fixed at construction from config.
type AIService interface {
	Enabled() bool
	SummarizeResume(ctx context.Context, resumeText string) (string, error)
	ScoreMatch(ctx context.Context, resumeSummary, jobDescription string) (int, error)
}

type geminiAIService struct {
	client        *genai.Client
	modelName     string
	enabled       bool
	promptBuilder *PromptBuilder
}

func NewGeminiAIService(apiKey string, enabled bool) (AIService, error) {
	svc := &geminiAIService{
		modelName:     "gemini-2.5-flash",
		enabled:       enabled,
		promptBuilder: NewPromptBuilder(),
	}

	if !enabled {
		return svc, nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	svc.client = client
	return svc, nil
}

// Enabled implements AIService.
func (g *geminiAIService) Enabled() bool {
	return g.enabled
}

// SummarizeResume implements AIService.
func (g *geminiAIService) SummarizeResume(ctx context.Context, resumeText string) (string, error) {
	prompt := g.promptBuilder.BuildSummaryPrompt(resumeText)

	text, err := g.generateText(ctx, prompt, 0.3, 500)
	if err != nil {
		return "", fmt.Errorf("failed to summarize resume: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// ScoreMatch implements AIService.
func (g *geminiAIService) ScoreMatch(ctx context.Context, resumeSummary, jobDescription string) (int, error) {
	prompt := g.promptBuilder.BuildMatchScorePrompt(resumeSummary, jobDescription)

	text, err := g.generateText(ctx, prompt, 0.1, 50)
	if err != nil {
		return 0, fmt.Errorf("failed to score match: %w", err)
	}

	score, err := parseMatchScore(text)
	if err != nil {
		return 0, fmt.Errorf("failed to parse match score: %w", err)
	}

	return score, nil
}

func (g *geminiAIService) generateText(ctx context.Context, prompt string, temperature float32, maxTokens int32) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: maxTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}

// parseMatchScore extracts the first run of digits from the model reply
// and clamps it to [0, 100].
func parseMatchScore(reply string) (int, error) {
	var digits strings.Builder
	for _, r := range strings.TrimSpace(reply) {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
			continue
		}
		if digits.Len() > 0 {
			break
		}
	}

	if digits.Len() == 0 {
		return 0, fmt.Errorf("no numeric score in reply %q", reply)
	}

	score, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, fmt.Errorf("invalid score in reply %q: %w", reply, err)
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return score, nil
}
