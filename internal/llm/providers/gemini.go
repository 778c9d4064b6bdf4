package providers

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"hirebridge/internal/config"
	"hirebridge/internal/logging"
	"hirebridge/pkg/models"
)

const defaultGeminiModel = "gemini-2.5-flash"

// GeminiProvider implements the oracle provider interface using the
// Google GenAI API
type GeminiProvider struct {
	client    *genai.Client
	modelName string
	config    *config.Config
	logger    logging.Logger
}

// NewGeminiProvider creates a new Gemini provider instance
func NewGeminiProvider(ctx context.Context, cfg *config.Config) (*GeminiProvider, error) {
	apiKey := strings.TrimSpace(cfg.LLM.APIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required - set LLM_API_KEY environment variable")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	model := strings.TrimSpace(cfg.LLM.Model)
	if model == "" {
		model = defaultGeminiModel
	}

	return &GeminiProvider{
		client:    client,
		modelName: model,
		config:    cfg,
		logger:    logging.GetGlobalLogger(),
	}, nil
}

// GenerateQuestions asks Gemini for interview questions covering the
// given skills
func (gp *GeminiProvider) GenerateQuestions(ctx context.Context, skills []string, tier models.ExperienceTier) ([]models.Question, error) {
	gp.logger.Info("Generating interview questions with Gemini", map[string]interface{}{
		"skills":   skills,
		"tier":     tier,
		"provider": "gemini",
	})

	responseText, err := gp.generate(ctx, buildQuestionsPrompt(skills, tier, models.QuestionCount))
	if err != nil {
		return nil, fmt.Errorf("failed to call Gemini API: %w", err)
	}

	questions, err := parseQuestionsPayload(responseText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Gemini response: %w", err)
	}

	return questions, nil
}

// EvaluateAnswer asks Gemini to grade one candidate answer on the rubric
func (gp *GeminiProvider) EvaluateAnswer(ctx context.Context, question models.Question, answer string) (*models.AnswerEvaluation, error) {
	responseText, err := gp.generate(ctx, buildEvaluationPrompt(question, answer))
	if err != nil {
		return nil, fmt.Errorf("failed to call Gemini API: %w", err)
	}

	eval, err := parseEvaluationPayload(responseText, question)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Gemini response: %w", err)
	}

	gp.logger.Debug("Answer evaluation completed", map[string]interface{}{
		"question_id": question.ID,
		"score":       eval.Score,
		"provider":    "gemini",
	})

	return eval, nil
}

func (gp *GeminiProvider) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := gp.client.Models.GenerateContent(ctx, gp.modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", fmt.Errorf("gemini api returned empty response")
	}

	return output, nil
}

// IsHealthy checks if the Gemini provider is healthy and available
func (gp *GeminiProvider) IsHealthy(ctx context.Context) error {
	if gp.client == nil {
		return fmt.Errorf("gemini client is not initialized")
	}

	if _, err := gp.generate(ctx, "Hello"); err != nil {
		return fmt.Errorf("Gemini API health check failed: %w", err)
	}

	return nil
}

// GetProviderName returns the name of the provider
func (gp *GeminiProvider) GetProviderName() string {
	return "gemini"
}
