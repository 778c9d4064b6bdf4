package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"hirebridge/internal/config"
	"hirebridge/internal/logging"
	"hirebridge/pkg/models"
)

const defaultClaudeModel = anthropic.ModelClaude3_7SonnetLatest

// ClaudeProvider implements the oracle provider interface using
// Anthropic's Claude
type ClaudeProvider struct {
	client anthropic.Client
	config *config.Config
	logger logging.Logger
}

// NewClaudeProvider creates a new Claude provider instance
func NewClaudeProvider(cfg *config.Config) *ClaudeProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.LLM.APIKey),
	)

	return &ClaudeProvider{
		client: client,
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// GenerateQuestions asks Claude for interview questions covering the
// given skills
func (cp *ClaudeProvider) GenerateQuestions(ctx context.Context, skills []string, tier models.ExperienceTier) ([]models.Question, error) {
	startTime := time.Now()

	cp.logger.Info("Generating interview questions with Claude", map[string]interface{}{
		"skills":   skills,
		"tier":     tier,
		"provider": "claude",
	})

	prompt := buildQuestionsPrompt(skills, tier, models.QuestionCount)

	responseText, err := cp.complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to call Claude API: %w", err)
	}

	questions, err := parseQuestionsPayload(responseText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Claude response: %w", err)
	}

	cp.logger.Info("Question generation completed", map[string]interface{}{
		"questions":       len(questions),
		"processing_time": time.Since(startTime),
		"provider":        "claude",
	})

	return questions, nil
}

// EvaluateAnswer asks Claude to grade one candidate answer on the rubric
func (cp *ClaudeProvider) EvaluateAnswer(ctx context.Context, question models.Question, answer string) (*models.AnswerEvaluation, error) {
	prompt := buildEvaluationPrompt(question, answer)

	responseText, err := cp.complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to call Claude API: %w", err)
	}

	eval, err := parseEvaluationPayload(responseText, question)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Claude response: %w", err)
	}

	cp.logger.Debug("Answer evaluation completed", map[string]interface{}{
		"question_id": question.ID,
		"score":       eval.Score,
		"provider":    "claude",
	})

	return eval, nil
}

func (cp *ClaudeProvider) complete(ctx context.Context, prompt string) (string, error) {
	model := anthropic.Model(cp.config.LLM.Model)
	if cp.config.LLM.Model == "" {
		model = defaultClaudeModel
	}

	response, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       model,
		MaxTokens:   int64(cp.config.LLM.MaxTokens),
		Temperature: anthropic.Float(float64(cp.config.LLM.Temperature)),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return "", err
	}

	if len(response.Content) == 0 {
		return "", fmt.Errorf("empty response from Claude")
	}

	var responseText string
	for _, content := range response.Content {
		textContent := content.AsText()
		responseText = textContent.Text
		break
	}

	if responseText == "" {
		return "", fmt.Errorf("no text content in Claude response")
	}

	return responseText, nil
}

// IsHealthy checks if the Claude provider is healthy and available
func (cp *ClaudeProvider) IsHealthy(ctx context.Context) error {
	if cp.config.LLM.APIKey == "" {
		return fmt.Errorf("Claude API key not configured - set LLM_API_KEY environment variable")
	}

	_, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     defaultClaudeModel,
		MaxTokens: 500,
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: "Hello"},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})

	if err != nil {
		return fmt.Errorf("Claude API health check failed: %w", err)
	}

	return nil
}

// GetProviderName returns the name of the provider
func (cp *ClaudeProvider) GetProviderName() string {
	return "claude"
}
