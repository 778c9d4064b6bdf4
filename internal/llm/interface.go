package llm

import (
	"context"

	"hirebridge/pkg/models"
)

// Provider is the contract both AI oracles are served through. The
// provider is a black box: it is asked for questions or for a rubric
// evaluation and its JSON output is validated before anything downstream
// touches it.
type Provider interface {
	// GenerateQuestions asks the oracle for interview questions covering
	// the given skills at the given experience tier
	GenerateQuestions(ctx context.Context, skills []string, tier models.ExperienceTier) ([]models.Question, error)

	// EvaluateAnswer asks the oracle to score one candidate answer against
	// the question's reference answer and keywords
	EvaluateAnswer(ctx context.Context, question models.Question, answer string) (*models.AnswerEvaluation, error)

	// IsHealthy checks if the provider is reachable and configured
	IsHealthy(ctx context.Context) error

	// GetProviderName returns the name of the provider
	GetProviderName() string
}
