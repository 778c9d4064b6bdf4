package interview

import (
	"context"

	"hirebridge/internal/logging"
	"hirebridge/pkg/models"
	"hirebridge/pkg/utils"
)

// EvaluationOracle is the slice of the oracle surface the evaluator needs
type EvaluationOracle interface {
	EvaluateAnswer(ctx context.Context, question models.Question, answer string) (*models.AnswerEvaluation, error)
}

// Evaluator runs a full interview's answers through the evaluation oracle
type Evaluator struct {
	oracle EvaluationOracle
	logger logging.Logger
}

// NewEvaluator creates a new batch evaluator
func NewEvaluator(oracle EvaluationOracle) *Evaluator {
	return &Evaluator{
		oracle: oracle,
		logger: logging.GetGlobalLogger(),
	}
}

// EvaluateBatch evaluates every answer strictly one at a time, preserving
// question order: result[i] corresponds to questions[i]. A length
// mismatch is rejected before the first oracle call. A single oracle
// failure aborts the whole batch and discards partial results; a partial
// verdict is worse than no verdict for a pass/fail gate.
func (e *Evaluator) EvaluateBatch(ctx context.Context, questions []models.Question, answers []models.SubmittedAnswer) ([]models.AnswerEvaluation, error) {
	if len(questions) != len(answers) {
		return nil, utils.NewShapeMismatchError(len(questions), len(answers))
	}

	evaluations := make([]models.AnswerEvaluation, 0, len(questions))

	for i, question := range questions {
		eval, err := e.oracle.EvaluateAnswer(ctx, question, answers[i].Text)
		if err != nil {
			e.logger.Error("Answer evaluation aborted", map[string]interface{}{
				"question_id": question.ID,
				"position":    i,
				"error":       err.Error(),
			})
			return nil, utils.NewOracleError(err.Error())
		}

		eval.QuestionID = question.ID
		eval.Skill = question.Skill
		evaluations = append(evaluations, *eval)
	}

	return evaluations, nil
}
