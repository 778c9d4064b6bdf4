package interview

import (
	"hirebridge/pkg/models"
	"hirebridge/pkg/utils"
)

// Aggregate combines a batch of answer evaluations into a single
// verification verdict. The average is the arithmetic mean rounded half
// up, the threshold is the fixed global policy and IsVerified is always
// recomputed here, never taken from caller input.
func Aggregate(evaluations []models.AnswerEvaluation) (*models.VerificationResult, error) {
	if len(evaluations) == 0 {
		return nil, utils.NewValidationError("cannot aggregate zero evaluations")
	}

	sum := 0
	passed := 0
	for _, eval := range evaluations {
		sum += eval.Score
		if eval.Passed() {
			passed++
		}
	}

	average := roundHalfUp(sum, len(evaluations))

	return &models.VerificationResult{
		AverageScore: average,
		IsVerified:   average >= models.PassThreshold,
		PassedCount:  passed,
		Threshold:    models.PassThreshold,
	}, nil
}

// roundHalfUp divides sum by count rounding .5 upward. Scores are
// non-negative so the integer form is exact.
func roundHalfUp(sum, count int) int {
	return (2*sum + count) / (2 * count)
}
