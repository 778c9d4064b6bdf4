package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirebridge/pkg/models"
)

func evalsWithScores(scores ...int) []models.AnswerEvaluation {
	evals := make([]models.AnswerEvaluation, 0, len(scores))
	for i, score := range scores {
		evals = append(evals, models.AnswerEvaluation{
			QuestionID: i + 1,
			Score:      score,
		})
	}
	return evals
}

func TestAggregate_MixedScores(t *testing.T) {
	result, err := Aggregate(evalsWithScores(80, 75, 60, 90, 70))
	require.NoError(t, err)

	assert.Equal(t, 75, result.AverageScore)
	assert.True(t, result.IsVerified)
	assert.Equal(t, 4, result.PassedCount)
	assert.Equal(t, models.PassThreshold, result.Threshold)
}

func TestAggregate_BelowThreshold(t *testing.T) {
	result, err := Aggregate(evalsWithScores(50, 60, 55, 65, 60))
	require.NoError(t, err)

	assert.Equal(t, 58, result.AverageScore)
	assert.False(t, result.IsVerified)
	assert.Equal(t, 0, result.PassedCount)
}

func TestAggregate_ExactlyAtThreshold(t *testing.T) {
	result, err := Aggregate(evalsWithScores(70, 70, 70, 70, 70))
	require.NoError(t, err)

	assert.Equal(t, 70, result.AverageScore)
	assert.True(t, result.IsVerified)
	assert.Equal(t, 5, result.PassedCount)
}

func TestAggregate_RoundsHalfUp(t *testing.T) {
	// 69 + 70 = 139, mean 69.5 rounds up to 70 and verifies
	result, err := Aggregate(evalsWithScores(69, 70))
	require.NoError(t, err)

	assert.Equal(t, 70, result.AverageScore)
	assert.True(t, result.IsVerified)
}

func TestAggregate_RoundsBelowHalfDown(t *testing.T) {
	// 69 + 70 + 69 = 208, mean 69.33 stays at 69
	result, err := Aggregate(evalsWithScores(69, 70, 69))
	require.NoError(t, err)

	assert.Equal(t, 69, result.AverageScore)
	assert.False(t, result.IsVerified)
}

func TestAggregate_Deterministic(t *testing.T) {
	evals := evalsWithScores(80, 75, 60, 90, 70)

	first, err := Aggregate(evals)
	require.NoError(t, err)

	second, err := Aggregate(evals)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAggregate_EmptyBatchRejected(t *testing.T) {
	result, err := Aggregate(nil)
	require.Error(t, err)
	assert.Nil(t, result)
}
