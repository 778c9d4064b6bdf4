package interview

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirebridge/pkg/models"
	"hirebridge/pkg/utils"
)

// fakeOracle scripts one result per question ID and records call order
type fakeOracle struct {
	scores    map[int]int
	failAfter int // number of successful calls before failing; -1 never fails
	calls     []int
}

func (f *fakeOracle) EvaluateAnswer(_ context.Context, question models.Question, _ string) (*models.AnswerEvaluation, error) {
	if f.failAfter >= 0 && len(f.calls) >= f.failAfter {
		return nil, errors.New("oracle unavailable")
	}
	f.calls = append(f.calls, question.ID)

	score := f.scores[question.ID]
	return &models.AnswerEvaluation{Score: score}, nil
}

func interviewFixture(n int) ([]models.Question, []models.SubmittedAnswer) {
	questions := make([]models.Question, 0, n)
	answers := make([]models.SubmittedAnswer, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, models.Question{
			ID:              i,
			Skill:           fmt.Sprintf("skill-%d", i),
			PromptText:      fmt.Sprintf("question %d", i),
			ReferenceAnswer: "reference",
			Keywords:        []string{"keyword"},
		})
		answers = append(answers, models.SubmittedAnswer{
			QuestionID: i,
			Text:       fmt.Sprintf("answer %d", i),
		})
	}
	return questions, answers
}

func TestEvaluateBatch_OrderPreserved(t *testing.T) {
	questions, answers := interviewFixture(5)
	oracle := &fakeOracle{
		scores:    map[int]int{1: 80, 2: 75, 3: 60, 4: 90, 5: 70},
		failAfter: -1,
	}

	evals, err := NewEvaluator(oracle).EvaluateBatch(context.Background(), questions, answers)
	require.NoError(t, err)
	require.Len(t, evals, 5)

	// Strictly sequential, in question order
	assert.Equal(t, []int{1, 2, 3, 4, 5}, oracle.calls)

	for i, eval := range evals {
		assert.Equal(t, questions[i].ID, eval.QuestionID)
		assert.Equal(t, questions[i].Skill, eval.Skill)
	}
	assert.Equal(t, 80, evals[0].Score)
	assert.Equal(t, 70, evals[4].Score)
}

func TestEvaluateBatch_ShapeMismatchBeforeAnyCall(t *testing.T) {
	questions, answers := interviewFixture(5)
	oracle := &fakeOracle{failAfter: -1}

	evals, err := NewEvaluator(oracle).EvaluateBatch(context.Background(), questions, answers[:3])
	require.Error(t, err)
	assert.Nil(t, evals)
	assert.Empty(t, oracle.calls)

	var ce *utils.CustomError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, utils.KindShapeMismatch, ce.Kind)
}

func TestEvaluateBatch_FailureDiscardsPartials(t *testing.T) {
	questions, answers := interviewFixture(5)
	oracle := &fakeOracle{
		scores:    map[int]int{1: 80, 2: 75},
		failAfter: 2,
	}

	evals, err := NewEvaluator(oracle).EvaluateBatch(context.Background(), questions, answers)
	require.Error(t, err)
	assert.Nil(t, evals)

	// The first two calls happened, nothing after the failure
	assert.Equal(t, []int{1, 2}, oracle.calls)

	var ce *utils.CustomError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, utils.KindOracle, ce.Kind)
}

func TestEvaluateBatch_EmptyBatch(t *testing.T) {
	oracle := &fakeOracle{failAfter: -1}

	evals, err := NewEvaluator(oracle).EvaluateBatch(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, evals)
}
