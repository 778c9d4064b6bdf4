package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirebridge/pkg/models"
)

func questionFixture() []models.Question {
	return []models.Question{
		{ID: 1, Skill: "Go", PromptText: "Explain goroutines", ReferenceAnswer: "Lightweight threads", Keywords: []string{"scheduler"}},
		{ID: 2, Skill: "SQL", PromptText: "Explain indexes", ReferenceAnswer: "B-tree lookup structures", Keywords: []string{"b-tree"}},
	}
}

func TestMemoryStore_QuestionsRoundTrip(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.PutQuestions(ctx, "session_1", questionFixture()))

	got, err := store.GetQuestions(ctx, "session_1")
	require.NoError(t, err)
	assert.Equal(t, questionFixture(), got)
}

func TestMemoryStore_VerificationRoundTrip(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Close()
	ctx := context.Background()

	result := &models.VerificationResult{
		AverageScore: 75,
		IsVerified:   true,
		PassedCount:  4,
		Threshold:    models.PassThreshold,
	}
	require.NoError(t, store.PutVerification(ctx, "session_1", result))

	got, err := store.GetVerification(ctx, "session_1")
	require.NoError(t, err)
	assert.Equal(t, result, got)
}

func TestMemoryStore_MissingSession(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Close()
	ctx := context.Background()

	_, err := store.GetQuestions(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.GetVerification(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_QuestionsWithoutVerification(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.PutQuestions(ctx, "session_1", questionFixture()))

	_, err := store.GetVerification(ctx, "session_1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore(20 * time.Millisecond)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.PutQuestions(ctx, "session_1", questionFixture()))

	time.Sleep(50 * time.Millisecond)

	_, err := store.GetQuestions(ctx, "session_1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.PutQuestions(ctx, "session_1", questionFixture()))

	first, err := store.GetQuestions(ctx, "session_1")
	require.NoError(t, err)
	first[0].PromptText = "mutated"

	second, err := store.GetQuestions(ctx, "session_1")
	require.NoError(t, err)
	assert.Equal(t, "Explain goroutines", second[0].PromptText)
}

func TestMemoryStore_SessionsIsolated(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.PutQuestions(ctx, "session_1", questionFixture()))

	_, err := store.GetQuestions(ctx, "session_2")
	assert.ErrorIs(t, err, ErrNotFound)
}
