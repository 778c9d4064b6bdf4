package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"hirebridge/internal/config"
	"hirebridge/pkg/models"
)

// RedisStore keeps session state in Redis so the cache survives process
// restarts and can be shared across instances. TTL is enforced by Redis
// key expiry.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed session store
func NewRedisStore(cfg *config.Config) (*RedisStore, error) {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	opts.DB = cfg.Redis.DB
	opts.DialTimeout = cfg.Redis.Timeout
	opts.ReadTimeout = cfg.Redis.Timeout
	opts.WriteTimeout = cfg.Redis.Timeout

	return &RedisStore{
		client: redis.NewClient(opts),
		ttl:    cfg.Cache.TTL,
	}, nil
}

// PutQuestions caches the full question set for a session
func (s *RedisStore) PutQuestions(ctx context.Context, sessionID string, questions []models.Question) error {
	return s.put(ctx, s.questionsKey(sessionID), questions)
}

// GetQuestions retrieves the cached question set, or ErrNotFound
func (s *RedisStore) GetQuestions(ctx context.Context, sessionID string) ([]models.Question, error) {
	var questions []models.Question
	if err := s.get(ctx, s.questionsKey(sessionID), &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// PutVerification caches the verification result for a session
func (s *RedisStore) PutVerification(ctx context.Context, sessionID string, result *models.VerificationResult) error {
	return s.put(ctx, s.verificationKey(sessionID), result)
}

// GetVerification retrieves a cached verification result, or ErrNotFound
func (s *RedisStore) GetVerification(ctx context.Context, sessionID string) (*models.VerificationResult, error) {
	var result models.VerificationResult
	if err := s.get(ctx, s.verificationKey(sessionID), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Ping tests the Redis connection
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) put(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal session entry: %w", err)
	}

	if err := s.client.Set(ctx, key, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache session entry: %w", err)
	}
	return nil
}

func (s *RedisStore) get(ctx context.Context, key string, out interface{}) error {
	payload, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get session entry: %w", err)
	}

	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return fmt.Errorf("failed to unmarshal session entry: %w", err)
	}
	return nil
}

func (s *RedisStore) questionsKey(sessionID string) string {
	return fmt.Sprintf("interview:questions:%s", sessionID)
}

func (s *RedisStore) verificationKey(sessionID string) string {
	return fmt.Sprintf("interview:verification:%s", sessionID)
}
