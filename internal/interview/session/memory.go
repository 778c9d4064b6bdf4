package session

import (
	"context"
	"sync"
	"time"

	"hirebridge/pkg/models"
)

const sweepInterval = 5 * time.Minute

type memoryEntry struct {
	questions    []models.Question
	verification *models.VerificationResult
	expiresAt    time.Time
}

// MemoryStore is the default in-process session store. Entries expire
// after the TTL; expired entries are dropped on read and swept
// periodically so an abandoned session cannot pin memory forever.
type MemoryStore struct {
	ttl     time.Duration
	entries map[string]*memoryEntry
	mu      sync.Mutex
	ticker  *time.Ticker
	done    chan struct{}
}

// NewMemoryStore creates an in-memory store with the given TTL
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]*memoryEntry),
		ticker:  time.NewTicker(sweepInterval),
		done:    make(chan struct{}),
	}

	go s.sweepRoutine()

	return s
}

// PutQuestions caches the full question set for a session
func (s *MemoryStore) PutQuestions(_ context.Context, sessionID string, questions []models.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.liveEntry(sessionID)
	entry.questions = append([]models.Question(nil), questions...)
	entry.expiresAt = time.Now().Add(s.ttl)
	return nil
}

// GetQuestions retrieves the cached question set, or ErrNotFound
func (s *MemoryStore) GetQuestions(_ context.Context, sessionID string) ([]models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.lookup(sessionID)
	if !ok || entry.questions == nil {
		return nil, ErrNotFound
	}
	return append([]models.Question(nil), entry.questions...), nil
}

// PutVerification caches the verification result for a session
func (s *MemoryStore) PutVerification(_ context.Context, sessionID string, result *models.VerificationResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.liveEntry(sessionID)
	copied := *result
	entry.verification = &copied
	entry.expiresAt = time.Now().Add(s.ttl)
	return nil
}

// GetVerification retrieves a cached verification result, or ErrNotFound
func (s *MemoryStore) GetVerification(_ context.Context, sessionID string) (*models.VerificationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.lookup(sessionID)
	if !ok || entry.verification == nil {
		return nil, ErrNotFound
	}

	result := *entry.verification
	return &result, nil
}

// Close stops the background sweeper
func (s *MemoryStore) Close() error {
	s.ticker.Stop()
	close(s.done)
	return nil
}

// liveEntry returns the session entry, replacing an expired one.
// Callers hold the lock.
func (s *MemoryStore) liveEntry(sessionID string) *memoryEntry {
	if entry, ok := s.lookup(sessionID); ok {
		return entry
	}
	entry := &memoryEntry{}
	s.entries[sessionID] = entry
	return entry
}

// lookup returns a non-expired entry. Callers hold the lock.
func (s *MemoryStore) lookup(sessionID string) (*memoryEntry, bool) {
	entry, ok := s.entries[sessionID]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.entries, sessionID)
		return nil, false
	}
	return entry, true
}

func (s *MemoryStore) sweepRoutine() {
	for {
		select {
		case <-s.ticker.C:
			s.sweep()
		case <-s.done:
			return
		}
	}
}

func (s *MemoryStore) sweep() {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, id)
		}
	}
}
