package llm

import (
	"context"
	"fmt"
	"sync"

	"hirebridge/internal/config"
	"hirebridge/internal/logging"
	"hirebridge/pkg/models"
	"hirebridge/pkg/utils"
)

// Manager manages the oracle provider and its lifecycle
type Manager struct {
	config   *config.Config
	factory  *Factory
	provider Provider
	logger   logging.Logger
	mu       sync.RWMutex
	healthy  bool
}

// NewManager creates a new oracle manager instance
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		config:  cfg,
		factory: NewFactory(cfg),
		logger:  logging.GetGlobalLogger(),
	}
}

// Start initializes the manager and creates the provider
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.WithField("provider", m.config.LLM.Provider).Info("Starting oracle manager")

	ctx, cancel := context.WithTimeout(context.Background(), m.config.LLM.Timeout)
	defer cancel()

	provider, err := m.factory.CreateProvider(ctx)
	if err != nil {
		return fmt.Errorf("failed to create oracle provider: %w", err)
	}

	m.provider = provider

	if err := m.provider.IsHealthy(ctx); err != nil {
		m.logger.WithField("error", err.Error()).Warn("Oracle provider health check failed - interview features will be disabled")
		m.healthy = false
		// The server still starts; interview endpoints fail with an oracle error
	} else {
		m.healthy = true
		m.logger.WithField("provider", m.provider.GetProviderName()).Info("Oracle manager started successfully")
	}

	return nil
}

// Stop shuts down the manager
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Stopping oracle manager")
	m.provider = nil
	m.healthy = false
	return nil
}

// GenerateQuestions asks the oracle for interview questions and enforces
// the fixed question count: an over-delivering oracle is truncated, an
// under-delivering one is accepted and logged as degraded.
func (m *Manager) GenerateQuestions(ctx context.Context, skills []string, tier models.ExperienceTier) ([]models.Question, error) {
	provider, err := m.activeProvider()
	if err != nil {
		return nil, err
	}

	questions, err := provider.GenerateQuestions(ctx, skills, tier)
	if err != nil {
		return nil, err
	}

	if len(questions) > models.QuestionCount {
		questions = questions[:models.QuestionCount]
	}
	if len(questions) < models.QuestionCount {
		m.logger.Warn("Oracle returned fewer questions than requested", map[string]interface{}{
			"requested": models.QuestionCount,
			"received":  len(questions),
			"provider":  provider.GetProviderName(),
		})
	}

	// IDs are assigned here so truncation never leaves gaps
	for i := range questions {
		questions[i].ID = i + 1
	}

	return questions, nil
}

// EvaluateAnswer asks the oracle to score a single answer
func (m *Manager) EvaluateAnswer(ctx context.Context, question models.Question, answer string) (*models.AnswerEvaluation, error) {
	provider, err := m.activeProvider()
	if err != nil {
		return nil, err
	}

	return provider.EvaluateAnswer(ctx, question, answer)
}

func (m *Manager) activeProvider() (Provider, error) {
	m.mu.RLock()
	provider := m.provider
	healthy := m.healthy
	m.mu.RUnlock()

	if provider == nil {
		return nil, utils.NewOracleError("oracle manager not started or provider not available")
	}

	if !healthy {
		return nil, utils.NewOracleError("oracle provider is not available - check API key configuration (set LLM_API_KEY environment variable)")
	}

	return provider, nil
}

// IsHealthy checks if the manager and provider are healthy
func (m *Manager) IsHealthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.healthy && m.provider != nil
}

// GetProviderName returns the name of the current oracle provider
func (m *Manager) GetProviderName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.provider != nil {
		return m.provider.GetProviderName()
	}
	return "none"
}

// CheckHealth performs a health check on the oracle provider
func (m *Manager) CheckHealth(ctx context.Context) error {
	m.mu.RLock()
	provider := m.provider
	m.mu.RUnlock()

	if provider == nil {
		return fmt.Errorf("oracle provider not available")
	}

	err := provider.IsHealthy(ctx)

	m.mu.Lock()
	m.healthy = (err == nil)
	m.mu.Unlock()

	return err
}
