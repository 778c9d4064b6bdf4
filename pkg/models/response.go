package models

import "time"

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewErrorResponse builds the standard error envelope
func NewErrorResponse(code, message, requestID string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now(),
	}
}

// AnalyzeProfileResponse is the outcome of profile analysis
type AnalyzeProfileResponse struct {
	Success   bool          `json:"success"`
	Profile   *SkillProfile `json:"profile,omitempty"`
	RequestID string        `json:"request_id"`
}

// GenerateQuestionsResponse carries candidate-facing questions only; the
// full Question objects (with reference answers) are returned to the
// caller's server-side session, never to the candidate surface.
type GenerateQuestionsResponse struct {
	Success   bool           `json:"success"`
	SessionID string         `json:"session_id"`
	Questions []QuestionView `json:"questions"`
	RequestID string         `json:"request_id"`
}

// AnswerFeedback is the candidate-facing slice of one evaluation
type AnswerFeedback struct {
	QuestionID   int      `json:"question_id"`
	Skill        string   `json:"skill"`
	Score        int      `json:"score"`
	Verdict      string   `json:"verdict"`
	Feedback     string   `json:"feedback"`
	Strengths    []string `json:"strengths,omitempty"`
	Improvements []string `json:"improvements,omitempty"`
}

// EvaluateAnswersResponse is the aggregated verdict over a full interview
type EvaluateAnswersResponse struct {
	Success      bool                `json:"success"`
	SessionID    string              `json:"session_id"`
	Verification *VerificationResult `json:"verification"`
	Feedback     []AnswerFeedback    `json:"feedback"`
	RequestID    string              `json:"request_id"`
}

// LoadCatalogResponse reports how many postings the reload published
type LoadCatalogResponse struct {
	Success   bool   `json:"success"`
	Count     int    `json:"count"`
	RequestID string `json:"request_id"`
}

// MatchJobsResponse wraps the ranked match result
type MatchJobsResponse struct {
	Success   bool         `json:"success"`
	Result    *MatchResult `json:"result"`
	RequestID string       `json:"request_id"`
}

// DispatchApplicationsResponse reports the terminal status of every
// application in the batch plus the sent/failed summary
type DispatchApplicationsResponse struct {
	Success   bool                `json:"success"`
	Records   []ApplicationRecord `json:"records"`
	Summary   DispatchSummary     `json:"summary"`
	RequestID string              `json:"request_id"`
}
