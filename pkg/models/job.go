package models

import "time"

// JobPosting represents one job loaded from the catalog source. IDs are
// assigned sequentially (1-based) at load time and are only stable within
// a single catalog generation.
type JobPosting struct {
	ID             int      `json:"id"`
	CompanyName    string   `json:"company_name"`
	Role           string   `json:"role"`
	RequiredSkills []string `json:"required_skills"`
	CompanyEmail   string   `json:"company_email"`
	Description    string   `json:"description"`
	Location       string   `json:"location"`
	SalaryRange    string   `json:"salary_range"`
}

// MatchedJob pairs a posting with its computed similarity against a
// candidate's skills. Ephemeral; recomputed per match request.
type MatchedJob struct {
	Job           JobPosting `json:"job"`
	MatchScore    float64    `json:"match_score"`
	MatchedSkills []string   `json:"matched_skills"`
}

// MatchResult is the ranked outcome of one match request. TotalMatches
// counts every job above the floor and may exceed len(MatchedJobs) when
// a top-K limit applies.
type MatchResult struct {
	MatchedJobs  []MatchedJob `json:"matched_jobs"`
	TotalMatches int          `json:"total_matches"`
	Reason       string       `json:"reason,omitempty"`
	Message      string       `json:"message,omitempty"`
}

// Application dispatch statuses
const (
	DispatchStatusSent   = "sent"
	DispatchStatusFailed = "failed"
)

// ApplicationRecord is the terminal status of one dispatched application
type ApplicationRecord struct {
	CompanyName  string    `json:"company_name"`
	JobRole      string    `json:"job_role"`
	CompanyEmail string    `json:"company_email"`
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
	ErrorDetail  string    `json:"error_detail,omitempty"`
}

// DispatchSummary aggregates the terminal statuses of a dispatch batch
type DispatchSummary struct {
	TotalSent   int `json:"total_sent"`
	TotalFailed int `json:"total_failed"`
}
