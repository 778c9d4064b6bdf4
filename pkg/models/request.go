package models

// AnalyzeProfileRequest represents the request payload for profile analysis
type AnalyzeProfileRequest struct {
	Profile CandidateProfile `json:"profile" validate:"required"`
}

// GenerateQuestionsRequest represents the request payload for question
// generation. At most five skills are fed to the oracle.
type GenerateQuestionsRequest struct {
	Skills         []string       `json:"skills" validate:"required,min=1,max=5,dive,min=1"`
	ExperienceTier ExperienceTier `json:"experience_tier" validate:"omitempty,oneof=junior mid senior"`
}

// SubmittedAnswer is one candidate answer keyed to its question
type SubmittedAnswer struct {
	QuestionID int    `json:"question_id"`
	Text       string `json:"text"`
}

// EvaluateAnswersRequest represents the request payload for batch answer
// evaluation. Questions and answers must line up index-for-index.
type EvaluateAnswersRequest struct {
	SessionID string            `json:"session_id" validate:"required"`
	Questions []Question        `json:"questions" validate:"required,min=1"`
	Answers   []SubmittedAnswer `json:"answers" validate:"required,min=1"`
}

// LoadCatalogRequest represents the request payload for a catalog reload
type LoadCatalogRequest struct {
	Source string `json:"source,omitempty"`
}

// MatchJobsRequest represents the request payload for job matching
type MatchJobsRequest struct {
	CandidateSkills []string            `json:"candidate_skills" validate:"required,min=1"`
	Verification    *VerificationResult `json:"verification" validate:"required"`
	TopK            int                 `json:"top_k,omitempty" validate:"omitempty,min=1"`
}

// DispatchApplicationsRequest represents the request payload for sending
// applications to the matched companies
type DispatchApplicationsRequest struct {
	Candidate   CandidateInfo `json:"candidate" validate:"required"`
	MatchedJobs []MatchedJob  `json:"matched_jobs" validate:"required,min=1"`
	ResumeText  string        `json:"resume_text,omitempty"`
}
