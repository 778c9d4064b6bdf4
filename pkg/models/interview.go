package models

// QuestionCount is the fixed number of questions generated per interview
// session. Oracles returning more are truncated; fewer is degraded but
// non-fatal.
const QuestionCount = 5

// PassThreshold is the global verification threshold. It is deliberately
// not configurable per request so a client can never supply a favorable
// cutoff.
const PassThreshold = 70

// QuestionDifficulty is the difficulty bucket assigned by the oracle
type QuestionDifficulty string

const (
	DifficultyEasy   QuestionDifficulty = "easy"
	DifficultyMedium QuestionDifficulty = "medium"
	DifficultyHard   QuestionDifficulty = "hard"
)

// Question is one interview question produced by the question oracle.
// ReferenceAnswer never crosses to the candidate-facing surface; outbound
// shapes use QuestionView instead.
type Question struct {
	ID              int                `json:"id"`
	Skill           string             `json:"skill"`
	PromptText      string             `json:"question"`
	ReferenceAnswer string             `json:"reference_answer"`
	Difficulty      QuestionDifficulty `json:"difficulty"`
	Keywords        []string           `json:"keywords"`
}

// QuestionView is the candidate-facing projection of a Question
type QuestionView struct {
	ID         int                `json:"id"`
	Skill      string             `json:"skill"`
	PromptText string             `json:"question"`
	Difficulty QuestionDifficulty `json:"difficulty"`
}

// View strips the server-side fields from a question
func (q Question) View() QuestionView {
	return QuestionView{
		ID:         q.ID,
		Skill:      q.Skill,
		PromptText: q.PromptText,
		Difficulty: q.Difficulty,
	}
}

// Subscores is the four-dimension rubric for a single answer. Each
// dimension has its own ceiling; the total score is always their sum.
type Subscores struct {
	Accuracy     int `json:"accuracy"`     // 0-40
	Completeness int `json:"completeness"` // 0-30
	Clarity      int `json:"clarity"`      // 0-20
	Keywords     int `json:"keywords"`     // 0-10
}

// Sum returns the total rubric score
func (s Subscores) Sum() int {
	return s.Accuracy + s.Completeness + s.Clarity + s.Keywords
}

// AnswerEvaluation is the validated rubric evaluation of one answer
type AnswerEvaluation struct {
	QuestionID   int       `json:"question_id"`
	Skill        string    `json:"skill"`
	Score        int       `json:"score"`
	Subscores    Subscores `json:"subscores"`
	Verdict      string    `json:"verdict"` // "pass" or "fail"
	Feedback     string    `json:"feedback"`
	Strengths    []string  `json:"strengths,omitempty"`
	Improvements []string  `json:"improvements,omitempty"`
}

// Passed reports whether this single answer met the threshold
func (e AnswerEvaluation) Passed() bool {
	return e.Score >= PassThreshold
}

// VerificationResult is the aggregated pass/fail verdict over a full
// interview. IsVerified is derived state and is recomputed on every
// aggregation, never taken from caller input.
type VerificationResult struct {
	AverageScore int  `json:"average_score"`
	IsVerified   bool `json:"is_verified"`
	PassedCount  int  `json:"passed_count"`
	Threshold    int  `json:"threshold"`
}
