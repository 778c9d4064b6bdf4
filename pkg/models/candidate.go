package models

// ExperienceTier buckets a candidate by estimated years of experience
type ExperienceTier string

const (
	TierJunior ExperienceTier = "junior"
	TierMid    ExperienceTier = "mid"
	TierSenior ExperienceTier = "senior"
)

// CandidateProfile represents the structured profile parsed from a resume
type CandidateProfile struct {
	Identity   *CandidateIdentity `json:"identity,omitempty"`
	Skills     *SkillSet          `json:"skills,omitempty"`
	Experience []ExperienceEntry  `json:"experience,omitempty"`
	Projects   []ProjectEntry     `json:"projects,omitempty"`
	Education  []EducationEntry   `json:"education,omitempty"`
}

// CandidateIdentity holds the contact block of a profile
type CandidateIdentity struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// SkillSet groups declared skills into three disjoint containers
type SkillSet struct {
	Technical []string `json:"technical,omitempty"`
	Soft      []string `json:"soft,omitempty"`
	Languages []string `json:"languages,omitempty"`
}

// ExperienceEntry is a single work history item
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

// ProjectEntry is a single project item from the profile
type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// EducationEntry is a single education item from the profile
type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
	Year        string `json:"year,omitempty"`
}

// SkillProfile is the normalized output of profile analysis: the unioned
// skill containers, the derived experience tier and the roles held so far
type SkillProfile struct {
	Skills         SkillSet       `json:"skills"`
	ExperienceTier ExperienceTier `json:"experience_tier"`
	JobRoles       []string       `json:"job_roles"`
	EstimatedYears float64        `json:"estimated_years"`
}

// CandidateInfo is the contact subset carried through job dispatch
type CandidateInfo struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone,omitempty"`
}
