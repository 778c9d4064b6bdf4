package matcher

import (
	"sort"
	"strings"

	"hirebridge/internal/catalog"
	"hirebridge/internal/config"
	"hirebridge/internal/logging"
	"hirebridge/pkg/models"
	"hirebridge/pkg/utils"
)

// ReasonVerificationFailed is reported when an unverified candidate asks
// for matches
const ReasonVerificationFailed = "verification_failed"

// Matcher scores catalog postings against a candidate's skills and
// returns the ranked top-K above the eligibility floor.
type Matcher struct {
	catalog  *catalog.Catalog
	logger   logging.Logger
	minScore float64
	topK     int
}

// New creates a matcher over the given catalog
func New(cfg *config.Config, cat *catalog.Catalog) *Matcher {
	return &Matcher{
		catalog:  cat,
		logger:   logging.GetGlobalLogger(),
		minScore: cfg.Matcher.MinScore,
		topK:     cfg.Matcher.DefaultTopK,
	}
}

// Match ranks catalog postings for a verified candidate. Unverified
// candidates get an empty result with a reason immediately: no score is
// ever computed for them, which is a business invariant rather than an
// optimization. The verdict is recomputed from the average score against
// the fixed threshold; the submitted IsVerified flag is never trusted,
// so a forged flag cannot open the gate. An empty catalog that has never
// been loaded is an error, distinct from the normal zero-matches result.
func (m *Matcher) Match(candidateSkills []string, verification *models.VerificationResult, topK int) (*models.MatchResult, error) {
	if verification == nil {
		return nil, utils.NewValidationError("verification result is required")
	}

	if verification.AverageScore < models.PassThreshold {
		return &models.MatchResult{
			MatchedJobs:  []models.MatchedJob{},
			TotalMatches: 0,
			Reason:       ReasonVerificationFailed,
			Message:      "Candidate has not passed skill verification; complete the interview before matching jobs",
		}, nil
	}

	if !m.catalog.Loaded() || m.catalog.Count() == 0 {
		return nil, utils.NewCatalogEmptyError()
	}

	if topK <= 0 {
		topK = m.topK
	}

	folded := foldSkills(candidateSkills)

	var eligible []models.MatchedJob
	for _, job := range m.catalog.All() {
		score, matched := scoreJob(job, folded)
		if score >= m.minScore {
			eligible = append(eligible, models.MatchedJob{
				Job:           job,
				MatchScore:    score,
				MatchedSkills: matched,
			})
		}
	}

	// Stable sort keeps catalog insertion order for equal scores, so
	// identical inputs always rank identically
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].MatchScore > eligible[j].MatchScore
	})

	total := len(eligible)
	if len(eligible) > topK {
		eligible = eligible[:topK]
	}
	if eligible == nil {
		eligible = []models.MatchedJob{}
	}

	m.logger.Debug("Job match computed", map[string]interface{}{
		"candidate_skills": len(candidateSkills),
		"total_matches":    total,
		"returned":         len(eligible),
	})

	return &models.MatchResult{
		MatchedJobs:  eligible,
		TotalMatches: total,
	}, nil
}

// scoreJob computes the fraction of the job's required skills matched by
// any candidate skill, scaled to [0,100]. The matched-skills list keeps
// the job's original casing and order. A job with no required skills
// scores zero and never matches.
func scoreJob(job models.JobPosting, candidateSkills []string) (float64, []string) {
	if len(job.RequiredSkills) == 0 {
		return 0, nil
	}

	var matched []string
	for _, required := range job.RequiredSkills {
		if skillMatches(strings.ToLower(required), candidateSkills) {
			matched = append(matched, required)
		}
	}

	score := float64(len(matched)) / float64(len(job.RequiredSkills)) * 100
	return score, matched
}

// skillMatches is the bidirectional substring containment test. It is
// deliberately permissive so naming variants like "JS" and "JavaScript"
// partially match; the cost is false positives such as "Java" matching
// "JavaScript". That trade-off is intentional and documented, not a bug
// to be fixed silently.
func skillMatches(required string, candidateSkills []string) bool {
	for _, candidate := range candidateSkills {
		if candidate == "" {
			continue
		}
		if strings.Contains(required, candidate) || strings.Contains(candidate, required) {
			return true
		}
	}
	return false
}

func foldSkills(skills []string) []string {
	folded := make([]string, 0, len(skills))
	for _, s := range skills {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			folded = append(folded, s)
		}
	}
	return folded
}
