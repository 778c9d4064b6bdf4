package profile

import (
	"strings"

	"hirebridge/internal/logging"
	"hirebridge/pkg/models"
	"hirebridge/pkg/utils"
)

// Experience tier thresholds in estimated years
const (
	yearsPerEntry   = 1.5
	midTierYears    = 3.0
	seniorTierYears = 7.0
)

// Extractor derives a normalized skill profile from a structured
// candidate profile
type Extractor struct {
	logger logging.Logger
}

// NewExtractor creates a new profile extractor
func NewExtractor() *Extractor {
	return &Extractor{
		logger: logging.GetGlobalLogger(),
	}
}

// Extract normalizes the candidate's skills, derives the experience tier
// and collects the roles held so far. Declared skills are unioned with
// skills mined from free-text descriptions; mining is additive only and
// never removes or rewrites a declared skill. Missing optional fields
// default to empty containers.
func (e *Extractor) Extract(p *models.CandidateProfile) (*models.SkillProfile, error) {
	if p == nil || (p.Identity == nil && p.Skills == nil) {
		return nil, utils.NewValidationError("profile must contain an identity or skills block")
	}

	declared := p.Skills
	if declared == nil {
		declared = &models.SkillSet{}
	}

	minedTech, minedLang := e.mineSkills(p)

	result := &models.SkillProfile{
		Skills: models.SkillSet{
			Technical: dedupe(append(append([]string{}, declared.Technical...), minedTech...)),
			Soft:      dedupe(declared.Soft),
			Languages: dedupe(append(append([]string{}, declared.Languages...), minedLang...)),
		},
		JobRoles: e.jobRoles(p),
	}

	// Years are a coarse heuristic: each recorded experience entry counts
	// as one and a half years. Zero entries is a valid junior profile.
	result.EstimatedYears = float64(len(p.Experience)) * yearsPerEntry
	result.ExperienceTier = tierForYears(result.EstimatedYears)

	e.logger.Debug("Profile extracted", map[string]interface{}{
		"technical_skills": len(result.Skills.Technical),
		"tier":             result.ExperienceTier,
		"estimated_years":  result.EstimatedYears,
	})

	return result, nil
}

// mineSkills scans free-text experience and project descriptions for
// known technology and language names
func (e *Extractor) mineSkills(p *models.CandidateProfile) (tech, lang []string) {
	var corpus strings.Builder
	for _, exp := range p.Experience {
		corpus.WriteString(exp.Title)
		corpus.WriteString(" ")
		corpus.WriteString(exp.Description)
		corpus.WriteString(" ")
	}
	for _, proj := range p.Projects {
		corpus.WriteString(proj.Name)
		corpus.WriteString(" ")
		corpus.WriteString(proj.Description)
		corpus.WriteString(" ")
		corpus.WriteString(strings.Join(proj.Technologies, " "))
		corpus.WriteString(" ")
	}

	haystack := strings.ToLower(corpus.String())
	if haystack == "" {
		return nil, nil
	}

	for _, name := range techVocabulary {
		if strings.Contains(haystack, strings.ToLower(name)) {
			if spokenLanguages[name] {
				lang = append(lang, name)
			} else {
				tech = append(tech, name)
			}
		}
	}

	return tech, lang
}

// jobRoles collects distinct experience titles in first-seen order
func (e *Extractor) jobRoles(p *models.CandidateProfile) []string {
	var roles []string
	for _, exp := range p.Experience {
		title := strings.TrimSpace(exp.Title)
		if title == "" {
			continue
		}
		if !utils.Contains(roles, title) {
			roles = append(roles, title)
		}
	}
	return roles
}

func tierForYears(years float64) models.ExperienceTier {
	switch {
	case years < midTierYears:
		return models.TierJunior
	case years < seniorTierYears:
		return models.TierMid
	default:
		return models.TierSenior
	}
}

// dedupe collapses duplicates by exact string match (not case-folded),
// keeping first-seen order
func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if !utils.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
