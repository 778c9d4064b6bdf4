package providers

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"hirebridge/pkg/models"
)

// Rubric dimension ceilings
const (
	maxAccuracy     = 40
	maxCompleteness = 30
	maxClarity      = 20
	maxKeywords     = 10
)

// stripCodeFences removes markdown code fences the model sometimes wraps
// around its JSON output
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(s, "```")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}

// parseQuestionsPayload validates the oracle's question output. The
// payload is untrusted: a question missing its reference answer or
// keywords makes the whole payload invalid rather than producing a
// half-usable question.
func parseQuestionsPayload(raw string) ([]models.Question, error) {
	text := stripCodeFences(raw)
	if !gjson.Valid(text) {
		return nil, fmt.Errorf("oracle returned invalid JSON")
	}

	root := gjson.Parse(text)
	items := root
	if root.IsObject() {
		items = root.Get("questions")
	}
	if !items.IsArray() {
		return nil, fmt.Errorf("oracle response is not a question array")
	}

	var questions []models.Question
	var parseErr error

	items.ForEach(func(_, item gjson.Result) bool {
		skill := item.Get("skill").String()
		prompt := item.Get("question").String()
		reference := item.Get("reference_answer").String()

		if prompt == "" {
			parseErr = fmt.Errorf("question %d has no question text", len(questions)+1)
			return false
		}
		if reference == "" {
			parseErr = fmt.Errorf("question %d has no reference answer", len(questions)+1)
			return false
		}

		var keywords []string
		for _, kw := range item.Get("keywords").Array() {
			if v := strings.TrimSpace(kw.String()); v != "" {
				keywords = append(keywords, v)
			}
		}
		if len(keywords) == 0 {
			parseErr = fmt.Errorf("question %d has no keywords", len(questions)+1)
			return false
		}

		questions = append(questions, models.Question{
			ID:              len(questions) + 1,
			Skill:           skill,
			PromptText:      prompt,
			ReferenceAnswer: reference,
			Difficulty:      parseDifficulty(item.Get("difficulty").String()),
			Keywords:        keywords,
		})
		return true
	})

	if parseErr != nil {
		return nil, parseErr
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("oracle returned no questions")
	}

	return questions, nil
}

func parseDifficulty(s string) models.QuestionDifficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return models.DifficultyEasy
	case "hard":
		return models.DifficultyHard
	default:
		return models.DifficultyMedium
	}
}

// parseEvaluationPayload validates the oracle's rubric output. All four
// subscores must be present and numeric; anything else rejects the whole
// evaluation. Silently defaulting a missing score would corrupt the
// verification gate, so this fails closed. In-range clamping is applied
// per dimension and the total is always recomputed as the sum.
func parseEvaluationPayload(raw string, question models.Question) (*models.AnswerEvaluation, error) {
	text := stripCodeFences(raw)
	if !gjson.Valid(text) {
		return nil, fmt.Errorf("oracle returned invalid JSON")
	}

	doc := gjson.Parse(text)

	accuracy, err := requireScore(doc, "subscores.accuracy", maxAccuracy)
	if err != nil {
		return nil, err
	}
	completeness, err := requireScore(doc, "subscores.completeness", maxCompleteness)
	if err != nil {
		return nil, err
	}
	clarity, err := requireScore(doc, "subscores.clarity", maxClarity)
	if err != nil {
		return nil, err
	}
	keywords, err := requireScore(doc, "subscores.keywords", maxKeywords)
	if err != nil {
		return nil, err
	}

	subscores := models.Subscores{
		Accuracy:     accuracy,
		Completeness: completeness,
		Clarity:      clarity,
		Keywords:     keywords,
	}

	eval := &models.AnswerEvaluation{
		QuestionID: question.ID,
		Skill:      question.Skill,
		Score:      subscores.Sum(),
		Subscores:  subscores,
		Feedback:   doc.Get("feedback").String(),
	}

	for _, s := range doc.Get("strengths").Array() {
		if v := strings.TrimSpace(s.String()); v != "" {
			eval.Strengths = append(eval.Strengths, v)
		}
	}
	for _, s := range doc.Get("improvements").Array() {
		if v := strings.TrimSpace(s.String()); v != "" {
			eval.Improvements = append(eval.Improvements, v)
		}
	}

	if eval.Passed() {
		eval.Verdict = "pass"
	} else {
		eval.Verdict = "fail"
	}

	return eval, nil
}

// requireScore reads a numeric rubric field, clamped into [0, max].
// A missing or non-numeric field is an error, never a default.
func requireScore(doc gjson.Result, path string, max int) (int, error) {
	field := doc.Get(path)
	if !field.Exists() {
		return 0, fmt.Errorf("oracle response missing %s", path)
	}
	if field.Type != gjson.Number {
		return 0, fmt.Errorf("oracle response field %s is not numeric", path)
	}

	score := int(field.Float())
	if score < 0 {
		score = 0
	}
	if score > max {
		score = max
	}
	return score, nil
}
