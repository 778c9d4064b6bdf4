package providers

import (
	"fmt"
	"strings"

	"hirebridge/pkg/models"
)

// buildQuestionsPrompt creates the prompt asking the oracle for interview
// questions. The oracle must return reference answers and rubric keywords
// with every question; both stay server-side.
func buildQuestionsPrompt(skills []string, tier models.ExperienceTier, count int) string {
	if tier == "" {
		tier = models.TierMid
	}

	return fmt.Sprintf(`You are a technical interviewer. Generate exactly %d interview questions for a %s-level candidate covering these skills: %s.

Return ONLY a valid JSON array, no additional text or explanation. Each element must have exactly these fields:

{
  "skill": "string - the skill this question targets",
  "question": "string - the question text shown to the candidate",
  "reference_answer": "string - a model answer used for grading, never shown to the candidate",
  "difficulty": "string - one of: easy, medium, hard",
  "keywords": ["array of strings - terms a strong answer should mention"]
}

IMPORTANT RULES:
1. Return ONLY the JSON array, nothing before or after it
2. Every question must include a non-empty reference_answer and at least one keyword
3. Spread the questions across the listed skills
4. Match the difficulty to a %s-level candidate`,
		count, tier, strings.Join(skills, ", "), tier)
}

// buildEvaluationPrompt creates the prompt asking the oracle to grade one
// answer on the four-dimension rubric.
func buildEvaluationPrompt(question models.Question, answer string) string {
	return fmt.Sprintf(`You are grading a technical interview answer. Score the candidate's answer against the reference answer and keywords.

QUESTION: %s

REFERENCE ANSWER: %s

EXPECTED KEYWORDS: %s

CANDIDATE ANSWER: %s

Return ONLY a valid JSON object with exactly these fields:

{
  "subscores": {
    "accuracy": number 0-40 - technical correctness versus the reference answer,
    "completeness": number 0-30 - coverage of the points the reference answer makes,
    "clarity": number 0-20 - structure and precision of the explanation,
    "keywords": number 0-10 - how many expected keywords the answer uses meaningfully
  },
  "feedback": "string - 2-3 sentences of feedback for the candidate",
  "strengths": ["array of strings - what the answer did well"],
  "improvements": ["array of strings - what the answer should improve"]
}

IMPORTANT RULES:
1. Return ONLY valid JSON, no additional text
2. All four subscores are required and must be numbers within their ranges
3. An empty or off-topic answer scores 0 on every dimension
4. Do not include the reference answer in the feedback`,
		question.PromptText, question.ReferenceAnswer, strings.Join(question.Keywords, ", "), answer)
}
