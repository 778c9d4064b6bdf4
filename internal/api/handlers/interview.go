package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"hirebridge/internal/interview"
	"hirebridge/internal/interview/session"
	"hirebridge/internal/llm"
	"hirebridge/internal/logging"
	"hirebridge/pkg/models"
	"hirebridge/pkg/utils"
)

// GenerateQuestionsHandler handles the POST /api/v1/interview/questions
// endpoint. The full question set (with reference answers) is cached in
// the session store; only candidate-facing views go out on the wire.
func GenerateQuestionsHandler(llmManager *llm.Manager, store session.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		var req models.GenerateQuestionsRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"invalid_request",
				"Invalid request body: "+err.Error(),
				reqID,
			))
		}

		if err := apiValidator.Struct(&req); err != nil {
			logger.Error("Request validation failed", map[string]interface{}{
				"error": err.Error(),
			})
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"validation_failed",
				"Request validation failed: "+err.Error(),
				reqID,
			))
		}

		ctx := c.Request().Context()
		questions, err := llmManager.GenerateQuestions(ctx, req.Skills, req.ExperienceTier)
		if err != nil {
			return respondError(c, err, reqID)
		}

		sessionID := utils.GenerateSessionID()
		if err := store.PutQuestions(ctx, sessionID, questions); err != nil {
			logger.Error("Failed to cache interview questions", map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			})
			return respondError(c, err, reqID)
		}

		views := make([]models.QuestionView, 0, len(questions))
		for _, q := range questions {
			views = append(views, q.View())
		}

		logger.Info("Interview questions generated", map[string]interface{}{
			"session_id": sessionID,
			"questions":  len(views),
		})

		return c.JSON(http.StatusOK, models.GenerateQuestionsResponse{
			Success:   true,
			SessionID: sessionID,
			Questions: views,
			RequestID: reqID,
		})
	}
}

// EvaluateAnswersHandler handles the POST /api/v1/interview/evaluate
// endpoint: runs every answer through the oracle, aggregates the verdict
// and caches it under the session ID.
func EvaluateAnswersHandler(llmManager *llm.Manager, store session.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		var req models.EvaluateAnswersRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"invalid_request",
				"Invalid request body: "+err.Error(),
				reqID,
			))
		}

		if err := apiValidator.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"validation_failed",
				"Request validation failed: "+err.Error(),
				reqID,
			))
		}

		ctx := c.Request().Context()
		questions, err := resolveQuestions(c, &req, store)
		if err != nil {
			return respondError(c, err, reqID)
		}

		evaluator := interview.NewEvaluator(llmManager)
		evaluations, err := evaluator.EvaluateBatch(ctx, questions, req.Answers)
		if err != nil {
			return respondError(c, err, reqID)
		}

		verification, err := interview.Aggregate(evaluations)
		if err != nil {
			return respondError(c, err, reqID)
		}

		if err := store.PutVerification(ctx, req.SessionID, verification); err != nil {
			logger.Error("Failed to cache verification result", map[string]interface{}{
				"session_id": req.SessionID,
				"error":      err.Error(),
			})
		}

		feedback := make([]models.AnswerFeedback, 0, len(evaluations))
		for _, eval := range evaluations {
			feedback = append(feedback, models.AnswerFeedback{
				QuestionID:   eval.QuestionID,
				Skill:        eval.Skill,
				Score:        eval.Score,
				Verdict:      eval.Verdict,
				Feedback:     eval.Feedback,
				Strengths:    eval.Strengths,
				Improvements: eval.Improvements,
			})
		}

		logger.Info("Interview evaluated", map[string]interface{}{
			"session_id":    req.SessionID,
			"average_score": verification.AverageScore,
			"is_verified":   verification.IsVerified,
		})

		return c.JSON(http.StatusOK, models.EvaluateAnswersResponse{
			Success:      true,
			SessionID:    req.SessionID,
			Verification: verification,
			Feedback:     feedback,
			RequestID:    reqID,
		})
	}
}

// resolveQuestions fills in reference answers for question payloads that
// arrived without them, using the session's cached question set. The
// candidate-facing surface only ever saw question views, so a trusted
// caller relaying those views needs the session cache to grade against.
func resolveQuestions(c echo.Context, req *models.EvaluateAnswersRequest, store session.Store) ([]models.Question, error) {
	complete := true
	for _, q := range req.Questions {
		if q.ReferenceAnswer == "" || len(q.Keywords) == 0 {
			complete = false
			break
		}
	}
	if complete {
		return req.Questions, nil
	}

	cached, err := store.GetQuestions(c.Request().Context(), req.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, utils.NewValidationError("questions are missing reference answers and the session has no cached question set")
		}
		return nil, err
	}

	byID := make(map[int]models.Question, len(cached))
	for _, q := range cached {
		byID[q.ID] = q
	}

	resolved := make([]models.Question, 0, len(req.Questions))
	for _, q := range req.Questions {
		if q.ReferenceAnswer != "" && len(q.Keywords) > 0 {
			resolved = append(resolved, q)
			continue
		}
		full, ok := byID[q.ID]
		if !ok {
			return nil, utils.NewValidationError("question is not part of this interview session")
		}
		resolved = append(resolved, full)
	}

	return resolved, nil
}

// GetVerificationHandler handles GET /api/v1/interview/verification/:session_id
func GetVerificationHandler(store session.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		sessionID := c.Param("session_id")
		if sessionID == "" {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"validation_failed",
				"Session ID is required",
				reqID,
			))
		}

		result, err := store.GetVerification(c.Request().Context(), sessionID)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				return c.JSON(http.StatusNotFound, models.NewErrorResponse(
					"session_not_found",
					"No verification result for this session; it may have expired",
					reqID,
				))
			}
			return respondError(c, err, reqID)
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":      true,
			"session_id":   sessionID,
			"verification": result,
			"request_id":   reqID,
		})
	}
}
