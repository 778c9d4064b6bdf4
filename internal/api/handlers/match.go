package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hirebridge/internal/logging"
	"hirebridge/internal/matcher"
	"hirebridge/pkg/models"
)

// MatchJobsHandler handles POST /api/v1/jobs/match
func MatchJobsHandler(m *matcher.Matcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		var req models.MatchJobsRequest
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

		result, err := m.Match(req.CandidateSkills, req.Verification, req.TopK)
		if err != nil {
			return respondError(c, err, reqID)
		}

		logger.Info("Job match served", map[string]interface{}{
			"total_matches": result.TotalMatches,
			"returned":      len(result.MatchedJobs),
			"reason":        result.Reason,
		})

		return c.JSON(http.StatusOK, models.MatchJobsResponse{
			Success:   true,
			Result:    result,
			RequestID: reqID,
		})
	}
}
