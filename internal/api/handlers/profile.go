package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hirebridge/internal/logging"
	"hirebridge/internal/profile"
	"hirebridge/pkg/models"
)

// AnalyzeProfileHandler handles the POST /api/v1/profile/analyze endpoint
func AnalyzeProfileHandler(extractor *profile.Extractor) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		logger.Info("Processing profile analysis request", map[string]interface{}{
			"endpoint": "/api/v1/profile/analyze",
			"method":   "POST",
		})

		var req models.AnalyzeProfileRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to parse request body", map[string]interface{}{
				"error": err.Error(),
			})
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"invalid_request",
				"Invalid request body: "+err.Error(),
				reqID,
			))
		}

		skillProfile, err := extractor.Extract(&req.Profile)
		if err != nil {
			return respondError(c, err, reqID)
		}

		return c.JSON(http.StatusOK, models.AnalyzeProfileResponse{
			Success:   true,
			Profile:   skillProfile,
			RequestID: reqID,
		})
	}
}
