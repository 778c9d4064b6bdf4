package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hirebridge/internal/dispatch"
	"hirebridge/internal/logging"
	"hirebridge/pkg/models"
)

// DispatchApplicationsHandler handles POST /api/v1/applications/dispatch.
// Individual send failures come back as failed records inside a 200; the
// request only errors when nothing could be attempted.
func DispatchApplicationsHandler(d *dispatch.Dispatcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		var req models.DispatchApplicationsRequest
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

		records, summary, err := d.DispatchAll(c.Request().Context(), req.MatchedJobs, req.Candidate, req.ResumeText)
		if err != nil {
			return respondError(c, err, reqID)
		}

		logger.Info("Application batch dispatched", map[string]interface{}{
			"sent":   summary.TotalSent,
			"failed": summary.TotalFailed,
		})

		return c.JSON(http.StatusOK, models.DispatchApplicationsResponse{
			Success:   true,
			Records:   records,
			Summary:   summary,
			RequestID: reqID,
		})
	}
}
