package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hirebridge/internal/catalog"
	"hirebridge/internal/config"
	"hirebridge/internal/logging"
	"hirebridge/pkg/models"
)

// LoadCatalogHandler handles POST /api/v1/jobs/load. A successful load
// atomically replaces the published catalog; a failed load leaves the
// previous generation serving.
func LoadCatalogHandler(cfg *config.Config, cat *catalog.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		var req models.LoadCatalogRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"invalid_request",
				"Invalid request body: "+err.Error(),
				reqID,
			))
		}

		source := req.Source
		if source == "" {
			source = cfg.Catalog.Source
		}
		if source == "" {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"validation_failed",
				"No catalog source given and no default configured",
				reqID,
			))
		}

		count, err := cat.Load(source)
		if err != nil {
			logger.Error("Catalog load failed", map[string]interface{}{
				"source": source,
				"error":  err.Error(),
			})
			return respondError(c, err, reqID)
		}

		logger.Info("Catalog loaded", map[string]interface{}{
			"source": source,
			"count":  count,
		})

		return c.JSON(http.StatusOK, models.LoadCatalogResponse{
			Success:   true,
			Count:     count,
			RequestID: reqID,
		})
	}
}

// ListJobsHandler handles GET /api/v1/jobs
func ListJobsHandler(cat *catalog.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		jobs := cat.All()
		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":    true,
			"jobs":       jobs,
			"count":      len(jobs),
			"request_id": reqID,
		})
	}
}
