package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"hirebridge/pkg/models"
	"hirebridge/pkg/utils"
)

var apiValidator = validator.New()

// requestID returns the ID the validation middleware attached, or a
// fresh one for requests that bypassed it
func requestID(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok && id != "" {
		return id
	}
	return utils.GenerateRequestID()
}

// respondError maps an application error onto the standard error envelope
func respondError(c echo.Context, err error, reqID string) error {
	var ce *utils.CustomError
	if errors.As(err, &ce) {
		return c.JSON(ce.Code, models.NewErrorResponse(ce.Kind, ce.Error(), reqID))
	}

	return c.JSON(http.StatusInternalServerError, models.NewErrorResponse(
		"internal_error",
		err.Error(),
		reqID,
	))
}
