package utils

import (
	"fmt"
	"net/http"
)

// Machine-readable error kinds surfaced in API responses
const (
	KindValidation    = "validation_failed"
	KindShapeMismatch = "shape_mismatch"
	KindCatalogLoad   = "catalog_load_error"
	KindCatalogEmpty  = "catalog_empty"
	KindOracle        = "oracle_error"
	KindDispatch      = "dispatch_error"
)

// CustomError represents a custom application error
type CustomError struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e *CustomError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

// NewValidationError reports malformed or missing required input
func NewValidationError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: "Validation failed",
		Detail:  detail,
	}
}

// NewShapeMismatchError reports a questions/answers length mismatch,
// rejected before any oracle call is made
func NewShapeMismatchError(questions, answers int) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Kind:    KindShapeMismatch,
		Message: "Questions and answers do not line up",
		Detail:  fmt.Sprintf("got %d questions and %d answers", questions, answers),
	}
}

// NewCatalogLoadError reports an unreadable catalog source; the previous
// catalog generation stays in place
func NewCatalogLoadError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusInternalServerError,
		Kind:    KindCatalogLoad,
		Message: "Failed to load job catalog",
		Detail:  detail,
	}
}

// NewCatalogEmptyError reports that no catalog has ever been loaded.
// Distinct from a successful match with zero results.
func NewCatalogEmptyError() *CustomError {
	return &CustomError{
		Code:    http.StatusUnprocessableEntity,
		Kind:    KindCatalogEmpty,
		Message: "Job catalog has not been loaded",
	}
}

// NewOracleError reports an AI dependency failure. Never defaulted into a
// passing or failing score; the enclosing batch aborts instead.
func NewOracleError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadGateway,
		Kind:    KindOracle,
		Message: "AI oracle request failed",
		Detail:  detail,
	}
}

// NewDispatchError reports a single failed application send. Isolated to
// its batch item, never fatal to the batch.
func NewDispatchError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadGateway,
		Kind:    KindDispatch,
		Message: "Application dispatch failed",
		Detail:  detail,
	}
}
