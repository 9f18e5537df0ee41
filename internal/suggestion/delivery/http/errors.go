package http

import (
	"errors"
	"net/http"

	"task-suggestion-service/internal/suggestion"
	pkgErrors "task-suggestion-service/pkg/errors"
)

var (
	errInvalidBody   = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	errMissingFields = pkgErrors.NewHTTPError(http.StatusBadRequest, "missing required fields")
	errInvalidUserID = pkgErrors.NewHTTPError(http.StatusBadRequest, "user_id must be a valid UUID")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, suggestion.ErrEmptyInput):
		return errMissingFields
	case errors.Is(err, suggestion.ErrInvalidTotal),
		errors.Is(err, suggestion.ErrInvalidTimezone):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, suggestion.ErrUserNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, suggestion.ErrModelNotLoaded):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, err.Error())
	case errors.Is(err, suggestion.ErrEmbeddingUnavailable),
		errors.Is(err, suggestion.ErrLLMUnavailable):
		return pkgErrors.ErrServiceUnavailable
	default:
		return pkgErrors.ErrInternalServerError
	}
}
