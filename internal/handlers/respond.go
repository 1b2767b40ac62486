package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avkarpov/currency_exchange_app/internal/apperrors"
	"github.com/avkarpov/currency_exchange_app/internal/middleware"
)

// errorResponse is the uniform error body: {"message": "..."}.
type errorResponse struct {
	Message string `json:"message"`
}

// respondError maps an error to its HTTP status at the boundary. Services and
// repositories only tag errors with a kind; the status decision lives here.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromContext(c)

	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrSameCurrency):
		c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Message: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, errorResponse{Message: err.Error()})
	default:
		// Internal details stay in the log, never in the response body.
		logger.Error("Unhandled error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, errorResponse{Message: "internal server error"})
	}
}

// respondBindingError reports a failed request binding as a validation error.
func respondBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body: " + err.Error()})
}
