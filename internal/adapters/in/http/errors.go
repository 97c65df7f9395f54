package http

import (
	"errors"
	"net/http"

	"shiptracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError translates an application error into the uniform error body.
// Unclassified errors surface their detail only in development mode; in
// production the caller sees a bare internal error.
func (s *Server) writeError(ctx echo.Context, err error) error {
	var (
		notFound    *errs.ObjectNotFoundError
		invalid     *errs.ValueIsInvalidError
		outOfRange  *errs.ValueIsOutOfRangeError
		required    *errs.ValueIsRequiredError
		conflict    *errs.ConflictError
		referential *errs.ReferentialIntegrityError
		transient   *errs.TransientError
	)

	switch {
	case errors.As(err, &required), errors.As(err, &invalid), errors.As(err, &outOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})

	case errors.As(err, &notFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})

	case errors.As(err, &conflict):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "Duplicate entry",
		})

	case errors.As(err, &referential):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Referenced record not found",
		})

	case errors.As(err, &transient):
		return ctx.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Code:    http.StatusServiceUnavailable,
			Message: "Datastore temporarily unavailable",
		})

	default:
		response := ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		}
		if s.development {
			response.Detail = err.Error()
		}
		return ctx.JSON(http.StatusInternalServerError, response)
	}
}
