package http

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"strings"
	"time"

	"shiptracker/pkg/logger"
	"shiptracker/pkg/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestLogging assigns each request a correlation id and logs method,
// route, status and latency once the handler returns.
func RequestLogging(log logger.Logger, m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			requestID := uuid.NewString()
			ctx.Response().Header().Set(echo.HeaderXRequestID, requestID)

			start := time.Now()
			err := next(ctx)
			if err != nil {
				ctx.Error(err)
			}

			status := ctx.Response().Status
			elapsed := time.Since(start)

			m.RequestDuration.WithLabelValues(
				ctx.Request().Method,
				ctx.Path(),
				strconv.Itoa(status),
			).Observe(elapsed.Seconds())

			log.Info("request handled",
				"requestId", requestID,
				"method", ctx.Request().Method,
				"path", ctx.Path(),
				"status", status,
				"durationMs", elapsed.Milliseconds(),
			)

			return err
		}
	}
}

// BearerAuth guards the administrative routes with a static bearer token.
// When no token is configured the guard is disabled, which keeps local
// development friction-free.
func BearerAuth(token string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if token == "" {
				return next(ctx)
			}

			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			presented, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Unauthorized",
				})
			}

			return next(ctx)
		}
	}
}
