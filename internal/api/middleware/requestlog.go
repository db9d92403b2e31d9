package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/trace"
)

const requestIDHeader = "X-Request-ID"

// healthPaths are probe endpoints whose successful requests are logged only
// on transition. Probes hit these every few seconds and would otherwise
// dominate the request log.
var healthPaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

// RequestLog returns Echo middleware that logs requests with structured fields.
// It generates a request ID if none is provided and propagates it through
// the response header and echo context. Successful health probe requests are
// logged once per transition; probe failures are always logged at WARN.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var (
		mu      sync.Mutex
		healthy = make(map[string]bool)
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			status := c.Response().Status
			path := c.Request().URL.Path

			args := []any{
				"method", c.Request().Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			}
			if sc := trace.SpanContextFromContext(c.Request().Context()); sc.HasTraceID() {
				args = append(args, "trace_id", sc.TraceID().String())
			}

			if _, probe := healthPaths[path]; probe {
				ok := status >= 200 && status < 300

				mu.Lock()
				wasHealthy := healthy[path]
				healthy[path] = ok
				mu.Unlock()

				switch {
				case !ok:
					log.Warn("request", args...)
				case !wasHealthy:
					log.Info("request", args...)
				}

				return err
			}

			log.Info("request", args...)

			return err
		}
	}
}
