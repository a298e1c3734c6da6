package middleware

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"petcare/internal/logger"
)

// ErrorLocalKey holds an internal error a handler answered with 500, for the access log.
const ErrorLocalKey = "internal_error"

// Logger writes one structured entry per request with
// request_id, method, path, status and latency (milliseconds).
// trace_id is added when the request carries a sampled span.
func Logger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		rid, _ := c.Locals(RequestIDLocalKey).(string)
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		fields := []zap.Field{
			zap.String("request_id", rid),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Float64("latency", float64(time.Since(start).Microseconds())/1000),
		}
		if sc := trace.SpanContextFromContext(c.UserContext()); sc.HasTraceID() {
			fields = append(fields, zap.String("trace_id", sc.TraceID().String()))
		}
		if uid, ok := c.Locals(UserIDLocalKey).(string); ok && uid != "" {
			fields = append(fields, zap.String("user_id", uid))
		}

		if ierr, ok := c.Locals(ErrorLocalKey).(error); ok {
			fields = append(fields, zap.Error(ierr))
			log.Error("http request", fields...)
			return err
		}
		log.Info("http request", fields...)
		return err
	}
}

// LoggerWithWriter is Logger backed by a JSON logger writing to w.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	return Logger(logger.NewWithWriter(w, "info", loc))
}
