package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Logger emits one structured line per request. Once the auth layer has
// resolved a doctor session the line carries the doctor id, so consultation
// traffic can be traced per clinician.
func Logger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			err := next(c)

			evt := logger.Info()
			if err != nil {
				evt = logger.Error().Err(err)
			}

			rid, _ := c.Get(requestIDKey).(string)
			evt = evt.
				Str("request_id", rid).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", c.Response().Status).
				Dur("latency", time.Since(start)).
				Str("remote_ip", c.RealIP())
			if doctorID, ok := c.Get("doctor_id").(int); ok {
				evt = evt.Int("doctor_id", doctorID)
			}
			evt.Msg("request")

			return err
		}
	}
}
