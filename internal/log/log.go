// Package log emits structured application, audit and security events.
// Entries carry request metadata when a fiber context is supplied.
package log

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

var (
	logger zerolog.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	once   sync.Once
)

// Init configures the process logger. Only the first call has any effect.
func Init(level string, out io.Writer) {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339
		if out == nil {
			out = os.Stdout
		}
		logger = zerolog.New(out).Level(parseLevel(level)).With().Timestamp().Logger()
	})
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func event(ev *zerolog.Event, c *fiber.Ctx, action string, fields map[string]any) {
	if c != nil {
		ev = ev.Str("ip", c.IP()).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode())
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			ev = ev.Str("req_id", rid)
		}
	}
	if fields != nil {
		ev = ev.Fields(fields)
	}
	ev.Str("action", action).Send()
}

func Info(c *fiber.Ctx, action string, fields map[string]any) {
	event(logger.Info(), c, action, fields)
}

// Audit records state-changing actions (logins, order placement, admin edits).
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	event(logger.Info().Str("kind", "audit"), c, action, fields)
}

// Security records rejected or suspicious requests.
func Security(c *fiber.Ctx, action string, fields map[string]any) {
	event(logger.Warn().Str("kind", "security"), c, action, fields)
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	ev := logger.Error()
	if err != nil {
		ev = ev.Err(err)
	}
	event(ev, c, action, fields)
}
