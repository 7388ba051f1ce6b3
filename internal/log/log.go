// Package log writes one structured JSON line per application event.
//
// Call Init once at startup. Until then events go to stderr at info level.
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
	mu     sync.RWMutex
	out    io.Writer = os.Stderr
	logger           = zerolog.New(os.Stderr).With().Timestamp().Logger()
)

// Init replaces the package logger. A nil writer means stdout.
func Init(level string, pretty bool, w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	if w == nil {
		w = os.Stdout
	}
	raw := w
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	l := zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger()

	mu.Lock()
	logger, out = l, raw
	mu.Unlock()
	return l
}

// Get returns the current package logger.
func Get() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Writer is the destination passed to Init, for plain-text access logs.
func Writer() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return out
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

func write(ev *zerolog.Event, kind string, c *fiber.Ctx, action string, err error, fields map[string]any) {
	ev = ev.Str("kind", kind).Str("action", action)
	if c != nil {
		ev = ev.Str("ip", c.IP()).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode())
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			ev = ev.Str("req_id", rid)
		}
	}
	if err != nil {
		ev = ev.Err(err)
	}
	if len(fields) > 0 {
		ev = ev.Interface("fields", fields)
	}
	ev.Send()
}

func Info(c *fiber.Ctx, action string, fields map[string]any) {
	l := Get()
	write(l.Info(), "info", c, action, nil, fields)
}

// Audit records a successful state change made by an authenticated user.
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	l := Get()
	write(l.Info(), "audit", c, action, nil, fields)
}

func Security(c *fiber.Ctx, action string, fields map[string]any) {
	l := Get()
	write(l.Warn(), "security", c, action, nil, fields)
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	l := Get()
	write(l.Error(), "error", c, action, err, fields)
}
