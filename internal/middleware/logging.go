package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
)

// slowRequest marks requests worth a look; script generation usually takes
// a few seconds, channel lookups well under one.
const slowRequest = 30 * time.Second

// Logger is shared by every component. It discards output until InitLogger
// runs.
var Logger = zerolog.Nop()

// InitLogger points Logger at stdout. Unknown levels fall back to info.
func InitLogger(level, service string) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.DurationFieldUnit = time.Millisecond
	zerolog.DurationFieldInteger = true

	Logger = NewLogger(os.Stdout, level, service)
}

// NewLogger builds a JSON logger tagged with the service name.
func NewLogger(w io.Writer, level, service string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().
		Timestamp().
		Str("service", service).
		Logger()
}

// Component returns a child of Logger tagged with a component name.
func Component(name string) zerolog.Logger {
	return Logger.With().Str("component", name).Logger()
}

// hashIPForLog keeps a 12-char SHA-256 prefix of the client IP.
func hashIPForLog(ip string) string {
	h := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(h[:])[:12]
}

// SanitizePath replaces channel references and script IDs with placeholders
// so channel URLs and handles never reach the logs.
func SanitizePath(path string) string {
	parts := strings.Split(path, "/")
	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		switch parts[i-1] {
		case "channels":
			parts[i] = ":channelId"
		case "scripts":
			if parts[i] != "channel" {
				parts[i] = ":id"
			}
		}
	}
	return strings.Join(parts, "/")
}

func levelFor(status int) zerolog.Level {
	switch {
	case status >= 500:
		return zerolog.ErrorLevel
	case status >= 400:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// NewRequestLogger logs one line per request. The query string is never
// logged since channel lookups carry the reference in ?ref=.
func NewRequestLogger() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		elapsed := time.Since(start)

		status := c.Response().StatusCode()
		Logger.WithLevel(levelFor(status)).
			Str("method", c.Method()).
			Str("path", SanitizePath(c.Path())).
			Int("status", status).
			Dur("duration_ms", elapsed).
			Bool("slow", elapsed >= slowRequest).
			Str("ip_hash", hashIPForLog(c.IP())).
			Int("bytes_in", len(c.Body())).
			Int("bytes_out", len(c.Response().Body())).
			Msg("request")

		return err
	}
}
