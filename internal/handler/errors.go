package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Farhad0111/YouTube-Script-Writer/internal/middleware"
	"github.com/Farhad0111/YouTube-Script-Writer/internal/repository"
	"github.com/Farhad0111/YouTube-Script-Writer/internal/service"
	"github.com/Farhad0111/YouTube-Script-Writer/internal/youtube"
)

// serviceError maps a service failure to the API error envelope. Upstream
// failures get a fixed message; the cause is only logged.
func serviceError(c fiber.Ctx, err error, fallback string) error {
	var upstream *service.UpstreamError
	switch {
	case errors.Is(err, youtube.ErrChannelNotFound):
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Channel not found")
	case errors.Is(err, repository.ErrScriptNotFound):
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Script not found")
	case errors.Is(err, service.ErrHistoryDisabled):
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Script history is disabled")
	case errors.As(err, &upstream):
		middleware.Logger.Warn().Err(upstream.Err).Str("path", sanitizedPath(c)).Msg("upstream failure")
		return middleware.ErrorResponse(c, fiber.StatusBadGateway, "UPSTREAM_ERROR", upstream.Message)
	default:
		middleware.Logger.Error().Err(err).Str("path", sanitizedPath(c)).Msg("request failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func sanitizedPath(c fiber.Ctx) string {
	return middleware.SanitizePath(c.Path())
}
