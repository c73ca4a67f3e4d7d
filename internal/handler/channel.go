package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Farhad0111/YouTube-Script-Writer/internal/middleware"
	"github.com/Farhad0111/YouTube-Script-Writer/internal/service"
	"github.com/Farhad0111/YouTube-Script-Writer/internal/tone"
)

type ChannelHandler struct {
	svc *service.ChannelService
}

func NewChannelHandler(svc *service.ChannelService) *ChannelHandler {
	return &ChannelHandler{svc: svc}
}

// GetByChannelID handles GET /api/channels/:channelId
func (h *ChannelHandler) GetByChannelID(c fiber.Ctx) error {
	return h.analyze(c, c.Params("channelId"))
}

// GetByRef handles GET /api/channels?ref=<id, URL or @handle>
func (h *ChannelHandler) GetByRef(c fiber.Ctx) error {
	return h.analyze(c, fiber.Query[string](c, "ref"))
}

func (h *ChannelHandler) analyze(c fiber.Ctx, raw string) error {
	ref, errMsg := middleware.ValidateChannelRef(raw)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	resp, err := h.svc.Analyze(c.Context(), ref)
	if err != nil {
		return serviceError(c, err, "Failed to lookup channel")
	}
	return c.JSON(resp)
}

// Tones handles GET /api/tones
func (h *ChannelHandler) Tones(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"default": tone.DefaultPrimary.String(),
		"tones":   h.svc.Keywords(),
	})
}
