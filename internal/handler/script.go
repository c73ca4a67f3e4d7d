package handler

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/Farhad0111/YouTube-Script-Writer/internal/middleware"
	"github.com/Farhad0111/YouTube-Script-Writer/internal/model"
	"github.com/Farhad0111/YouTube-Script-Writer/internal/service"
)

type ScriptHandler struct {
	svc *service.ScriptService
}

func NewScriptHandler(svc *service.ScriptService) *ScriptHandler {
	return &ScriptHandler{svc: svc}
}

// Generate handles POST /api/scripts
func (h *ScriptHandler) Generate(c fiber.Ctx) error {
	var req model.ScriptRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	req.Topic = strings.TrimSpace(req.Topic)
	if errMsg := middleware.ValidateStruct(req); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	resp, err := h.svc.Generate(c.Context(), req)
	if err != nil {
		return serviceError(c, err, "Failed to generate script")
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GenerateFromChannel handles POST /api/scripts/channel
func (h *ScriptHandler) GenerateFromChannel(c fiber.Ctx) error {
	var req model.ChannelScriptRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	req.Topic = strings.TrimSpace(req.Topic)

	ref, errMsg := middleware.ValidateChannelRef(req.ChannelID)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.ChannelID = ref
	if errMsg := middleware.ValidateStruct(req); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	resp, err := h.svc.GenerateFromChannel(c.Context(), req)
	if err != nil {
		return serviceError(c, err, "Failed to generate script")
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List handles GET /api/scripts?limit=N
func (h *ScriptHandler) List(c fiber.Ctx) error {
	limit := fiber.Query[int](c, "limit")

	scripts, err := h.svc.List(c.Context(), limit)
	if err != nil {
		return serviceError(c, err, "Failed to list scripts")
	}
	return c.JSON(model.ScriptListResponse{Scripts: scripts, Count: len(scripts)})
}

// GetByID handles GET /api/scripts/:id
func (h *ScriptHandler) GetByID(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateScriptID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	script, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return serviceError(c, err, "Failed to load script")
	}
	return c.JSON(script)
}
