package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/lumenpay/admin-gateway/internal/pkg/response"
	"github.com/lumenpay/admin-gateway/internal/service"
	"github.com/lumenpay/admin-gateway/internal/upstream"
)

type BotsHandler struct {
	bots *service.BotService
}

func NewBotsHandler(bots *service.BotService) *BotsHandler {
	return &BotsHandler{bots: bots}
}

// GET /api/v1/bots
func (h *BotsHandler) List(c *gin.Context) {
	bots, err := h.bots.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, bots)
}

// GET /api/v1/bots/:id
func (h *BotsHandler) Get(c *gin.Context) {
	botID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	bot, err := h.bots.Get(c.Request.Context(), botID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, bot)
}

// POST /api/v1/bots
func (h *BotsHandler) Create(c *gin.Context) {
	var req upstream.BotCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	bot, err := h.bots.Create(c.Request.Context(), actor(c), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, bot)
}

// PUT /api/v1/bots/:id
func (h *BotsHandler) Update(c *gin.Context) {
	botID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req upstream.BotUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	bot, err := h.bots.Update(c.Request.Context(), actor(c), botID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, bot)
}

// PUT /api/v1/bots/:id/token
func (h *BotsHandler) UpdateToken(c *gin.Context) {
	botID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req upstream.BotTokenUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	bot, err := h.bots.UpdateToken(c.Request.Context(), actor(c), botID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, bot)
}

// DELETE /api/v1/bots/:id
func (h *BotsHandler) Delete(c *gin.Context) {
	botID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.bots.Delete(c.Request.Context(), actor(c), botID); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, nil)
}
