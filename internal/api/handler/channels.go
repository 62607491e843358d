package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/lumenpay/admin-gateway/internal/pkg/response"
	"github.com/lumenpay/admin-gateway/internal/service"
	"github.com/lumenpay/admin-gateway/internal/upstream"
)

type ChannelsHandler struct {
	channels *service.ChannelService
}

func NewChannelsHandler(channels *service.ChannelService) *ChannelsHandler {
	return &ChannelsHandler{channels: channels}
}

// GET /api/v1/channels
func (h *ChannelsHandler) List(c *gin.Context) {
	page, size := parsePagination(c)

	result, err := h.channels.List(c.Request.Context(), page, size, optionalBotID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.SuccessPage(c, result.Total, result.Page, result.Size, result.Items)
}

// POST /api/v1/channels
func (h *ChannelsHandler) Create(c *gin.Context) {
	var req upstream.ChannelCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	channel, err := h.channels.Create(c.Request.Context(), actor(c), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, channel)
}

// PUT /api/v1/channels/:id
func (h *ChannelsHandler) Update(c *gin.Context) {
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req upstream.ChannelUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	channel, err := h.channels.Update(c.Request.Context(), actor(c), channelID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, channel)
}

// DELETE /api/v1/channels/:id
func (h *ChannelsHandler) Delete(c *gin.Context) {
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.channels.Delete(c.Request.Context(), actor(c), channelID); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, nil)
}
