package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/lumenpay/admin-gateway/internal/pkg/response"
	"github.com/lumenpay/admin-gateway/internal/service"
	"github.com/lumenpay/admin-gateway/internal/upstream"
)

type BroadcastsHandler struct {
	broadcasts *service.BroadcastService
}

func NewBroadcastsHandler(broadcasts *service.BroadcastService) *BroadcastsHandler {
	return &BroadcastsHandler{broadcasts: broadcasts}
}

// GET /api/v1/broadcasts
func (h *BroadcastsHandler) List(c *gin.Context) {
	page, size := parsePagination(c)

	result, err := h.broadcasts.List(c.Request.Context(), page, size, optionalBotID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.SuccessPage(c, result.Total, result.Page, result.Size, result.Items)
}

// GET /api/v1/broadcasts/:id
func (h *BroadcastsHandler) Get(c *gin.Context) {
	broadcastID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	bc, err := h.broadcasts.Get(c.Request.Context(), broadcastID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, bc)
}

// POST /api/v1/broadcasts
func (h *BroadcastsHandler) Create(c *gin.Context) {
	var req upstream.BroadcastCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	bc, err := h.broadcasts.Create(c.Request.Context(), actor(c), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, bc)
}

// PUT /api/v1/broadcasts/:id
func (h *BroadcastsHandler) Update(c *gin.Context) {
	broadcastID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req upstream.BroadcastUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	bc, err := h.broadcasts.Update(c.Request.Context(), actor(c), broadcastID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, bc)
}

// DELETE /api/v1/broadcasts/:id
func (h *BroadcastsHandler) Delete(c *gin.Context) {
	broadcastID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.broadcasts.Delete(c.Request.Context(), actor(c), broadcastID); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, nil)
}

// GET /api/v1/broadcasts/:id/recipients/count
func (h *BroadcastsHandler) RecipientsCount(c *gin.Context) {
	broadcastID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	count, err := h.broadcasts.RecipientsCount(c.Request.Context(), broadcastID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, count)
}

// POST /api/v1/broadcasts/:id/send
func (h *BroadcastsHandler) Send(c *gin.Context) {
	broadcastID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.broadcasts.SendNow(c.Request.Context(), actor(c), broadcastID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, result)
}
