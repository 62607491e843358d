package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/lumenpay/admin-gateway/internal/pkg/response"
	"github.com/lumenpay/admin-gateway/internal/service"
	"github.com/lumenpay/admin-gateway/internal/upstream"
)

type SubscribersHandler struct {
	subscribers *service.SubscriberService
}

func NewSubscribersHandler(subscribers *service.SubscriberService) *SubscribersHandler {
	return &SubscribersHandler{subscribers: subscribers}
}

// GET /api/v1/subscribers
func (h *SubscribersHandler) List(c *gin.Context) {
	page, size := parsePagination(c)

	result, err := h.subscribers.List(c.Request.Context(), page, size)
	if err != nil {
		handleError(c, err)
		return
	}
	response.SuccessPage(c, result.Total, result.Page, result.Size, result.Items)
}

// POST /api/v1/subscribers
func (h *SubscribersHandler) Create(c *gin.Context) {
	var req upstream.SubscriberCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	sub, err := h.subscribers.Create(c.Request.Context(), actor(c), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, sub)
}

// PUT /api/v1/subscribers/:id
func (h *SubscribersHandler) Update(c *gin.Context) {
	subscriberID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req upstream.SubscriberUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	sub, err := h.subscribers.Update(c.Request.Context(), actor(c), subscriberID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, sub)
}

// POST /api/v1/subscribers/:id/extend
func (h *SubscribersHandler) Extend(c *gin.Context) {
	subscriberID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req upstream.ExtendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	sub, err := h.subscribers.Extend(c.Request.Context(), actor(c), subscriberID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, sub)
}

// DELETE /api/v1/subscribers/:id/subscriptions/:subscriptionID
func (h *SubscribersHandler) CancelSubscription(c *gin.Context) {
	subscriberID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	subscriptionID, ok := parseIDParam(c, "subscriptionID")
	if !ok {
		return
	}

	sub, err := h.subscribers.CancelSubscription(c.Request.Context(), actor(c), subscriberID, subscriptionID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, sub)
}

// DELETE /api/v1/subscribers/:id
func (h *SubscribersHandler) Delete(c *gin.Context) {
	subscriberID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.subscribers.Delete(c.Request.Context(), actor(c), subscriberID); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, nil)
}

// GET /api/v1/subscribers/export
func (h *SubscribersHandler) Export(c *gin.Context) {
	data, contentType, err := h.subscribers.Export(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="subscribers.csv"`)
	c.Data(200, contentType, data)
}
