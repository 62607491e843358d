package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/lumenpay/admin-gateway/internal/pkg/response"
	"github.com/lumenpay/admin-gateway/internal/service"
	"github.com/lumenpay/admin-gateway/internal/upstream"
)

type PlansHandler struct {
	plans *service.PlanService
}

func NewPlansHandler(plans *service.PlanService) *PlansHandler {
	return &PlansHandler{plans: plans}
}

// GET /api/v1/plans
func (h *PlansHandler) List(c *gin.Context) {
	plans, err := h.plans.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, plans)
}

// POST /api/v1/plans
func (h *PlansHandler) Create(c *gin.Context) {
	var req upstream.PlanCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	plan, err := h.plans.Create(c.Request.Context(), actor(c), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, plan)
}

// PUT /api/v1/plans/:id
func (h *PlansHandler) Update(c *gin.Context) {
	planID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req upstream.PlanUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	plan, err := h.plans.Update(c.Request.Context(), actor(c), planID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, plan)
}

// DELETE /api/v1/plans/:id
func (h *PlansHandler) Delete(c *gin.Context) {
	planID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.plans.Delete(c.Request.Context(), actor(c), planID); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, nil)
}
