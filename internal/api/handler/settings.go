package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/lumenpay/admin-gateway/internal/pkg/response"
	"github.com/lumenpay/admin-gateway/internal/service"
	"github.com/lumenpay/admin-gateway/internal/upstream"
)

type SettingsHandler struct {
	settings *service.SettingsService
	audit    *service.AuditService
}

func NewSettingsHandler(settings *service.SettingsService, audit *service.AuditService) *SettingsHandler {
	return &SettingsHandler{
		settings: settings,
		audit:    audit,
	}
}

// GET /api/v1/settings/yookassa
func (h *SettingsHandler) GetYooKassa(c *gin.Context) {
	settings, err := h.settings.GetYooKassa(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, settings)
}

// PUT /api/v1/settings/yookassa
func (h *SettingsHandler) UpdateYooKassa(c *gin.Context) {
	var req upstream.YooKassaUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	settings, err := h.settings.UpdateYooKassa(c.Request.Context(), actor(c), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, settings)
}

// GET /api/v1/audit
func (h *SettingsHandler) ListAudit(c *gin.Context) {
	page, size := parsePagination(c)

	entries, total, err := h.audit.List(c.Query("resource"), page, size)
	if err != nil {
		response.ServerError(c, "")
		return
	}
	response.SuccessPage(c, total, page, size, entries)
}
