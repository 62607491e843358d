package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/lumenpay/admin-gateway/internal/pkg/response"
	"github.com/lumenpay/admin-gateway/internal/service"
	"github.com/lumenpay/admin-gateway/internal/upstream"
)

type PromoCodesHandler struct {
	promoCodes *service.PromoCodeService
}

func NewPromoCodesHandler(promoCodes *service.PromoCodeService) *PromoCodesHandler {
	return &PromoCodesHandler{promoCodes: promoCodes}
}

// GET /api/v1/promo-codes
func (h *PromoCodesHandler) List(c *gin.Context) {
	codes, err := h.promoCodes.List(c.Request.Context(), optionalBotID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, codes)
}

// GET /api/v1/promo-codes/:id
func (h *PromoCodesHandler) Get(c *gin.Context) {
	promoCodeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	code, err := h.promoCodes.Get(c.Request.Context(), promoCodeID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, code)
}

// POST /api/v1/promo-codes
func (h *PromoCodesHandler) Create(c *gin.Context) {
	var req upstream.PromoCodeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	code, err := h.promoCodes.Create(c.Request.Context(), actor(c), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, code)
}

// PUT /api/v1/promo-codes/:id
func (h *PromoCodesHandler) Update(c *gin.Context) {
	promoCodeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req upstream.PromoCodeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	code, err := h.promoCodes.Update(c.Request.Context(), actor(c), promoCodeID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, code)
}

// DELETE /api/v1/promo-codes/:id
func (h *PromoCodesHandler) Delete(c *gin.Context) {
	promoCodeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.promoCodes.Delete(c.Request.Context(), actor(c), promoCodeID); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, nil)
}
