package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/lumenpay/admin-gateway/internal/pkg/response"
	"github.com/lumenpay/admin-gateway/internal/service"
)

type PaymentsHandler struct {
	payments *service.PaymentService
}

func NewPaymentsHandler(payments *service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{payments: payments}
}

// GET /api/v1/payments
func (h *PaymentsHandler) List(c *gin.Context) {
	page, size := parsePagination(c)

	result, err := h.payments.List(c.Request.Context(), page, size)
	if err != nil {
		handleError(c, err)
		return
	}
	response.SuccessPage(c, result.Total, result.Page, result.Size, result.Items)
}

// GET /api/v1/payments/export
func (h *PaymentsHandler) Export(c *gin.Context) {
	data, contentType, err := h.payments.Export(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="payments.csv"`)
	c.Data(200, contentType, data)
}
