package admin

import (
	"strings"
	"time"

	handlershared "github.com/xinna-pharma/internal/http/handlers/shared"
	"github.com/xinna-pharma/internal/http/response"
	"github.com/xinna-pharma/internal/service"

	"github.com/gin-gonic/gin"
)

// ShipmentRequest 发货登记请求
type ShipmentRequest struct {
	OrderID   string `json:"order_id" binding:"required"`
	ShippedAt string `json:"shipped_at"`
	Note      string `json:"note"`
}

// ListShipments 发货记录
func (h *Handler) ListShipments(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	page, pageSize := handlershared.ParsePagination(c)
	shipments, total, err := h.ShipmentService.ListShipments(principal, page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	result := make([]handlershared.ShipmentView, 0, len(shipments))
	for i := range shipments {
		result = append(result, *handlershared.NewShipmentView(h.Codec, &shipments[i]))
	}
	response.SuccessWithPage(c, result, handlershared.BuildPagination(page, pageSize, total))
}

// CreateShipment 登记发货并将订单置为待揽收
func (h *Handler) CreateShipment(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	var req ShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	orderID, ok := h.decodeToken(c, req.OrderID, "error.order_not_found")
	if !ok {
		return
	}
	shippedAt := time.Now()
	if strings.TrimSpace(req.ShippedAt) != "" {
		parsed, ok := parseDate(req.ShippedAt)
		if !ok {
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
			return
		}
		shippedAt = parsed
	}
	shipment, err := h.ShipmentService.RecordShipment(principal, service.RecordShipmentInput{
		OrderID:   orderID,
		ShippedAt: shippedAt,
		Note:      req.Note,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, handlershared.NewShipmentView(h.Codec, shipment))
}
