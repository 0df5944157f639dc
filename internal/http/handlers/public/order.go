package public

import (
	handlershared "github.com/xinna-pharma/internal/http/handlers/shared"
	"github.com/xinna-pharma/internal/http/response"
	"github.com/xinna-pharma/internal/service"

	"github.com/gin-gonic/gin"
)

// ListOrders 当前顾客订单历史
func (h *Handler) ListOrders(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	page, pageSize := handlershared.ParsePagination(c)
	orders, total, err := h.OrderService.ListOrdersForCustomer(principal, service.OrderListInput{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, handlershared.NewOrderViews(h.Codec, orders), handlershared.BuildPagination(page, pageSize, total))
}

// GetOrder 当前顾客的订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	orderID, ok := h.decodeParam(c, "id", "error.order_not_found")
	if !ok {
		return
	}
	order, err := h.OrderService.GetOrder(principal, orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, handlershared.NewOrderView(h.Codec, order))
}

// CancelOrder 顾客取消待确认订单
func (h *Handler) CancelOrder(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	orderID, ok := h.decodeParam(c, "id", "error.order_not_found")
	if !ok {
		return
	}
	order, err := h.OrderService.CancelByCustomer(principal, orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, handlershared.NewOrderView(h.Codec, order))
}
