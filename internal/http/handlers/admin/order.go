package admin

import (
	handlershared "github.com/xinna-pharma/internal/http/handlers/shared"
	"github.com/xinna-pharma/internal/http/response"
	"github.com/xinna-pharma/internal/service"

	"github.com/gin-gonic/gin"
)

// UpdateOrderStatusRequest 改写订单状态请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListOrders 全部订单
func (h *Handler) ListOrders(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	page, pageSize := handlershared.ParsePagination(c)
	createdFrom, ok := parseDateQuery(c, "created_from")
	if !ok {
		return
	}
	createdTo, ok := parseDateQuery(c, "created_to")
	if !ok {
		return
	}
	orders, total, err := h.OrderService.ListOrders(principal, service.OrderListInput{
		Page:        page,
		PageSize:    pageSize,
		Status:      c.Query("status"),
		OrderNo:     c.Query("order_no"),
		CreatedFrom: createdFrom,
		CreatedTo:   createdTo,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, handlershared.NewOrderViews(h.Codec, orders), handlershared.BuildPagination(page, pageSize, total))
}

// ListPendingOrders 待发货订单
func (h *Handler) ListPendingOrders(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	page, pageSize := handlershared.ParsePagination(c)
	orders, total, err := h.OrderService.ListPendingOrders(principal, page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, handlershared.NewOrderViews(h.Codec, orders), handlershared.BuildPagination(page, pageSize, total))
}

// GetOrder 订单详情
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

// UpdateOrderStatus 员工改写订单状态
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	orderID, ok := h.decodeParam(c, "id", "error.order_not_found")
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	order, err := h.OrderService.UpdateOrderStatus(principal, orderID, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, handlershared.NewOrderView(h.Codec, order))
}
