package public

import (
	handlershared "github.com/xinna-pharma/internal/http/handlers/shared"
	"github.com/xinna-pharma/internal/http/response"
	"github.com/xinna-pharma/internal/models"
	"github.com/xinna-pharma/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutRequest 结算请求；金额字段可传字符串或数字
type CheckoutRequest struct {
	PaymentMethodID  string       `json:"payment_method_id" binding:"required"`
	ShippingMethodID string       `json:"shipping_method_id" binding:"required"`
	ShippingCost     models.Money `json:"shipping_cost"`
	PlatformFee      models.Money `json:"platform_fee"`
	RecipientName    string       `json:"recipient_name" binding:"required"`
	RecipientPhone   string       `json:"recipient_phone"`
	ShippingAddress  string       `json:"shipping_address" binding:"required"`
	ShippingCity     string       `json:"shipping_city"`
	ShippingPostcode string       `json:"shipping_postcode"`
}

// Checkout 将购物车整体转为订单
func (h *Handler) Checkout(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	paymentMethodID, ok := h.decodeToken(c, req.PaymentMethodID, "error.payment_method_not_found")
	if !ok {
		return
	}
	shippingMethodID, ok := h.decodeToken(c, req.ShippingMethodID, "error.shipping_method_not_found")
	if !ok {
		return
	}

	result, err := h.CheckoutService.PlaceOrder(principal, service.PlaceOrderInput{
		PaymentMethodID:  paymentMethodID,
		ShippingMethodID: shippingMethodID,
		ShippingCost:     req.ShippingCost,
		PlatformFee:      req.PlatformFee,
		RecipientName:    req.RecipientName,
		RecipientPhone:   req.RecipientPhone,
		ShippingAddress:  req.ShippingAddress,
		ShippingCity:     req.ShippingCity,
		ShippingPostcode: req.ShippingPostcode,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{
		"order_id": result.OrderToken,
		"order":    handlershared.NewOrderView(h.Codec, result.Order),
	})
}
