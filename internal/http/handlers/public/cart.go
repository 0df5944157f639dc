package public

import (
	handlershared "github.com/xinna-pharma/internal/http/handlers/shared"
	"github.com/xinna-pharma/internal/http/response"
	"github.com/xinna-pharma/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加入购物车请求
type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1,max=100000"`
}

// UpdateCartItemRequest 修改购物车数量请求
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=100000"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	summary, err := h.CartService.List(principal)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, handlershared.NewCartSummaryView(h.Codec, summary))
}

// CartCount 购物车中不同药品的行数
func (h *Handler) CartCount(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	count, err := h.CartService.Count(principal)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"count": count})
}

// AddCartItem 加入购物车；已有同一药品时合并数量
func (h *Handler) AddCartItem(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	productID, ok := h.decodeToken(c, req.ProductID, "error.product_not_found")
	if !ok {
		return
	}
	item, err := h.CartService.AddToCart(principal, service.AddToCartInput{
		ProductID: productID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, handlershared.NewCartItemView(h.Codec, item))
}

// UpdateCartItem 修改购物车行数量
func (h *Handler) UpdateCartItem(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	itemID, ok := h.decodeParam(c, "id", "error.cart_item_not_found")
	if !ok {
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	item, err := h.CartService.UpdateQuantity(principal, itemID, req.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, handlershared.NewCartItemView(h.Codec, item))
}

// RemoveCartItem 删除购物车行
func (h *Handler) RemoveCartItem(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	itemID, ok := h.decodeParam(c, "id", "error.cart_item_not_found")
	if !ok {
		return
	}
	if err := h.CartService.Remove(principal, itemID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"removed": true})
}
