package admin

import (
	"strings"

	handlershared "github.com/xinna-pharma/internal/http/handlers/shared"
	"github.com/xinna-pharma/internal/http/response"
	"github.com/xinna-pharma/internal/models"
	"github.com/xinna-pharma/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductRequest 药品创建/编辑请求；initial_stock 仅在创建时生效
type ProductRequest struct {
	CategoryID   string       `json:"category_id" binding:"required"`
	Name         string       `json:"name" binding:"required"`
	Price        models.Money `json:"price"`
	Description  string       `json:"description"`
	Images       []string     `json:"images"`
	InitialStock int          `json:"initial_stock" binding:"min=0,max=2147483647"`
}

// ListProducts 后台药品列表
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	categoryID, ok := h.decodeOptionalToken(c, c.Query("category_id"), "error.category_not_found")
	if !ok {
		return
	}
	products, total, err := h.CatalogService.ListProducts(service.ProductListInput{
		Page:       page,
		PageSize:   pageSize,
		CategoryID: categoryID,
		Search:     strings.TrimSpace(c.Query("search")),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, handlershared.NewProductViews(h.Codec, products), handlershared.BuildPagination(page, pageSize, total))
}

func (h *Handler) bindProductRequest(c *gin.Context) (service.ProductInput, bool) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return service.ProductInput{}, false
	}
	categoryID, ok := h.decodeToken(c, req.CategoryID, "error.category_not_found")
	if !ok {
		return service.ProductInput{}, false
	}
	return service.ProductInput{
		CategoryID:   categoryID,
		Name:         req.Name,
		Price:        req.Price,
		Description:  req.Description,
		Images:       req.Images,
		InitialStock: req.InitialStock,
	}, true
}

// CreateProduct 新建药品
func (h *Handler) CreateProduct(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	input, ok := h.bindProductRequest(c)
	if !ok {
		return
	}
	product, err := h.CatalogService.CreateProduct(principal, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, handlershared.NewProductView(h.Codec, product))
}

// UpdateProduct 编辑药品基础信息（不改库存）
func (h *Handler) UpdateProduct(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	productID, ok := h.decodeParam(c, "id", "error.product_not_found")
	if !ok {
		return
	}
	input, ok := h.bindProductRequest(c)
	if !ok {
		return
	}
	product, err := h.CatalogService.UpdateProduct(principal, productID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, handlershared.NewProductView(h.Codec, product))
}

// DeleteProduct 删除药品
func (h *Handler) DeleteProduct(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	productID, ok := h.decodeParam(c, "id", "error.product_not_found")
	if !ok {
		return
	}
	if err := h.CatalogService.DeleteProduct(principal, productID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// LowStockProducts 低库存快照
func (h *Handler) LowStockProducts(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	snapshot, err := h.InventoryService.LowStockSnapshot(c.Request.Context(), principal)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, snapshot)
}
