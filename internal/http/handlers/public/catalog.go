package public

import (
	"strings"

	handlershared "github.com/xinna-pharma/internal/http/handlers/shared"
	"github.com/xinna-pharma/internal/http/response"
	"github.com/xinna-pharma/internal/models"
	"github.com/xinna-pharma/internal/service"

	"github.com/gin-gonic/gin"
)

// ListProducts 药品列表（支持分类、关键字、仅看有货）
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	var categoryID uint
	if token := strings.TrimSpace(c.Query("category_id")); token != "" {
		id, ok := h.decodeToken(c, token, "error.category_not_found")
		if !ok {
			return
		}
		categoryID = id
	}
	inStock := strings.EqualFold(strings.TrimSpace(c.Query("in_stock")), "true") || c.Query("in_stock") == "1"

	products, total, err := h.CatalogService.ListProducts(service.ProductListInput{
		Page:        page,
		PageSize:    pageSize,
		CategoryID:  categoryID,
		Search:      c.Query("search"),
		InStockOnly: inStock,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, handlershared.NewProductViews(h.Codec, products), handlershared.BuildPagination(page, pageSize, total))
}

// GetProduct 药品详情
func (h *Handler) GetProduct(c *gin.Context) {
	productID, ok := h.decodeParam(c, "id", "error.product_not_found")
	if !ok {
		return
	}
	product, err := h.CatalogService.GetProduct(productID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, handlershared.NewProductView(h.Codec, product))
}

// ListCategories 分类列表
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CatalogService.ListCategories()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	result := make([]handlershared.CategoryView, 0, len(categories))
	for i := range categories {
		result = append(result, *handlershared.NewCategoryView(h.Codec, &categories[i]))
	}
	response.Success(c, result)
}

// ListPaymentMethods 启用中的支付方式
func (h *Handler) ListPaymentMethods(c *gin.Context) {
	methods, err := h.CatalogService.ListPaymentMethods()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	result := make([]handlershared.MethodView, 0, len(methods))
	for _, method := range methods {
		result = append(result, handlershared.MethodView{
			ID:          h.Codec.Encode(method.ID),
			Name:        method.Name,
			Description: method.Description,
		})
	}
	response.Success(c, result)
}

// ListShippingMethods 启用中的配送方式（含参考运费）
func (h *Handler) ListShippingMethods(c *gin.Context) {
	methods, err := h.CatalogService.ListShippingMethods()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	result := make([]handlershared.MethodView, 0, len(methods))
	for _, method := range methods {
		cost := models.NewMoneyFromDecimal(method.Cost.Decimal)
		result = append(result, handlershared.MethodView{
			ID:          h.Codec.Encode(method.ID),
			Name:        method.Name,
			Description: method.Description,
			Cost:        &cost,
		})
	}
	response.Success(c, result)
}
