package admin

import (
	"strings"
	"time"

	handlershared "github.com/xinna-pharma/internal/http/handlers/shared"
	"github.com/xinna-pharma/internal/http/response"
	"github.com/xinna-pharma/internal/models"
	"github.com/xinna-pharma/internal/service"

	"github.com/gin-gonic/gin"
)

// PurchaseLineRequest 采购行请求
type PurchaseLineRequest struct {
	ProductID string       `json:"product_id" binding:"required"`
	Quantity  int          `json:"quantity"`
	UnitCost  models.Money `json:"unit_cost"`
}

// PurchaseRequest 采购入库请求
type PurchaseRequest struct {
	DistributorID string                `json:"distributor_id" binding:"required"`
	InvoiceNo     string                `json:"invoice_no" binding:"required"`
	PurchaseDate  string                `json:"purchase_date"`
	Lines         []PurchaseLineRequest `json:"lines"`
}

// ListPurchases 采购单列表
func (h *Handler) ListPurchases(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	page, pageSize := handlershared.ParsePagination(c)
	distributorID, ok := h.decodeOptionalToken(c, c.Query("distributor_id"), "error.distributor_not_found")
	if !ok {
		return
	}
	dateFrom, ok := parseDateQuery(c, "date_from")
	if !ok {
		return
	}
	dateTo, ok := parseDateQuery(c, "date_to")
	if !ok {
		return
	}
	purchases, total, err := h.PurchaseService.ListPurchases(principal, service.PurchaseListInput{
		Page:          page,
		PageSize:      pageSize,
		DistributorID: distributorID,
		InvoiceNo:     strings.TrimSpace(c.Query("invoice_no")),
		DateFrom:      dateFrom,
		DateTo:        dateTo,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	result := make([]handlershared.PurchaseView, 0, len(purchases))
	for i := range purchases {
		result = append(result, *handlershared.NewPurchaseView(h.Codec, &purchases[i]))
	}
	response.SuccessWithPage(c, result, handlershared.BuildPagination(page, pageSize, total))
}

// CreatePurchase 登记采购入库，同一事务内增加库存
func (h *Handler) CreatePurchase(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	distributorID, ok := h.decodeToken(c, req.DistributorID, "error.distributor_not_found")
	if !ok {
		return
	}
	purchaseDate := time.Now()
	if strings.TrimSpace(req.PurchaseDate) != "" {
		parsed, ok := parseDate(req.PurchaseDate)
		if !ok {
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
			return
		}
		purchaseDate = parsed
	}
	lines := make([]service.PurchaseLineInput, 0, len(req.Lines))
	for _, line := range req.Lines {
		productID, ok := h.decodeToken(c, line.ProductID, "error.product_not_found")
		if !ok {
			return
		}
		lines = append(lines, service.PurchaseLineInput{
			ProductID: productID,
			Quantity:  line.Quantity,
			UnitCost:  line.UnitCost,
		})
	}

	purchase, err := h.PurchaseService.RecordPurchase(principal, service.RecordPurchaseInput{
		DistributorID: distributorID,
		InvoiceNo:     req.InvoiceNo,
		PurchaseDate:  purchaseDate,
		Lines:         lines,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, handlershared.NewPurchaseView(h.Codec, purchase))
}

// GetPurchase 采购单详情
func (h *Handler) GetPurchase(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	purchaseID, ok := h.decodeParam(c, "id", "error.purchase_not_found")
	if !ok {
		return
	}
	purchase, err := h.PurchaseService.GetPurchase(principal, purchaseID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, handlershared.NewPurchaseView(h.Codec, purchase))
}

// DeletePurchase 删除采购单；库存不回退
func (h *Handler) DeletePurchase(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	purchaseID, ok := h.decodeParam(c, "id", "error.purchase_not_found")
	if !ok {
		return
	}
	if err := h.PurchaseService.DeletePurchase(principal, purchaseID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
