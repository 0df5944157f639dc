package admin

import (
	handlershared "github.com/xinna-pharma/internal/http/handlers/shared"
	"github.com/xinna-pharma/internal/http/response"
	"github.com/xinna-pharma/internal/service"

	"github.com/gin-gonic/gin"
)

// DistributorRequest 供应商创建请求
type DistributorRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ListDistributors 供应商列表
func (h *Handler) ListDistributors(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	distributors, err := h.CatalogService.ListDistributors(principal)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	result := make([]handlershared.DistributorView, 0, len(distributors))
	for i := range distributors {
		result = append(result, *handlershared.NewDistributorView(h.Codec, &distributors[i]))
	}
	response.Success(c, result)
}

// CreateDistributor 新建供应商
func (h *Handler) CreateDistributor(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	var req DistributorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	distributor, err := h.CatalogService.CreateDistributor(principal, service.DistributorInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, handlershared.NewDistributorView(h.Codec, distributor))
}
