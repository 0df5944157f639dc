package public

import (
	handlershared "github.com/xinna-pharma/internal/http/handlers/shared"
	"github.com/xinna-pharma/internal/http/response"
	"github.com/xinna-pharma/internal/service"

	"github.com/gin-gonic/gin"
)

// UpdateProfileRequest 资料更新请求
type UpdateProfileRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
}

// GetProfile 当前顾客资料
func (h *Handler) GetProfile(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	customer, err := h.AuthService.GetCustomerProfile(principal)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, handlershared.NewCustomerView(h.Codec, customer))
}

// UpdateProfile 更新当前顾客资料
func (h *Handler) UpdateProfile(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	customer, err := h.AuthService.UpdateCustomerProfile(principal, service.UpdateProfileInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
		City:     req.City,
		Postcode: req.Postcode,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, handlershared.NewCustomerView(h.Codec, customer))
}
