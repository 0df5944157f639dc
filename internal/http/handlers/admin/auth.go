package admin

import (
	"time"

	"github.com/xinna-pharma/internal/authz"
	handlershared "github.com/xinna-pharma/internal/http/handlers/shared"
	"github.com/xinna-pharma/internal/http/response"

	"github.com/gin-gonic/gin"
)

// LoginRequest 员工登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 员工登录
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	staff, token, expiresAt, err := h.AuthService.StaffLogin(req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{
		"staff":      handlershared.NewStaffView(h.Codec, staff),
		"token":      token,
		"expires_at": expiresAt.Format(time.RFC3339),
	})
}

// Me 当前员工资料
func (h *Handler) Me(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		return
	}
	staff, err := h.AuthService.GetStaffProfile(principal)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	permissions, err := h.AuthzService.RolePermissions(staff.Role)
	if err != nil {
		handlershared.RequestLog(c).Warnw("admin_me_permissions_failed", "staff_id", staff.ID, "role", staff.Role, "error", err)
		permissions = []authz.Policy{}
	}
	response.Success(c, gin.H{
		"staff":       handlershared.NewStaffView(h.Codec, staff),
		"permissions": permissions,
	})
}
