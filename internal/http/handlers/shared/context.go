package shared

import (
	"github.com/xinna-pharma/internal/http/response"
	"github.com/xinna-pharma/internal/service"

	"github.com/gin-gonic/gin"
)

// PrincipalContextKey 鉴权中间件写入主体的上下文键
const PrincipalContextKey = "principal"

// SetPrincipal 写入当前请求主体
func SetPrincipal(c *gin.Context, principal service.Principal) {
	c.Set(PrincipalContextKey, principal)
}

// GetPrincipal 读取当前请求主体，缺失时直接返回 401 响应。
func GetPrincipal(c *gin.Context) (service.Principal, bool) {
	value, exists := c.Get(PrincipalContextKey)
	if !exists {
		RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
		return service.Principal{}, false
	}
	principal, ok := value.(service.Principal)
	if !ok || principal.ID == 0 {
		RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
		return service.Principal{}, false
	}
	return principal, true
}
