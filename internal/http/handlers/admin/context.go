package admin

import (
	"strings"
	"time"

	handlershared "github.com/xinna-pharma/internal/http/handlers/shared"
	"github.com/xinna-pharma/internal/http/response"
	"github.com/xinna-pharma/internal/service"

	"github.com/gin-gonic/gin"
)

func getPrincipal(c *gin.Context) (service.Principal, bool) {
	return handlershared.GetPrincipal(c)
}

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func respondServiceError(c *gin.Context, err error) {
	handlershared.RespondServiceError(c, err)
}

func (h *Handler) decodeParam(c *gin.Context, name, notFoundKey string) (uint, bool) {
	return handlershared.DecodeParam(c, h.Codec, name, notFoundKey)
}

func (h *Handler) decodeToken(c *gin.Context, token, notFoundKey string) (uint, bool) {
	return handlershared.DecodeToken(c, h.Codec, token, notFoundKey)
}

func (h *Handler) decodeOptionalToken(c *gin.Context, token, notFoundKey string) (uint, bool) {
	return handlershared.DecodeOptionalToken(c, h.Codec, token, notFoundKey)
}

var dateLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseDateQuery 读取可选日期查询参数；格式错误时直接返回 400
func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	t, ok := parseDate(raw)
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return nil, false
	}
	return &t, true
}
