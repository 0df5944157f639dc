package public

import (
	handlershared "github.com/xinna-pharma/internal/http/handlers/shared"
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
