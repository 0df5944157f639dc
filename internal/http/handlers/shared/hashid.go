package shared

import (
	"strings"

	"github.com/xinna-pharma/internal/hashid"
	"github.com/xinna-pharma/internal/http/response"

	"github.com/gin-gonic/gin"
)

// DecodeParam 解码路径参数中的混淆 ID；解码失败按资源不存在返回。
func DecodeParam(c *gin.Context, codec *hashid.Codec, name, notFoundKey string) (uint, bool) {
	return DecodeToken(c, codec, c.Param(name), notFoundKey)
}

// DecodeToken 解码请求体或查询参数中的混淆 ID
func DecodeToken(c *gin.Context, codec *hashid.Codec, token, notFoundKey string) (uint, bool) {
	id, err := codec.Decode(strings.TrimSpace(token))
	if err != nil || id == 0 {
		RespondError(c, response.CodeNotFound, notFoundKey, nil)
		return 0, false
	}
	return id, true
}

// DecodeOptionalToken 解码可选的混淆 ID；空串返回 0
func DecodeOptionalToken(c *gin.Context, codec *hashid.Codec, token, notFoundKey string) (uint, bool) {
	if strings.TrimSpace(token) == "" {
		return 0, true
	}
	return DecodeToken(c, codec, token, notFoundKey)
}
