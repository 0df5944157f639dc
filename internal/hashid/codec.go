// Package hashid 将内部自增 ID 与对外短串互相转换，避免在 URL 与接口中暴露连续主键。
package hashid

import (
	"errors"
	"math"
	"strings"

	"github.com/speps/go-hashids/v2"
)

const defaultMinLength = 8

// ErrInvalidToken 无法解析的对外 ID
var ErrInvalidToken = errors.New("invalid id token")

// Codec 对外 ID 编解码器，同一 salt 下结果确定
type Codec struct {
	h *hashids.HashID
}

// New 创建编解码器
func New(salt string, minLength int) (*Codec, error) {
	data := hashids.NewData()
	data.Salt = strings.TrimSpace(salt)
	if minLength <= 0 {
		minLength = defaultMinLength
	}
	data.MinLength = minLength
	h, err := hashids.NewWithData(data)
	if err != nil {
		return nil, err
	}
	return &Codec{h: h}, nil
}

// MustNew 创建编解码器，失败时 panic（仅用于启动阶段）
func MustNew(salt string, minLength int) *Codec {
	codec, err := New(salt, minLength)
	if err != nil {
		panic(err)
	}
	return codec
}

// Encode 编码正整数 ID；有效范围为 1..math.MaxInt64，范围外返回空串
func (c *Codec) Encode(id uint) string {
	if c == nil || id == 0 || uint64(id) > math.MaxInt64 {
		return ""
	}
	token, err := c.h.EncodeInt64([]int64{int64(id)})
	if err != nil {
		return ""
	}
	return token
}

// Decode 解码对外 ID；格式错误或非本 salt 生成的串返回 ErrInvalidToken
func (c *Codec) Decode(token string) (uint, error) {
	if c == nil {
		return 0, ErrInvalidToken
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, ErrInvalidToken
	}
	values, err := decodeSafe(c.h, token)
	if err != nil || len(values) != 1 || values[0] <= 0 {
		return 0, ErrInvalidToken
	}
	// 解码结果需能重新编码回原串，排除碰巧可解析的外来串
	if c.Encode(uint(values[0])) != token {
		return 0, ErrInvalidToken
	}
	return uint(values[0]), nil
}

func decodeSafe(h *hashids.HashID, token string) (values []int64, err error) {
	defer func() {
		if r := recover(); r != nil {
			values = nil
			err = ErrInvalidToken
		}
	}()
	return h.DecodeInt64WithError(token)
}
