package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

// 支持的语言
const (
	LocaleEN = "en-US"
	LocaleID = "id-ID"
	LocaleZH = "zh-CN"

	// DefaultLocale 客户端未声明语言时使用
	DefaultLocale = LocaleID
)

var (
	supportedTags = []language.Tag{
		language.Indonesian,
		language.AmericanEnglish,
		language.SimplifiedChinese,
	}
	tagLocales = map[language.Tag]string{
		language.Indonesian:        LocaleID,
		language.AmericanEnglish:   LocaleEN,
		language.SimplifiedChinese: LocaleZH,
	}
	matcher = language.NewMatcher(supportedTags)
)

// ResolveLocale 按 ?lang= 参数与 Accept-Language 协商语言
func ResolveLocale(c *gin.Context) string {
	if c == nil || c.Request == nil {
		return DefaultLocale
	}
	candidates := make([]string, 0, 2)
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		candidates = append(candidates, lang)
	}
	if header := strings.TrimSpace(c.GetHeader("Accept-Language")); header != "" {
		candidates = append(candidates, header)
	}
	if len(candidates) == 0 {
		return DefaultLocale
	}
	return MatchLocale(candidates...)
}

// MatchLocale 将任意语言声明映射到支持的语言
func MatchLocale(candidates ...string) string {
	_, index := language.MatchStrings(matcher, candidates...)
	if index < 0 || index >= len(supportedTags) {
		return DefaultLocale
	}
	if locale, ok := tagLocales[supportedTags[index]]; ok {
		return locale
	}
	return DefaultLocale
}

// T 翻译文案；缺失时回退到默认语言，再回退到 key 本身
func T(locale, key string) string {
	if table, ok := messages[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Sprintf 翻译带参数的文案
func Sprintf(locale, key string, args ...interface{}) string {
	if len(args) == 0 {
		return T(locale, key)
	}
	return fmt.Sprintf(T(locale, key), args...)
}
