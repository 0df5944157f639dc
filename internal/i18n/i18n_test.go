package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMatchLocale(t *testing.T) {
	require.Equal(t, LocaleEN, MatchLocale("en-GB,en;q=0.9"))
	require.Equal(t, LocaleID, MatchLocale("id"))
	require.Equal(t, LocaleZH, MatchLocale("zh-Hans-CN"))
	require.Equal(t, LocaleID, MatchLocale("fr-FR"))
}

func TestResolveLocalePrefersQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/v1/cart?lang=en", nil)
	c.Request.Header.Set("Accept-Language", "zh-CN")
	require.Equal(t, LocaleEN, ResolveLocale(c))

	c.Request = httptest.NewRequest("GET", "/api/v1/cart", nil)
	require.Equal(t, DefaultLocale, ResolveLocale(c))
}

func TestTranslateFallbacks(t *testing.T) {
	require.Equal(t, "Your cart is empty", T(LocaleEN, "error.cart_empty"))
	require.Equal(t, "Keranjang masih kosong", T("xx-XX", "error.cart_empty"))
	require.Equal(t, "error.unknown_key", T(LocaleEN, "error.unknown_key"))
	require.Equal(t, "Password must be at least 8 characters", Sprintf(LocaleEN, "error.password_min_length", 8))
}

func TestAllLocalesShareKeys(t *testing.T) {
	base := messages[DefaultLocale]
	for locale, table := range messages {
		require.Len(t, table, len(base), "locale %s", locale)
		for key := range base {
			_, ok := table[key]
			require.True(t, ok, "locale %s missing %s", locale, key)
		}
	}
}
