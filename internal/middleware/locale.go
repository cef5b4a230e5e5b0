package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/jetistik-hub/internal/constants"
	"github.com/yukikurage/jetistik-hub/internal/i18n"
)

// Locale picks the UI language from the lang cookie, falling back to
// defaultLocale for missing or unsupported values.
func Locale(defaultLocale i18n.Locale) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := defaultLocale
		if v, err := c.Cookie(constants.LanguageCookieName); err == nil {
			if l, ok := i18n.ParseLocale(v); ok {
				locale = l
			}
		}
		c.Set(constants.ContextKeyLocale, locale)
		c.Next()
	}
}
