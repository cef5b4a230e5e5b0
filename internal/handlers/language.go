package handlers

import (
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/jetistik-hub/internal/constants"
	"github.com/yukikurage/jetistik-hub/internal/i18n"
)

const languageCookieMaxAge = 365 * 24 * 60 * 60

// LanguageHandler switches the UI language
type LanguageHandler struct {
	defaultLocale i18n.Locale
	secureCookie  bool
}

// NewLanguageHandler creates a new LanguageHandler
func NewLanguageHandler(defaultLocale i18n.Locale, secureCookie bool) *LanguageHandler {
	return &LanguageHandler{defaultLocale: defaultLocale, secureCookie: secureCookie}
}

// SetLanguage stores the chosen locale and returns to the referring page.
// Unsupported codes select the default locale.
func (h *LanguageHandler) SetLanguage(c *gin.Context) {
	locale, ok := i18n.ParseLocale(c.Param("code"))
	if !ok {
		locale = h.defaultLocale
	}
	c.SetCookie(constants.LanguageCookieName, string(locale), languageCookieMaxAge, "/", "", h.secureCookie, false)

	target := ""
	if ref, err := url.Parse(c.Request.Referer()); err == nil && ref.Host == c.Request.Host {
		target = ref.RequestURI()
	}
	seeOther(c, localPath(target, "/"))
}
