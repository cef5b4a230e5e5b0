package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/jetistik-hub/internal/constants"
	"github.com/yukikurage/jetistik-hub/internal/dto"
	apierrors "github.com/yukikurage/jetistik-hub/internal/errors"
	"github.com/yukikurage/jetistik-hub/internal/i18n"
	"github.com/yukikurage/jetistik-hub/internal/logger"
	"github.com/yukikurage/jetistik-hub/internal/middleware"
	"go.uber.org/zap"
)

// render writes the named template, or body as JSON when the client prefers it.
func render(c *gin.Context, status int, name string, data gin.H, body any) {
	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		c.JSON(status, body)
		return
	}

	page := pageData(c)
	for k, v := range data {
		page[k] = v
	}
	c.HTML(status, name, page)
}

// pageData holds the values every template expects.
func pageData(c *gin.Context) gin.H {
	locale := apierrors.LocaleOf(c)
	data := gin.H{
		"T":       i18n.Translator{Locale: locale},
		"Locale":  locale,
		"Locales": i18n.Supported,
		"Notice":  popFlash(c),
		"Error":   errorMessage(locale, c.Query("error")),
	}
	if user, ok := middleware.CurrentUser(c); ok {
		u := dto.ToUserDTO(*user)
		data["User"] = &u
	}
	return data
}

// errorMessage translates a ?error= indicator. Unknown indicators get the
// generic form message so arbitrary query text is never echoed.
func errorMessage(locale i18n.Locale, code string) string {
	if code == "" {
		return ""
	}
	key := i18n.ErrorKey(code)
	msg := i18n.T(locale, key)
	if msg == string(key) {
		return i18n.T(locale, i18n.KeyErrInvalidInput)
	}
	return msg
}

// flash stores a one-shot notice shown on the next page.
func flash(c *gin.Context, key i18n.Key) {
	session := sessions.Default(c)
	session.AddFlash(string(key), constants.FlashNotice)
	if err := session.Save(); err != nil {
		logger.FromGin(c).Warn("failed to save flash", zap.Error(err))
	}
}

func popFlash(c *gin.Context) string {
	if _, ok := c.Get(sessions.DefaultKey); !ok {
		return ""
	}
	session := sessions.Default(c)
	flashes := session.Flashes(constants.FlashNotice)
	if len(flashes) == 0 {
		return ""
	}
	if err := session.Save(); err != nil {
		logger.FromGin(c).Warn("failed to clear flash", zap.Error(err))
	}
	key, _ := flashes[0].(string)
	return i18n.T(apierrors.LocaleOf(c), i18n.Key(key))
}

// seeOther redirects after a successful form post.
func seeOther(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

// localPath returns target when it is a path on this site, otherwise fallback.
func localPath(target, fallback string) string {
	if target == "" {
		return fallback
	}
	u, err := url.Parse(target)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return fallback
	}
	return u.RequestURI()
}

func internalError(c *gin.Context, msg string, err error) {
	logger.FromGin(c).Error(msg, zap.Error(err))
	apierrors.InternalError(c)
}
