package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/jetistik-hub/internal/auth"
	"github.com/yukikurage/jetistik-hub/internal/constants"
	apierrors "github.com/yukikurage/jetistik-hub/internal/errors"
	"github.com/yukikurage/jetistik-hub/internal/logger"
	"github.com/yukikurage/jetistik-hub/internal/middleware"
	"github.com/yukikurage/jetistik-hub/internal/models"
	"github.com/yukikurage/jetistik-hub/internal/services"
	"go.uber.org/zap"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService       *services.AuthService
	issuer            *auth.TokenIssuer
	revoker           auth.Revoker
	secureCookie      bool
	allowRegistration bool
}

// AuthHandlerConfig holds the settings AuthHandler needs beyond its services.
type AuthHandlerConfig struct {
	SecureCookie      bool
	AllowRegistration bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, issuer *auth.TokenIssuer, revoker auth.Revoker, cfg AuthHandlerConfig) *AuthHandler {
	return &AuthHandler{
		authService:       authService,
		issuer:            issuer,
		revoker:           revoker,
		secureCookie:      cfg.SecureCookie,
		allowRegistration: cfg.AllowRegistration,
	}
}

// Root sends visitors to their cabinet or to the login page.
func (h *AuthHandler) Root(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		seeOther(c, "/home")
		return
	}
	seeOther(c, "/login")
}

// LoginPage renders the login form.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		seeOther(c, "/home")
		return
	}
	render(c, http.StatusOK, "login.html", gin.H{
		"AllowRegistration": h.allowRegistration,
	}, gin.H{"allow_registration": h.allowRegistration})
}

// Login authenticates a user and sets the token cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	user, err := h.authService.Authenticate(c.Request.Context(), c.PostForm("username"), c.PostForm("password"))
	if err != nil {
		respondAuthError(c, err, "/login")
		return
	}

	if err := h.startSession(c, user); err != nil {
		internalError(c, "failed to issue token", err)
		return
	}
	seeOther(c, "/home")
}

// Logout revokes the current token and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if claims, ok := middleware.CurrentClaims(c); ok && claims.ExpiresAt != nil {
		// a failed revocation still logs the browser out
		_ = h.revoker.Revoke(c.Request.Context(), claims.ID, time.Until(claims.ExpiresAt.Time))
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.TokenCookieName, "", -1, "/", "", h.secureCookie, true)
	seeOther(c, "/login")
}

// RegisterPage renders the self-registration form.
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	if !h.allowRegistration {
		apierrors.RedirectWithError(c, "/login", apierrors.CodeRegistrationClosed)
		return
	}
	render(c, http.StatusOK, "register.html", nil, gin.H{"allow_registration": true})
}

// Register creates an account and logs it in.
func (h *AuthHandler) Register(c *gin.Context) {
	if !h.allowRegistration {
		apierrors.RedirectWithError(c, "/login", apierrors.CodeRegistrationClosed)
		return
	}

	profile, ok := bindProfile(c)
	if !ok {
		apierrors.RedirectWithError(c, "/register", apierrors.CodeInvalidInput)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Username:        c.PostForm("username"),
		Password:        c.PostForm("password"),
		ConfirmPassword: c.PostForm("confirm_password"),
		Profile:         profile,
	})
	if err != nil {
		respondAuthError(c, err, "/register")
		return
	}

	logger.FromGin(c).Info("user registered", zap.Uint64("user_id", user.ID), zap.String("username", user.Username))

	if err := h.startSession(c, user); err != nil {
		internalError(c, "failed to issue token", err)
		return
	}
	seeOther(c, "/home")
}

func (h *AuthHandler) startSession(c *gin.Context, user *models.User) error {
	token, _, err := h.issuer.Issue(user.ID)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.TokenCookieName, token, int(h.issuer.MaxAge().Seconds()), "/", "", h.secureCookie, true)
	return nil
}

// bindProfile reads the optional profile fields shared by registration and
// admin user creation.
func bindProfile(c *gin.Context) (services.Profile, bool) {
	profile := services.Profile{
		FullName: c.PostForm("full_name"),
		School:   c.PostForm("school"),
		Subject:  c.PostForm("subject"),
		Category: c.PostForm("category"),
	}
	if raw := strings.TrimSpace(c.PostForm("experience")); raw != "" {
		years, err := strconv.Atoi(raw)
		if err != nil || years < 0 {
			return services.Profile{}, false
		}
		profile.Experience = years
	}
	return profile, true
}

func respondAuthError(c *gin.Context, err error, location string) {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.RedirectWithError(c, location, apierrors.CodeInvalidCredentials)
	case errors.Is(err, services.ErrUsernameRequired):
		apierrors.RedirectWithError(c, location, apierrors.CodeUsernameRequired)
	case errors.Is(err, services.ErrPasswordTooShort):
		apierrors.RedirectWithError(c, location, apierrors.CodePasswordTooShort)
	case errors.Is(err, services.ErrPasswordMismatch):
		apierrors.RedirectWithError(c, location, apierrors.CodePasswordMismatch)
	case errors.Is(err, services.ErrUsernameTaken):
		apierrors.RedirectWithError(c, location, apierrors.CodeUsernameTaken)
	case errors.Is(err, services.ErrForbidden):
		apierrors.Forbidden(c, "")
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "")
	case errors.Is(err, services.ErrCannotDeleteSelf):
		apierrors.RedirectWithError(c, location, apierrors.CodeCannotDeleteSelf)
	default:
		internalError(c, "account operation failed", err)
	}
}
