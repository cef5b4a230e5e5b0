package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/jetistik-hub/internal/auth"
	"github.com/yukikurage/jetistik-hub/internal/constants"
	apierrors "github.com/yukikurage/jetistik-hub/internal/errors"
	"github.com/yukikurage/jetistik-hub/internal/logger"
	"github.com/yukikurage/jetistik-hub/internal/models"
	"github.com/yukikurage/jetistik-hub/internal/services"
	"go.uber.org/zap"
)

// LoadUser resolves the token cookie into a user. Missing, tampered, expired
// or revoked tokens leave the request anonymous.
func LoadUser(issuer *auth.TokenIssuer, revoker auth.Revoker, authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(constants.TokenCookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		claims, err := issuer.Verify(token)
		if err != nil {
			c.Next()
			return
		}
		if revoker.IsRevoked(c.Request.Context(), claims.ID) {
			c.Next()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			c.Next()
			return
		}

		user, err := authService.GetUser(c.Request.Context(), userID)
		if err != nil {
			if !errors.Is(err, services.ErrUserNotFound) {
				logger.FromGin(c).Error("failed to load user", zap.Uint64("user_id", userID), zap.Error(err))
			}
			c.Next()
			return
		}

		c.Set(constants.ContextKeyUser, user)
		c.Set(constants.ContextKeyClaims, claims)
		c.Next()
	}
}

// RequireAuth redirects anonymous requests to the login page
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			apierrors.RedirectToLogin(c)
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects authenticated non-admin users. It must run after
// RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			apierrors.RedirectToLogin(c)
			return
		}
		if !user.IsAdmin {
			apierrors.Forbidden(c, "")
			return
		}
		c.Next()
	}
}

// CurrentUser retrieves the authenticated user from context
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}

// CurrentClaims retrieves the verified token claims from context
func CurrentClaims(c *gin.Context) (*auth.Claims, bool) {
	v, exists := c.Get(constants.ContextKeyClaims)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
