// Package router assembles the gin engine and its routes.
package router

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/jetistik-hub/internal/auth"
	"github.com/yukikurage/jetistik-hub/internal/constants"
	"github.com/yukikurage/jetistik-hub/internal/handlers"
	"github.com/yukikurage/jetistik-hub/internal/i18n"
	"github.com/yukikurage/jetistik-hub/internal/logger"
	"github.com/yukikurage/jetistik-hub/internal/middleware"
	"github.com/yukikurage/jetistik-hub/internal/services"
	"github.com/yukikurage/jetistik-hub/internal/web"
	"go.uber.org/zap"
)

// Dependencies are the services and settings the routes are built from.
type Dependencies struct {
	Logger             *zap.Logger
	SessionStore       sessions.Store
	Issuer             *auth.TokenIssuer
	Revoker            auth.Revoker
	AuthService        *services.AuthService
	AchievementService *services.AchievementService
	UserService        *services.UserService
	DefaultLocale      i18n.Locale
	SecureCookie       bool
	AllowRegistration  bool
}

// New builds the engine with middleware, templates and every route.
func New(deps Dependencies) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.MaxMultipartMemory = constants.MaxRequestBodySize

	r.Use(logger.GinMiddleware(deps.Logger))
	r.Use(logger.Recovery(deps.Logger))
	r.Use(sessions.Sessions(constants.SessionCookieName, deps.SessionStore))
	r.Use(middleware.Locale(deps.DefaultLocale))
	r.Use(middleware.LoadUser(deps.Issuer, deps.Revoker, deps.AuthService))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(deps.AuthService, deps.Issuer, deps.Revoker, handlers.AuthHandlerConfig{
		SecureCookie:      deps.SecureCookie,
		AllowRegistration: deps.AllowRegistration,
	})
	achievementHandler := handlers.NewAchievementHandler(deps.AchievementService)
	adminHandler := handlers.NewAdminHandler(deps.UserService)
	languageHandler := handlers.NewLanguageHandler(deps.DefaultLocale, deps.SecureCookie)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Jetistik Hub is running",
		})
	})

	// Public routes
	r.GET("/", authHandler.Root)
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	r.GET("/register", authHandler.RegisterPage)
	r.POST("/register", authHandler.Register)
	r.GET("/lang/:code", languageHandler.SetLanguage)

	// Authenticated routes
	authed := r.Group("")
	authed.Use(middleware.RequireAuth())
	{
		authed.GET("/logout", authHandler.Logout)
		authed.GET("/home", achievementHandler.Home)
		authed.POST("/add-achievement", achievementHandler.Create)
		authed.GET("/download/:id", middleware.RequireRecordID(), achievementHandler.Download)
		authed.POST("/achievement/:id/delete", middleware.RequireRecordID(), achievementHandler.Delete)
	}

	// Admin routes
	admin := authed.Group("")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/moderate", achievementHandler.Moderate)
		admin.POST("/achievement/:id/approve", middleware.RequireRecordID(), achievementHandler.Approve)
		admin.POST("/achievement/:id/reject", middleware.RequireRecordID(), achievementHandler.Reject)
		admin.GET("/admin/users", adminHandler.Users)
		admin.POST("/create-user", adminHandler.CreateUser)
		admin.POST("/admin/users/:id/delete", middleware.RequireRecordID(), adminHandler.DeleteUser)
	}

	return r, nil
}
