package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/jetistik-hub/internal/dto"
	apierrors "github.com/yukikurage/jetistik-hub/internal/errors"
	"github.com/yukikurage/jetistik-hub/internal/i18n"
	"github.com/yukikurage/jetistik-hub/internal/middleware"
	"github.com/yukikurage/jetistik-hub/internal/services"
	"github.com/yukikurage/jetistik-hub/internal/utils"
)

// AdminHandler handles user management pages
type AdminHandler struct {
	userService *services.UserService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(userService *services.UserService) *AdminHandler {
	return &AdminHandler{
		userService: userService,
	}
}

// Users renders the user list together with the create-user form
func (h *AdminHandler) Users(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	params := utils.GetPaginationParams(c)

	users, total, err := h.userService.ListUsers(c.Request.Context(), user, params)
	if err != nil {
		respondAuthError(c, err, "/admin/users")
		return
	}

	body := dto.ToUserListResponse(users, params, total)
	render(c, http.StatusOK, "admin_users.html", gin.H{
		"Users":      body.Users,
		"Pagination": body.Pagination,
	}, body)
}

// CreateUser provisions an account from the admin form
func (h *AdminHandler) CreateUser(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	profile, ok := bindProfile(c)
	if !ok {
		apierrors.RedirectWithError(c, "/admin/users", apierrors.CodeInvalidInput)
		return
	}

	_, err := h.userService.CreateUser(c.Request.Context(), user, services.CreateUserInput{
		Username: c.PostForm("username"),
		Password: c.PostForm("password"),
		IsAdmin:  isChecked(c.PostForm("is_admin")),
		Profile:  profile,
	})
	if err != nil {
		respondAuthError(c, err, "/admin/users")
		return
	}

	flash(c, i18n.KeyUserCreated)
	seeOther(c, "/admin/users")
}

// DeleteUser removes a user and everything they submitted
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id, _ := middleware.GetRecordID(c)

	if err := h.userService.DeleteUser(c.Request.Context(), user, id); err != nil {
		respondAuthError(c, err, "/admin/users")
		return
	}

	flash(c, i18n.KeyUserDeleted)
	seeOther(c, "/admin/users")
}

func isChecked(v string) bool {
	switch v {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}
