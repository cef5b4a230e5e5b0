package errors

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/jetistik-hub/internal/constants"
	"github.com/yukikurage/jetistik-hub/internal/i18n"
)

// Error codes
const (
	// Authentication errors
	ErrCodeUnauthorized = "UNAUTHORIZED"

	// Authorization errors
	ErrCodeForbidden = "FORBIDDEN"

	// Validation errors
	ErrCodeInvalidInput = "INVALID_INPUT"

	// Resource errors
	ErrCodeNotFound = "NOT_FOUND"
	ErrCodeGone     = "GONE"

	// Service errors
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// Indicators carried in the ?error= query parameter of a redirect. Each has
// a matching "error.<code>" translation.
const (
	CodeUnauthorized       = "unauthorized"
	CodeInvalidCredentials = "invalid_credentials"
	CodeUsernameTaken      = "username_taken"
	CodeUsernameRequired   = "username_required"
	CodePasswordMismatch   = "password_mismatch"
	CodePasswordTooShort   = "password_too_short"
	CodeInvalidInput       = "invalid_input"
	CodeUnsupportedFile    = "unsupported_file_type"
	CodeFileTooLarge       = "file_too_large"
	CodeEmptyFile          = "empty_file"
	CodeForbidden          = "forbidden"
	CodeNotFound           = "not_found"
	CodeNoAttachment       = "no_attachment"
	CodeFileMissing        = "file_missing"
	CodeInternal           = "internal"
	CodeRegistrationClosed = "registration_closed"
	CodeCannotDeleteSelf   = "cannot_delete_self"
)

// APIError represents a standardized API error response
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError
func NewAPIError(code, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
	}
}

// RespondWithError sends an error response as an HTML page or, when the
// client asks for it, as JSON.
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		c.AbortWithStatusJSON(statusCode, err)
		return
	}

	c.HTML(statusCode, "error.html", gin.H{
		"Status":  statusCode,
		"Code":    err.Code,
		"Message": err.Message,
		"T":       i18n.Translator{Locale: LocaleOf(c)},
	})
	c.Abort()
}

// LocaleOf returns the request locale chosen by the locale middleware.
func LocaleOf(c *gin.Context) i18n.Locale {
	if v, ok := c.Get(constants.ContextKeyLocale); ok {
		if l, ok := v.(i18n.Locale); ok {
			return l
		}
	}
	return i18n.English
}

func message(c *gin.Context, msg, code string) string {
	if msg != "" {
		return msg
	}
	return i18n.T(LocaleOf(c), i18n.ErrorKey(code))
}

// Helper functions for common error responses

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, msg string) {
	RespondWithError(c, http.StatusForbidden, NewAPIError(ErrCodeForbidden, message(c, msg, CodeForbidden)))
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, msg string) {
	RespondWithError(c, http.StatusNotFound, NewAPIError(ErrCodeNotFound, message(c, msg, CodeNotFound)))
}

// Gone sends a 410 response for records whose stored data has disappeared
func Gone(c *gin.Context, msg string) {
	RespondWithError(c, http.StatusGone, NewAPIError(ErrCodeGone, message(c, msg, CodeFileMissing)))
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, msg string) {
	RespondWithError(c, http.StatusBadRequest, NewAPIError(ErrCodeInvalidInput, message(c, msg, CodeInvalidInput)))
}

// InternalError sends a 500 response. The message never carries error details.
func InternalError(c *gin.Context) {
	RespondWithError(c, http.StatusInternalServerError, NewAPIError(ErrCodeInternalError, message(c, "", CodeInternal)))
}

// RedirectWithError sends the client back to location with an error
// indicator that the target page translates.
func RedirectWithError(c *gin.Context, location, code string) {
	u, err := url.Parse(location)
	if err != nil {
		u = &url.URL{Path: location}
	}
	q := u.Query()
	q.Set("error", code)
	u.RawQuery = q.Encode()
	c.Redirect(http.StatusSeeOther, u.String())
	c.Abort()
}

// RedirectToLogin sends an unauthenticated client to the login page. JSON
// clients get a 401 instead.
func RedirectToLogin(c *gin.Context) {
	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		RespondWithError(c, http.StatusUnauthorized, NewAPIError(ErrCodeUnauthorized, message(c, "", CodeUnauthorized)))
		return
	}
	c.Redirect(http.StatusSeeOther, "/login")
	c.Abort()
}
