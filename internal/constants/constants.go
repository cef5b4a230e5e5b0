package constants

import "time"

// Context keys
const (
	ContextKeyUser     = "user"
	ContextKeyClaims   = "claims"
	ContextKeyLocale   = "locale"
	ContextKeyRecordID = "record_id"
)

// Cookie names
const (
	TokenCookieName    = "jetistik_token"
	LanguageCookieName = "lang"
	SessionCookieName  = "jetistik_session"
)

// Flash keys
const (
	FlashNotice = "notice"
)

// Auth
const (
	MinPasswordLength = 6
	MinTokenMaxAge    = 7 * 24 * time.Hour
	MaxTokenMaxAge    = 30 * 24 * time.Hour
)

// Uploads
const (
	MaxUploadSize = 5 * 1024 * 1024
	// multipart overhead on top of the file itself
	MaxRequestBodySize = MaxUploadSize + 1024*1024
	MaxFormFieldSize   = 64 * 1024
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
