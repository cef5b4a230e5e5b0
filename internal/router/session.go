package router

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
)

// SessionConfig selects and configures the flash-session backend.
type SessionConfig struct {
	Secret        string
	RedisAddr     string
	RedisPassword string
	Secure        bool
}

// NewSessionStore returns a Redis-backed store when an address is configured,
// otherwise a signed cookie store.
func NewSessionStore(cfg SessionConfig) (sessions.Store, error) {
	var (
		store sessions.Store
		err   error
	)
	if cfg.RedisAddr != "" {
		store, err = redisStore.NewStore(
			10,    // Redis pool size
			"tcp", // network type
			cfg.RedisAddr,
			"", // username (empty for default user)
			cfg.RedisPassword,
			[]byte(cfg.Secret),
		)
		if err != nil {
			return nil, err
		}
	} else {
		store = cookie.NewStore([]byte(cfg.Secret))
	}

	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return store, nil
}
