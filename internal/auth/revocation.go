package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const revokedKeyPrefix = "jetistik:revoked:"

// Revoker remembers logged-out token ids until they would have expired anyway.
type Revoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) bool
}

// NopRevoker keeps tokens stateless: logout only drops the cookie.
type NopRevoker struct{}

func (NopRevoker) Revoke(context.Context, string, time.Duration) error { return nil }
func (NopRevoker) IsRevoked(context.Context, string) bool               { return false }

// RedisRevoker stores revoked ids in Redis. Redis failures are logged and
// treated as "not revoked" so an outage never locks users out.
type RedisRevoker struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisRevoker wraps an existing client.
func NewRedisRevoker(client *redis.Client, logger *zap.Logger) *RedisRevoker {
	return &RedisRevoker{client: client, logger: logger}
}

// Revoke marks tokenID as revoked for ttl.
func (r *RedisRevoker) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" || ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, revokedKeyPrefix+tokenID, 1, ttl).Err(); err != nil {
		r.logger.Warn("failed to revoke token", zap.String("jti", tokenID), zap.Error(err))
		return err
	}
	return nil
}

// IsRevoked reports whether tokenID was revoked.
func (r *RedisRevoker) IsRevoked(ctx context.Context, tokenID string) bool {
	if tokenID == "" {
		return false
	}
	n, err := r.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		r.logger.Warn("revocation check failed", zap.String("jti", tokenID), zap.Error(err))
		return false
	}
	return n > 0
}
