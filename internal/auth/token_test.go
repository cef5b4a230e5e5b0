package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, 7*24*time.Hour)

	token, issued, err := issuer.Issue(42)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.ID)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)
	assert.Equal(t, issued.ID, claims.ID)
}

func TestTokenIssuer_Expired(t *testing.T) {
	past := time.Now().Add(-8 * 24 * time.Hour)
	old := NewTokenIssuer(testSecret, 7*24*time.Hour, WithClock(func() time.Time { return past }))
	token, _, err := old.Issue(1)
	require.NoError(t, err)

	_, err = NewTokenIssuer(testSecret, 7*24*time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenIssuer_MaxAgeAppliesToLongLivedTokens(t *testing.T) {
	// signed with a 30 day lifetime, verified by a 7 day policy
	past := time.Now().Add(-10 * 24 * time.Hour)
	long := NewTokenIssuer(testSecret, 30*24*time.Hour, WithClock(func() time.Time { return past }))
	token, _, err := long.Issue(1)
	require.NoError(t, err)

	_, err = NewTokenIssuer(testSecret, 7*24*time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenIssuer_Tampered(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)
	token, _, err := issuer.Issue(1)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = issuer.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewTokenIssuer("other-secret", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNopRevoker(t *testing.T) {
	var r Revoker = NopRevoker{}
	require.NoError(t, r.Revoke(context.Background(), "jti", time.Hour))
	assert.False(t, r.IsRevoked(context.Background(), "jti"))
}

func TestRedisRevoker_FailsOpenWhenUnavailable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	r := NewRedisRevoker(client, zap.NewNop())
	assert.Error(t, r.Revoke(context.Background(), "jti", time.Hour))
	assert.False(t, r.IsRevoked(context.Background(), "jti"))
}
