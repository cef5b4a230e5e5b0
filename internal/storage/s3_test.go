package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/jetistik-hub/internal/config"
)

func TestNewS3Store_Validation(t *testing.T) {
	t.Run("missing bucket returns error", func(t *testing.T) {
		_, err := NewS3Store(context.Background(), config.S3Config{Region: "us-east-1"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bucket is required")
	})

	t.Run("valid config creates store", func(t *testing.T) {
		store, err := NewS3Store(context.Background(), config.S3Config{
			Bucket:       "achievements",
			Endpoint:     "http://localhost:9000",
			Region:       "us-east-1",
			AccessKey:    "key",
			SecretKey:    "secret",
			UsePathStyle: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "achievements", store.bucket)
	})
}

func TestS3Store_RequiresKey(t *testing.T) {
	store, err := NewS3Store(context.Background(), config.S3Config{
		Bucket: "b", Region: "us-east-1", AccessKey: "k", SecretKey: "s",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, store.Put(context.Background(), "", nil, ObjectMeta{}), ErrKeyRequired)
	_, err = store.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrKeyRequired)
	assert.ErrorIs(t, store.Delete(context.Background(), ""), ErrKeyRequired)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(&types.NoSuchKey{}))
	assert.True(t, isNotFound(&types.NotFound{}))
	assert.True(t, isNotFound(errors.New("api error NoSuchKey: gone")))
	assert.False(t, isNotFound(errors.New("access denied")))
}
