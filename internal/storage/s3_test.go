package storage

import (
	"alcyxob/exercise-tracker/internal/config"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEndpointURL(t *testing.T) {
	assert.Equal(t, "", endpointURL("", true))
	assert.Equal(t, "https://minio:9000", endpointURL("minio:9000", true))
	assert.Equal(t, "http://minio:9000", endpointURL("minio:9000", false))
	assert.Equal(t, "http://localhost:9000", endpointURL("http://localhost:9000", true))
}

func TestNewS3StorageDisabled(t *testing.T) {
	_, err := NewS3Storage(context.Background(), config.S3Config{}, zap.NewNop())
	assert.ErrorIs(t, err, ErrStorageDisabled)
}

// Presigning is computed locally, so no S3 endpoint needs to be reachable.
func TestPresignedDownloadURL(t *testing.T) {
	fs, err := NewS3Storage(context.Background(), config.S3Config{
		Endpoint:        "localhost:9000",
		Region:          "us-east-1",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio123",
		BucketName:      "exports",
		UseSSL:          false,
	}, zap.NewNop())
	require.NoError(t, err)

	url, err := fs.GeneratePresignedDownloadURL(context.Background(), "exports/u/log.json", time.Minute)
	require.NoError(t, err)
	assert.Contains(t, url, "http://localhost:9000/exports/exports/u/log.json")
	assert.Contains(t, url, "X-Amz-Expires=60")
}
