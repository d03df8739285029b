// Package storagemock provides a testify-based mock of storage.FileStorage
// for service and handler tests.
package storagemock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// FileStorageMock implements storage.FileStorage.
type FileStorageMock struct {
	mock.Mock
}

func (m *FileStorageMock) PutObject(ctx context.Context, objectKey string, contentType string, body []byte) error {
	args := m.Called(ctx, objectKey, contentType, body)
	return args.Error(0)
}

func (m *FileStorageMock) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, expires)
	return args.String(0), args.Error(1)
}

func (m *FileStorageMock) DeleteObject(ctx context.Context, objectKey string) error {
	args := m.Called(ctx, objectKey)
	return args.Error(0)
}
