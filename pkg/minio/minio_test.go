package minio

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	cfg := Config{Endpoint: "localhost", AccessKey: "a", SecretKey: "s", Region: "us-east-1", Bucket: "mindmaps"}
	require.NoError(t, validateConfig(&cfg))
	assert.Equal(t, "localhost:9000", cfg.Endpoint)

	missing := cfg
	missing.Bucket = ""
	assert.Error(t, validateConfig(&missing))
}

func TestValidateBucketName(t *testing.T) {
	assert.NoError(t, validateBucketName("mindmap-exports"))
	assert.Error(t, validateBucketName("ab"))
	assert.Error(t, validateBucketName("Upper"))
	assert.Error(t, validateBucketName("a--b"))
	assert.Error(t, validateBucketName("-abc"))
}

func TestValidateUploadRequest(t *testing.T) {
	req := &UploadRequest{
		BucketName:  "mindmaps",
		ObjectName:  "exports/v1.json",
		Reader:      strings.NewReader("{}"),
		Size:        2,
		ContentType: "application/json",
	}
	assert.NoError(t, validateUploadRequest(req))

	req.ObjectName = "/abs"
	assert.Error(t, validateUploadRequest(req))
}

func TestValidatePresignedURLRequest(t *testing.T) {
	req := &PresignedURLRequest{BucketName: "mindmaps", ObjectName: "x.json", Method: MethodGET, Expiry: time.Hour}
	assert.NoError(t, validatePresignedURLRequest(req))

	req.Expiry = 8 * 24 * time.Hour
	assert.Error(t, validatePresignedURLRequest(req))

	req.Expiry = time.Hour
	req.Method = MethodPUT
	assert.Error(t, validatePresignedURLRequest(req))
}

func TestHandleMinIOError(t *testing.T) {
	assert.NoError(t, handleMinIOError(nil, "op"))

	err := handleMinIOError(minio.ErrorResponse{Code: "NoSuchKey"}, "download_file")
	assert.True(t, IsNotFound(err))

	err = handleMinIOError(minio.ErrorResponse{Code: "AccessDenied"}, "download_file")
	var se *StorageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, ErrCodePermission, se.Code)
	assert.False(t, IsNotFound(err))

	err = handleMinIOError(errors.New("dial tcp: refused"), "connect")
	require.True(t, errors.As(err, &se))
	assert.Equal(t, ErrCodeConnection, se.Code)
}
