package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPresigner(t *testing.T, cfg S3Config) *S3Presigner {
	t.Helper()
	p, err := NewS3Presigner(context.Background(), cfg)
	require.NoError(t, err)
	p.now = func() time.Time { return time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC) }
	return p
}

func TestPresignImageUpload_CustomEndpoint(t *testing.T) {
	p := newTestPresigner(t, S3Config{
		Endpoint:  "http://localhost:9000",
		Region:    "us-east-1",
		Bucket:    "archives",
		AccessKey: "minio",
		SecretKey: "minio123",
	})

	up, err := p.PresignImageUpload(context.Background(), "u1", "image/png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(up.Key, "archives/u1/2024/03/"), up.Key)
	assert.True(t, strings.HasPrefix(up.UploadURL, "http://localhost:9000/archives/"+up.Key), up.UploadURL)
	assert.Contains(t, up.UploadURL, "X-Amz-Signature=")
	assert.Equal(t, "http://localhost:9000/archives/"+up.Key, up.ImageURL)
	assert.Equal(t, 900, up.ExpiresIn)
}

func TestPresignImageUpload_PublicBaseURL(t *testing.T) {
	p := newTestPresigner(t, S3Config{
		Endpoint:      "http://localhost:9000",
		Region:        "us-east-1",
		Bucket:        "archives",
		AccessKey:     "minio",
		SecretKey:     "minio123",
		PublicBaseURL: "https://cdn.example.com/",
	})

	up, err := p.PresignImageUpload(context.Background(), "u1", "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/"+up.Key, up.ImageURL)
}

func TestPresignImageUpload_UniqueKeys(t *testing.T) {
	p := newTestPresigner(t, S3Config{Region: "us-east-1", Bucket: "b", AccessKey: "a", SecretKey: "s"})

	a, err := p.PresignImageUpload(context.Background(), "u1", "image/png")
	require.NoError(t, err)
	b, err := p.PresignImageUpload(context.Background(), "u1", "image/png")
	require.NoError(t, err)

	assert.NotEqual(t, a.Key, b.Key)
	assert.True(t, strings.HasPrefix(a.ImageURL, "https://b.s3.us-east-1.amazonaws.com/archives/u1/"))
}
