package delivery

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"growth-archive-backend/pkg/logging"
	"growth-archive-backend/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubPresigner struct {
	err error
}

func (s stubPresigner) PresignImageUpload(_ context.Context, userID, contentType string) (*storage.PresignedUpload, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &storage.PresignedUpload{
		UploadURL: "https://bucket.test/put",
		ImageURL:  "https://bucket.test/archives/" + userID + "/k",
		Key:       "archives/" + userID + "/k",
		ExpiresIn: 900,
	}, nil
}

func TestPresignUpload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		presigner stubPresigner
		body      string
		status    int
		contains  string
	}{
		{name: "image", body: `{"content_type":"image/png"}`, status: http.StatusOK, contains: `"image_url":"https://bucket.test/archives/u1/k"`},
		{name: "not an image", body: `{"content_type":"application/pdf"}`, status: http.StatusBadRequest, contains: `"code":"validation"`},
		{name: "missing content type", body: `{}`, status: http.StatusBadRequest},
		{name: "presign failure", presigner: stubPresigner{err: errors.New("s3 down")}, body: `{"content_type":"image/png"}`, status: http.StatusInternalServerError, contains: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewArchiveHandler(nil, tt.presigner, logging.Discard())
			r := gin.New()
			r.POST("/uploads", func(c *gin.Context) { c.Set("userID", "u1") }, h.PresignUpload)

			req := httptest.NewRequest(http.MethodPost, "/uploads", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.contains != "" {
				assert.Contains(t, w.Body.String(), tt.contains)
			}
		})
	}
}

func TestUploadsEnabled(t *testing.T) {
	assert.False(t, NewArchiveHandler(nil, nil, logging.Discard()).UploadsEnabled())
	assert.True(t, NewArchiveHandler(nil, stubPresigner{}, logging.Discard()).UploadsEnabled())
}
