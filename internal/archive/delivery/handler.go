package delivery

import (
	"context"
	"net/http"
	"strings"

	"growth-archive-backend/internal/archive/dto"
	"growth-archive-backend/internal/archive/usecase"
	"growth-archive-backend/pkg/apperror"
	"growth-archive-backend/pkg/logging"
	"growth-archive-backend/pkg/response"
	"growth-archive-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

// ImagePresigner hands out direct upload URLs for archive images.
type ImagePresigner interface {
	PresignImageUpload(ctx context.Context, userID, contentType string) (*storage.PresignedUpload, error)
}

// ArchiveHandler handles archive-related HTTP requests
type ArchiveHandler struct {
	archiveUsecase usecase.ArchiveUsecase
	presigner      ImagePresigner
	logger         logging.Logger
}

// NewArchiveHandler creates a new ArchiveHandler. presigner may be nil when
// object storage is not configured.
func NewArchiveHandler(archiveUsecase usecase.ArchiveUsecase, presigner ImagePresigner, logger logging.Logger) *ArchiveHandler {
	return &ArchiveHandler{
		archiveUsecase: archiveUsecase,
		presigner:      presigner,
		logger:         logger,
	}
}

// UploadsEnabled reports whether the presign route should be mounted.
func (h *ArchiveHandler) UploadsEnabled() bool {
	return h.presigner != nil
}

// GetArchives returns the caller's archives, newest first
// GET /api/archives?category=奖惩
func (h *ArchiveHandler) GetArchives(c *gin.Context) {
	archives, err := h.archiveUsecase.List(c.Request.Context(), c.GetString("userID"), c.Query("category"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, archives)
}

// GetArchiveByID returns a specific archive
// GET /api/archives/:id
func (h *ArchiveHandler) GetArchiveByID(c *gin.Context) {
	archive, err := h.archiveUsecase.Get(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, archive)
}

// CreateArchive submits a new archive for review
// POST /api/archives
func (h *ArchiveHandler) CreateArchive(c *gin.Context) {
	var req dto.CreateArchiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	archive, err := h.archiveUsecase.Create(c.Request.Context(), c.GetString("userID"), &req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, archive)
}

// UpdateArchive applies a partial update
// PUT /api/archives/:id
func (h *ArchiveHandler) UpdateArchive(c *gin.Context) {
	var req dto.UpdateArchiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	archive, err := h.archiveUsecase.Update(c.Request.Context(), c.GetString("userID"), c.Param("id"), &req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, archive)
}

// DeleteArchive removes an archive
// DELETE /api/archives/:id
func (h *ArchiveHandler) DeleteArchive(c *gin.Context) {
	if err := h.archiveUsecase.Delete(c.Request.Context(), c.GetString("userID"), c.Param("id")); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Message(c, "删除成功")
}

// PresignUpload returns a presigned PUT URL for an archive image
// POST /api/archives/uploads
func (h *ArchiveHandler) PresignUpload(c *gin.Context) {
	var req dto.PresignUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if !strings.HasPrefix(req.ContentType, "image/") {
		response.Error(c, h.logger, apperror.Validation("content_type must be an image type"))
		return
	}

	upload, err := h.presigner.PresignImageUpload(c.Request.Context(), c.GetString("userID"), req.ContentType)
	if err != nil {
		response.Error(c, h.logger, apperror.Internal("presign upload", err))
		return
	}

	c.JSON(http.StatusOK, upload)
}
