package delivery

import (
	"net/http"

	"growth-archive-backend/internal/notification/dto"
	"growth-archive-backend/internal/notification/usecase"
	"growth-archive-backend/pkg/logging"
	"growth-archive-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the inbox and device registration routes
type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
	logger              logging.Logger
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase, logger logging.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationUsecase: notificationUsecase,
		logger:              logger,
	}
}

// GetNotifications returns the caller's notifications, newest first
// GET /api/notifications
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	notifications, err := h.notificationUsecase.List(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkRead flags one notification as read
// PUT /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.notificationUsecase.MarkRead(c.Request.Context(), c.GetString("userID"), c.Param("id")); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Message(c, "已标记为已读")
}

// MarkAllRead flags every notification of the caller as read
// PUT /api/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	updated, err := h.notificationUsecase.MarkAllRead(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.MarkAllReadResponse{
		Message: "已全部标记为已读",
		Updated: updated,
	})
}

// RegisterDevice stores an FCM token for the caller
// POST /api/fcm/register
func (h *NotificationHandler) RegisterDevice(c *gin.Context) {
	var req dto.RegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	if err := h.notificationUsecase.RegisterDevice(c.Request.Context(), c.GetString("userID"), req.Token, req.DeviceInfo); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Message(c, "设备已注册")
}

// UnregisterDevice removes one of the caller's FCM tokens
// DELETE /api/fcm/:token
func (h *NotificationHandler) UnregisterDevice(c *gin.Context) {
	if err := h.notificationUsecase.UnregisterDevice(c.Request.Context(), c.GetString("userID"), c.Param("token")); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Message(c, "设备已注销")
}
