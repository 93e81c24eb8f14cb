package delivery

import (
	"net/http"

	"growth-archive-backend/internal/user/dto"
	"growth-archive-backend/internal/user/usecase"
	"growth-archive-backend/pkg/logging"
	"growth-archive-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
	logger      logging.Logger
}

func NewUserHandler(userUsecase usecase.UserUsecase, logger logging.Logger) *UserHandler {
	return &UserHandler{userUsecase: userUsecase, logger: logger}
}

// GetProfile
// GET /api/users/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.userUsecase.GetProfile(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile applies a partial update to the caller's profile
// PUT /api/users/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	user, err := h.userUsecase.UpdateProfile(c.Request.Context(), c.GetString("userID"), &req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
