package delivery

import (
	"net/http"

	authdto "growth-archive-backend/internal/auth/dto"
	"growth-archive-backend/internal/auth/usecase"
	"growth-archive-backend/pkg/logging"
	"growth-archive-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login and account requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	logger      logging.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase, logger logging.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger,
	}
}

// Register creates a new account
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	userID, err := h.authUsecase.Register(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, authdto.RegisterResponse{
		Message: "注册成功",
		UserID:  userID,
	})
}

// Login exchanges phone and password for an access token
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	tokens, err := h.authUsecase.Login(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// Logout is client-side only: tokens are not revoked on the server
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	response.Message(c, "注销成功")
}

// Me returns the caller's profile
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authUsecase.Me(c.Request.Context(), c.GetString(UserIDKey))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteAccount removes the caller and everything they own
// DELETE /api/auth/account
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	if err := h.authUsecase.DeleteAccount(c.Request.Context(), c.GetString(UserIDKey)); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Message(c, "账号已注销")
}
