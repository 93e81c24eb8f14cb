package response

import (
	"net/http"

	"growth-archive-backend/pkg/apperror"
	"growth-archive-backend/pkg/logging"

	"github.com/gin-gonic/gin"
)

// Error writes err as a JSON error body. Internal errors are logged with
// their cause and shown to the client as a generic message.
func Error(c *gin.Context, logger logging.Logger, err error) {
	kind := apperror.KindOf(err)
	if kind == apperror.KindInternal {
		logger.Error(c.Request.Context(), "request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
	}
	c.JSON(apperror.HTTPStatus(kind), gin.H{
		"error": apperror.PublicMessage(err),
		"code":  kind,
	})
}

// BindError reports a request body that failed shape validation.
func BindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": err.Error(),
		"code":  apperror.KindValidation,
	})
}

// Unauthorized aborts the chain with a 401.
func Unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": msg,
		"code":  apperror.KindUnauthorized,
	})
}

func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
