package response

import (
	"github.com/gin-gonic/gin"
	domainerrors "vortex-market.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. Policy rejections keep their taxonomy code;
// anything unrecognized is treated as an internal failure (fail closed).
func Error(c *gin.Context, err error) {
	if rej, ok := domainerrors.AsRejection(err); ok {
		c.JSON(rej.HTTPStatus(), gin.H{
			"code":    rej.Code,
			"message": rej.Message,
		})
		return
	}

	var appErr *domainerrors.AppError
	if e, ok := err.(*domainerrors.AppError); ok {
		appErr = e
	} else {
		appErr = domainerrors.InternalError(err)
	}

	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}
