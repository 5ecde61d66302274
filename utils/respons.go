package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Status bool   `json:"status"`
	Error  string `json:"error"`
}

// RespondJSON writes data as-is. The dashboard client consumes bare arrays
// and objects, so there is no envelope on success.
func RespondJSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

func RespondError(c *gin.Context, code int, err error) {
	if code >= 500 {
		ErrorLogger.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": code,
		}).Error(err)
	}
	c.AbortWithStatusJSON(code, ErrorResponse{
		Status: false,
		Error:  err.Error(),
	})
}
