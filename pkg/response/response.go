package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Failure bodies carry a single machine-readable reason. The field name is
// part of the preserved wire format.
func Error(c *gin.Context, httpStatus int, reason string) {
	c.JSON(httpStatus, gin.H{"error": reason})
}

func BadRequest(c *gin.Context, reason string) {
	Error(c, http.StatusBadRequest, reason)
}

func NotFound(c *gin.Context, reason string) {
	Error(c, http.StatusNotFound, reason)
}

func Conflict(c *gin.Context, reason string) {
	Error(c, http.StatusConflict, reason)
}

func InternalError(c *gin.Context, reason string) {
	Error(c, http.StatusInternalServerError, reason)
}
