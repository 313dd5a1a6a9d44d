package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleHello returns a static payload for smoke-testing a deployment.
func HandleHello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "hello world"})
}
