package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingResponse is the health check payload.
type PingResponse struct {
	Message string `json:"message"`
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	})
}
