package endpoints

import (
	"github.com/cf-containers/container-api/constants"
	"github.com/gin-gonic/gin"
)

func Index(r *gin.Engine) {
	r.GET("/", func(ctx *gin.Context) {
		ctx.String(200, constants.INDEX_MESSAGE)
	})
}

func Health(api *gin.RouterGroup) {
	api.GET("/health", func(ctx *gin.Context) {
		// There's no asynchronous setup, so it's always healthy
		ctx.JSON(200, gin.H{
			"status":  "healthy",
			"service": constants.SERVICE_NAME,
		})
	})
}
func Ping(api *gin.RouterGroup) {
	api.GET("/ping", func(ctx *gin.Context) {
		ctx.String(200, "pong")
	})
}
