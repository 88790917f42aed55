package util

import "github.com/gin-gonic/gin"

// Sends a JSON body of the form {"error": message}
func SendError(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"error": message})
}
func Send500(ctx *gin.Context, message string) {
	SendError(ctx, 500, message)
}
