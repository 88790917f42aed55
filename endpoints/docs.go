package endpoints

import (
	"github.com/cf-containers/container-api/constants"
	"github.com/gin-gonic/gin"
)

type EndpointDescriptor struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}
type DocsResponse struct {
	Service   string               `json:"service"`
	Version   string               `json:"version"`
	Endpoints []EndpointDescriptor `json:"endpoints"`
}

var apiEndpoints = []EndpointDescriptor{
	{
		Method:      "GET",
		Path:        "/api/health",
		Description: "Health check endpoint - returns service status",
	},
	{
		Method:      "GET",
		Path:        "/api/ping",
		Description: "Simple ping endpoint - returns 'pong'",
	},
	{
		Method:      "GET",
		Path:        "/api/ip",
		Description: "Get IP information from ipinfo.io",
	},
}

func Docs(api *gin.RouterGroup) {
	api.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, DocsResponse{
			Service:   constants.API_NAME,
			Version:   constants.API_VERSION,
			Endpoints: apiEndpoints,
		})
	})
}
