package endpoints

import (
	"github.com/cf-containers/container-api/intertypes"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Metrics(r *gin.Engine, state *intertypes.State) {
	handler := promhttp.HandlerFor(state.Registry, promhttp.HandlerOpts{})
	r.GET("/metrics", gin.WrapH(handler))
}
