package subfns

import (
	"github.com/cf-containers/container-api/endpoints"
	"github.com/cf-containers/container-api/intertypes"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterEndpoints(
	r *gin.Engine,
	client intertypes.UpstreamClient,
	state *intertypes.State,
	env *intertypes.Env,
	logger *zap.Logger,
) {
	endpoints.Index(r)
	endpoints.Metrics(r, state)

	api := r.Group("/api")
	endpoints.Docs(api)
	endpoints.Health(api)
	endpoints.Ping(api)
	endpoints.IP(api, client, state, env, logger)
}
