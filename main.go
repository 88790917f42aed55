package main

import (
	"github.com/cf-containers/container-api/subfns"
	"go.uber.org/zap"
)

func main() {
	env := subfns.LoadEnvironmentVariables()
	logger := subfns.CreateLogger(env)
	defer logger.Sync()

	state := subfns.InitState()
	client := subfns.CreateUpstreamClient()

	r := subfns.CreateServer(env)
	subfns.AddMiddleware(r, env, logger)
	subfns.RegisterEndpoints(r, client, state, env, logger)
	err := subfns.StartServer(r, env, logger)
	if err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
