package test

import (
	"os"

	"github.com/cf-containers/container-api/constants"
	"github.com/cf-containers/container-api/intertypes"
	"github.com/cf-containers/container-api/subfns"
	"github.com/gin-gonic/gin"
)

type Config struct {
	// Defaults to a real client if UpstreamURL is set, otherwise a mock relaying DEFAULT_UPSTREAM_BODY
	Client intertypes.UpstreamClient
	// Used instead of the default ipinfo URL, typically an httptest.Server's
	UpstreamURL string
}

func InitProgram(config *Config) (*gin.Engine, *intertypes.State, *intertypes.Env) {
	if config == nil {
		config = &Config{}
	}
	if config.Client == nil {
		if config.UpstreamURL == "" {
			config.Client = subfns.NewMockUpstreamClient(DEFAULT_UPSTREAM_BODY)
		} else {
			config.Client = subfns.CreateUpstreamClient()
		}
	}
	if config.UpstreamURL == "" {
		config.UpstreamURL = constants.DEFAULT_IPINFO_URL
	}

	os.Setenv("IS_TEST", "true")
	os.Setenv("GIN_MODE", "release")
	gin.SetMode(gin.ReleaseMode)

	env := intertypes.Env{
		HOST:                 "127.0.0.1",
		PORT:                 8000,
		CORS_ALLOWED_ORIGINS: []string{"*"},
		IPINFO_URL:           config.UpstreamURL,

		DISABLE_REQUEST_LOGS: true,
		IS_TEST:              true,
		IS_DEV:               false,
	}
	logger := subfns.CreateLogger(&env)
	state := subfns.InitState()

	r := subfns.CreateServer(&env)
	subfns.AddMiddleware(r, &env, logger)
	subfns.RegisterEndpoints(r, config.Client, state, &env, logger)

	return r, state, &env
}
