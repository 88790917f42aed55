package subfns

import (
	"fmt"

	"github.com/cf-containers/container-api/constants"
	"github.com/cf-containers/container-api/intertypes"
	"github.com/cf-containers/container-api/util"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// Every variable is optional, the defaults match the service's fixed behaviour
func LoadEnvironmentVariables() *intertypes.Env {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	env := intertypes.Env{}

	env.HOST = util.OptionalEnv("HOST", constants.DEFAULT_HOST)
	env.PORT = util.OptionalIntEnv("PORT", constants.DEFAULT_PORT)
	env.CORS_ALLOWED_ORIGINS = util.OptionalStrArrEnv("CORS_ALLOWED_ORIGINS", []string{"*"})
	env.IPINFO_URL = util.OptionalEnv("IPINFO_URL", constants.DEFAULT_IPINFO_URL)

	env.DISABLE_REQUEST_LOGS = util.OptionalBoolEnv("DISABLE_REQUEST_LOGS")
	env.IS_DEV = util.OptionalEnv("GIN_MODE", "") == "debug"
	env.IS_TEST = util.OptionalBoolEnv("IS_TEST")

	return &env
}
func InitState() *intertypes.State {
	registry := prometheus.NewRegistry()
	state := intertypes.State{
		Registry: registry,
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: constants.METRICS_NAMESPACE,
			Name:      "upstream_requests_total",
			Help:      "Requests made to the IP info upstream, by result.",
		}, []string{"result"}),
		UpstreamDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: constants.METRICS_NAMESPACE,
			Name:      "upstream_request_duration_seconds",
			Help:      "Time taken to fetch and read the IP info upstream.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	registry.MustRegister(
		state.UpstreamRequests,
		state.UpstreamDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &state
}
func CreateLogger(env *intertypes.Env) *zap.Logger {
	if env.IS_TEST {
		return zap.NewNop()
	}

	var logger *zap.Logger
	var err error
	if env.IS_DEV {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(fmt.Sprintf("couldn't create logger. error:\n%v", err.Error()))
	}

	return logger
}
