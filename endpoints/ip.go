package endpoints

import (
	"io"
	"net/http"
	"time"

	"github.com/cf-containers/container-api/constants"
	"github.com/cf-containers/container-api/intertypes"
	"github.com/cf-containers/container-api/util"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Relays the upstream body as-is. The upstream status isn't propagated, so an upstream error page is still sent with a 200
func IP(
	api *gin.RouterGroup,
	client intertypes.UpstreamClient,
	state *intertypes.State,
	env *intertypes.Env,
	logger *zap.Logger,
) {
	api.GET("/ip", func(ctx *gin.Context) {
		startTime := time.Now()
		defer func() {
			state.UpstreamDuration.Observe(time.Since(startTime).Seconds())
		}()

		body, result := fetchUpstream(ctx, client, env.IPINFO_URL, logger)
		state.UpstreamRequests.WithLabelValues(result).Inc()

		switch result {
		case constants.UPSTREAM_RESULT_FETCH_ERROR:
			util.Send500(ctx, constants.FETCH_FAILED_MESSAGE)
		case constants.UPSTREAM_RESULT_READ_ERROR:
			util.Send500(ctx, constants.READ_FAILED_MESSAGE)
		default:
			ctx.Data(200, "application/json", body)
		}
	})
}

// Returns the body and one of the UPSTREAM_RESULT_ constants
func fetchUpstream(
	ctx *gin.Context,
	client intertypes.UpstreamClient,
	url string,
	logger *zap.Logger,
) ([]byte, string) {
	req, err := http.NewRequestWithContext(ctx.Request.Context(), "GET", url, nil)
	if err != nil { // Invalid URL in the config?
		logger.Warn("couldn't create upstream request", zap.String("url", url), zap.Error(err))
		return nil, constants.UPSTREAM_RESULT_FETCH_ERROR
	}

	res, err := client.Do(req)
	if err != nil {
		logger.Warn("couldn't fetch IP info", zap.String("url", url), zap.Error(err))
		return nil, constants.UPSTREAM_RESULT_FETCH_ERROR
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		logger.Warn(
			"couldn't read IP info response",
			zap.String("url", url),
			zap.Int("status", res.StatusCode),
			zap.Error(err),
		)
		return nil, constants.UPSTREAM_RESULT_READ_ERROR
	}

	return body, constants.UPSTREAM_RESULT_OK
}
