package subfns

import (
	"net/http"

	"github.com/cf-containers/container-api/intertypes"
)

// No timeout is set, a hung upstream only blocks the request waiting on it
func CreateUpstreamClient() intertypes.UpstreamClient {
	return &http.Client{}
}
