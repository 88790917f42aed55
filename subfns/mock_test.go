package subfns_test

import (
	"errors"
	"io"
	"testing"

	"github.com/cf-containers/container-api/subfns"
	"github.com/cf-containers/container-api/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockUpstreamClient(t *testing.T) {
	client := subfns.NewMockUpstreamClient(`{"ip":"1.2.3.4"}`)

	res, err := client.Do(test.NewRequest("GET", "https://ipinfo.io/json", nil))
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)
	assert.Equal(t, `{"ip":"1.2.3.4"}`, string(body))
}
func TestMockUpstreamClientFailures(t *testing.T) {
	client := subfns.NewMockUpstreamClient(`{"ip":`)
	client.FailBodyRead = true

	res, err := client.Do(test.NewRequest("GET", "https://ipinfo.io/json", nil))
	require.NoError(t, err)
	_, err = io.ReadAll(res.Body)
	assert.ErrorIs(t, err, subfns.ErrMockBodyRead)

	client.Err = errors.New("no such host")
	_, err = client.Do(test.NewRequest("GET", "https://ipinfo.io/json", nil))
	assert.EqualError(t, err, "no such host")
	assert.Equal(t, int64(2), client.Calls())
}
