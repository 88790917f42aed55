package subfns

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"sync/atomic"
)

var ErrMockBodyRead = errors.New("mock: connection dropped mid-body")

type MockUpstreamClient struct {
	// Returned by Do when set
	Err        error
	StatusCode int
	Body       []byte
	// Makes reading the body fail after Body has been read
	FailBodyRead bool

	calls atomic.Int64
}

func (client *MockUpstreamClient) Do(req *http.Request) (*http.Response, error) {
	client.calls.Add(1)
	if client.Err != nil {
		return nil, client.Err
	}

	var body io.Reader = bytes.NewReader(client.Body)
	if client.FailBodyRead {
		body = io.MultiReader(body, &failingReader{})
	}
	statusCode := client.StatusCode
	if statusCode == 0 {
		statusCode = 200
	}

	return &http.Response{
		StatusCode: statusCode,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(body),
		Request:    req,
	}, nil
}
func (client *MockUpstreamClient) Calls() int64 {
	return client.calls.Load()
}
func NewMockUpstreamClient(body string) *MockUpstreamClient {
	return &MockUpstreamClient{
		StatusCode: 200,
		Body:       []byte(body),
	}
}

type failingReader struct{}

func (reader *failingReader) Read(p []byte) (int, error) {
	return 0, ErrMockBodyRead
}
