package intertypes

import "net/http"

// Satisfied by *http.Client
type UpstreamClient interface {
	Do(req *http.Request) (*http.Response, error)
}
