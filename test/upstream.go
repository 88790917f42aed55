package test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
)

// Serves body with the given status on every path
func NewUpstream(status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

// Promises a longer body than it sends, then drops the connection
func NewTruncatingUpstream(partialBody string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hijacker, ok := w.(http.Hijacker)
		if !ok {
			panic("test upstream doesn't support hijacking")
		}
		conn, buf, err := hijacker.Hijack()
		if err != nil {
			panic(fmt.Sprintf("couldn't hijack test upstream connection. error:\n%v", err.Error()))
		}
		defer conn.Close()

		fmt.Fprintf(
			buf,
			"HTTP/1.1 200 OK\r\nContent-Type: application/json\r\nContent-Length: %v\r\n\r\n%v",
			len(partialBody)+100,
			partialBody,
		)
		_ = buf.Flush()
	}))
}

// Returns the URL of a server that has already been closed, so connecting to it fails
func ClosedUpstreamURL() string {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	return url
}
