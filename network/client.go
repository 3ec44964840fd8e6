// Package network provides a pre-configured HTTP client shared by the scheme fetcher and version check.
package network

import (
	"net/http"
	"time"

	"github.com/huemap-cli/huemap/constant"
)

// Client is the singleton HTTP client shared across the application.
// Pool limits are sized for the fetcher's batched downloads against a single host.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(),
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 32
	t.MaxIdleConnsPerHost = 32
	t.MaxConnsPerHost = 64
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}

// NewRequest builds a GET request with the application User-Agent, and a
// bearer token when one is supplied.
func NewRequest(url, token string) (*http.Request, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", constant.UserAgent)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}
