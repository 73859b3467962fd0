package exchange

import (
	"net/http"
	"time"
)

type Options struct {
	Timeout time.Duration
}

func DefaultOptions() *Options {
	return &Options{Timeout: 30 * time.Second}
}

// BuildHTTPClient builds the client used for the single request. Redirects
// follow the client's default policy.
func BuildHTTPClient(options *Options) (*http.Client, error) {
	client := http.Client{
		Timeout: options.Timeout,
	}
	return &client, nil
}
