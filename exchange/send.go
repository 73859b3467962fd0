package exchange

import (
	"net/http"

	"github.com/nojima/curl-go/input"
	"github.com/pkg/errors"
)

// SendRequest performs the planned request and gates on a 2xx status. The
// response body is left unread for the caller to render.
func SendRequest(request *input.Request, options *Options) (*http.Response, error) {
	client, err := BuildHTTPClient(options)
	if err != nil {
		return nil, err
	}
	r, err := BuildHTTPRequest(request)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(r)
	if err != nil {
		return nil, errors.Wrap(err, "sending HTTP request")
	}

	if resp.StatusCode/100 != 2 {
		resp.Body.Close()
		return nil, input.Diagnosticf("Request failed with status code: %d.", resp.StatusCode)
	}

	return resp, nil
}
