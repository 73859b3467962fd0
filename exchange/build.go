package exchange

import (
	"bytes"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/nojima/curl-go/input"
	"github.com/nojima/curl-go/version"
	"github.com/pkg/errors"
)

func BuildHTTPRequest(request *input.Request) (*http.Request, error) {
	u, err := url.Parse(request.URL)
	if err != nil {
		return nil, errors.Wrap(err, "parsing request URL")
	}

	bodyTuple, err := buildHTTPBody(request)
	if err != nil {
		return nil, err
	}

	header := make(http.Header)
	if bodyTuple.contentType != "" {
		header.Set("Content-Type", bodyTuple.contentType)
	}
	header.Set("User-Agent", "curl-go/"+version.Current().String())

	r := http.Request{
		Method:        methodFor(request),
		URL:           u,
		Header:        header,
		Body:          bodyTuple.body,
		ContentLength: bodyTuple.contentLength,
	}
	return &r, nil
}

func methodFor(request *input.Request) string {
	if request.Body.BodyType == input.EmptyBody {
		return "GET"
	}
	return "POST"
}

type bodyTuple struct {
	body          io.ReadCloser
	contentLength int64
	contentType   string
}

func buildHTTPBody(request *input.Request) (bodyTuple, error) {
	switch request.Body.BodyType {
	case input.EmptyBody:
		return bodyTuple{}, nil
	case input.FormBody:
		return buildFormBody(request), nil
	case input.JSONBody:
		return buildJSONBody(request), nil
	default:
		return bodyTuple{}, errors.Errorf("unknown body type: %v", request.Body.BodyType)
	}
}

// buildFormBody encodes the pairs in argument order. url.Values.Encode is
// not used here because it sorts keys.
func buildFormBody(request *input.Request) bodyTuple {
	var b strings.Builder
	for i, field := range request.Body.Fields {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(field.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(field.Value))
	}
	body := b.String()
	return bodyTuple{
		body:          ioutil.NopCloser(strings.NewReader(body)),
		contentLength: int64(len(body)),
		contentType:   "application/x-www-form-urlencoded",
	}
}

// buildJSONBody sends the --json argument verbatim, not a re-serialization.
func buildJSONBody(request *input.Request) bodyTuple {
	raw := []byte(request.Body.Raw)
	return bodyTuple{
		body:          ioutil.NopCloser(bytes.NewReader(raw)),
		contentLength: int64(len(raw)),
		contentType:   "application/json",
	}
}
