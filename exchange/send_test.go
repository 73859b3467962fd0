package exchange

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nojima/curl-go/input"
	"github.com/pkg/errors"
)

func TestSendRequest(t *testing.T) {
	var (
		gotMethod      string
		gotContentType string
		gotBody        string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		body, _ := ioutil.ReadAll(r.Body)
		gotBody = string(body)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	request := &input.Request{
		URL:  server.URL + "/",
		Body: input.Body{BodyType: input.JSONBody, Raw: `{"k":1}`},
	}

	resp, err := SendRequest(request, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: err=%v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("unexpected status: %d", resp.StatusCode)
	}
	if gotMethod != "POST" {
		t.Errorf("unexpected method: %s", gotMethod)
	}
	if gotContentType != "application/json" {
		t.Errorf("unexpected Content-Type: %s", gotContentType)
	}
	if gotBody != `{"k":1}` {
		t.Errorf("unexpected body: %q", gotBody)
	}
}

func TestSendRequestNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not here", http.StatusNotFound)
	}))
	defer server.Close()

	request := &input.Request{URL: server.URL + "/missing"}

	resp, err := SendRequest(request, DefaultOptions())
	if resp != nil {
		t.Errorf("no response must be returned: %+v", resp)
	}
	if err == nil {
		t.Fatalf("expected an error")
	}
	if _, ok := errors.Cause(err).(*input.Diagnostic); !ok {
		t.Fatalf("expected a diagnostic: err=%v", err)
	}
	expected := "Request failed with status code: 404."
	if err.Error() != expected {
		t.Errorf("unexpected message: expected=%q, actual=%q", expected, err.Error())
	}
}

func TestSendRequestTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	request := &input.Request{URL: server.URL + "/"}

	_, err := SendRequest(request, DefaultOptions())
	if err == nil {
		t.Fatalf("expected an error")
	}
	if _, ok := errors.Cause(err).(*input.Diagnostic); ok {
		t.Errorf("transport failures must not be user diagnostics: err=%v", err)
	}
}
