package input

import (
	"encoding/json"
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var reIPv4Host = regexp.MustCompile(`^[0-9.]+$`)

// Diagnostic is a user-input error reported as "Error: <message>" on stdout
// followed by exit status 1.
type Diagnostic string

func (e *Diagnostic) Error() string {
	return string(*e)
}

func Diagnosticf(format string, a ...interface{}) error {
	d := Diagnostic(fmt.Sprintf(format, a...))
	return errors.WithStack(&d)
}

// Resolver resolves a host:port address. It is used as a reachability probe
// only; the resolved addresses are discarded.
type Resolver func(address string) error

func DefaultResolver(address string) error {
	_, err := net.ResolveTCPAddr("tcp", address)
	return err
}

// PlanRequest validates the URL, probes host resolution and selects the
// request shape. The HTTP client performs its own resolution later.
func PlanRequest(options *Options, resolver Resolver) (*Request, error) {
	if !strings.HasPrefix(options.URL, "http://") && !strings.HasPrefix(options.URL, "https://") {
		return nil, Diagnosticf("The URL does not have a valid base protocol.")
	}

	u, err := parseURL(options.URL)
	if err != nil {
		return nil, err
	}

	if host := u.Hostname(); host != "" {
		port := u.Port()
		if port == "" {
			// The probe always defaults to 80, even for https.
			port = "80"
		}
		if err := resolver(net.JoinHostPort(host, port)); err != nil {
			return nil, Diagnosticf("Unable to connect to the server. Perhaps the network is offline or the server hostname cannot be resolved.")
		}
	}

	return selectShape(options)
}

func parseURL(rawurl string) (*url.URL, error) {
	u, err := url.Parse(rawurl)
	if err != nil {
		return nil, classifyParseError(err)
	}

	host := u.Hostname()
	if strings.HasPrefix(u.Host, "[") {
		if ip := net.ParseIP(host); ip == nil || ip.To4() != nil {
			return nil, Diagnosticf("The URL contains an invalid IPv6 address.")
		}
	} else if host != "" && reIPv4Host.MatchString(host) {
		if ip := net.ParseIP(host); ip == nil || ip.To4() == nil {
			return nil, Diagnosticf("The URL contains an invalid IPv4 address.")
		}
	}
	if port := u.Port(); port != "" {
		if n, err := strconv.Atoi(port); err != nil || n > 65535 {
			return nil, Diagnosticf("The URL contains an invalid port number.")
		}
	}
	return u, nil
}

// net/url does not expose structured sub-errors, so parse failures are
// classified by matching the parser's message text.
func classifyParseError(err error) error {
	message := err.Error()
	switch {
	case strings.Contains(message, "invalid port"):
		return Diagnosticf("The URL contains an invalid port number.")
	case strings.Contains(message, "missing ']'"):
		return Diagnosticf("The URL contains an invalid IPv6 address.")
	default:
		return Diagnosticf("%s", message)
	}
}

func selectShape(options *Options) (*Request, error) {
	if options.HasJSON {
		var v interface{}
		if err := json.Unmarshal([]byte(options.JSON), &v); err != nil {
			// A malformed --json argument aborts with a stack trace instead
			// of exiting cleanly.
			panic(fmt.Sprintf("Invalid JSON: Error(%q)", err.Error()))
		}
		return &Request{
			URL:  options.URL,
			Body: Body{BodyType: JSONBody, Raw: options.JSON},
		}, nil
	}

	if options.Method == "POST" {
		if !options.HasData {
			return nil, Diagnosticf("POST method requires data to be specified with -d.")
		}
		return &Request{
			URL:  options.URL,
			Body: Body{BodyType: FormBody, Fields: parseFormData(options.Data)},
		}, nil
	}

	return &Request{URL: options.URL}, nil
}

// parseFormData splits "k=v&k=v" keeping the left-to-right pair order. A
// token without "=" yields an empty value; empty tokens are skipped.
func parseFormData(data string) []Field {
	var fields []Field
	for _, token := range strings.Split(data, "&") {
		if token == "" {
			continue
		}
		name, value := token, ""
		if i := strings.Index(token, "="); i != -1 {
			name, value = token[:i], token[i+1:]
		}
		fields = append(fields, Field{Name: name, Value: value})
	}
	return fields
}
