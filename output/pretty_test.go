package output

import (
	"io/ioutil"
	"net/http"
	"strings"
	"testing"
)

func printBody(t *testing.T, body string) string {
	t.Helper()

	var buffer strings.Builder
	printer := NewPrettyPrinter(PrettyPrinterConfig{
		Writer:      &buffer,
		EnableColor: false,
	})
	response := &http.Response{
		StatusCode: 200,
		Body:       ioutil.NopCloser(strings.NewReader(body)),
	}
	if err := printer.PrintBody(response); err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}
	return buffer.String()
}

func TestPrettyPrinter_PrintBody(t *testing.T) {
	testCases := []struct {
		title    string
		body     string
		expected string
	}{
		{
			title: "object keys are sorted",
			body:  `{"b":2,"a":1}`,
			expected: strings.Join([]string{
				"Response body (JSON with sorted keys):",
				"{",
				`  "a": 1,`,
				`  "b": 2`,
				"}",
				"",
			}, "\n"),
		},
		{
			title: "nested values survive",
			body:  `{"b":{"y":1,"x":2},"a":[3,1]}`,
			expected: strings.Join([]string{
				"Response body (JSON with sorted keys):",
				"{",
				`  "a": [`,
				"    3,",
				"    1",
				"  ],",
				`  "b": {`,
				`    "x": 2,`,
				`    "y": 1`,
				"  }",
				"}",
				"",
			}, "\n"),
		},
		{
			title: "large numbers keep their literal form",
			body:  `{"n":12345678901234567890}`,
			expected: strings.Join([]string{
				"Response body (JSON with sorted keys):",
				"{",
				`  "n": 12345678901234567890`,
				"}",
				"",
			}, "\n"),
		},
		{
			title: "HTML characters are not escaped",
			body:  `{"u":"<a>&"}`,
			expected: strings.Join([]string{
				"Response body (JSON with sorted keys):",
				"{",
				`  "u": "<a>&"`,
				"}",
				"",
			}, "\n"),
		},
		{
			title:    "top-level array renders as empty object",
			body:     `[1, 2]`,
			expected: "Response body (JSON with sorted keys):\n{}\n",
		},
		{
			title:    "top-level number renders as empty object",
			body:     "42",
			expected: "Response body (JSON with sorted keys):\n{}\n",
		},
		{
			title:    "top-level null renders as empty object",
			body:     "null",
			expected: "Response body (JSON with sorted keys):\n{}\n",
		},
		{
			title:    "non-JSON body is trimmed",
			body:     "ok\n\n",
			expected: "Response body:\nok\n",
		},
		{
			title:    "trailing spaces and tabs are trimmed",
			body:     "hello world  \t\n",
			expected: "Response body:\nhello world\n",
		},
		{
			title:    "leading whitespace is kept",
			body:     "  indented",
			expected: "Response body:\n  indented\n",
		},
	}
	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			actual := printBody(t, tt.body)
			if actual != tt.expected {
				t.Errorf("unexpected output: expected=\n%s\n (len=%d)\nactual=\n%s\n (len=%d)",
					tt.expected, len(tt.expected), actual, len(actual))
			}
		})
	}
}
