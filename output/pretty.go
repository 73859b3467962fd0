package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strings"
	"unicode"

	"github.com/logrusorgru/aurora"
	"github.com/nojima/curl-go/input"
	"github.com/pkg/errors"
)

type PrettyPrinter struct {
	writer  io.Writer
	aurora  aurora.Aurora
	palette *BannerPalette
}

type BannerPalette struct {
	Banner aurora.Color
}

var defaultBannerPalette = BannerPalette{
	Banner: aurora.GreenFg | aurora.BoldFm,
}

type PrettyPrinterConfig struct {
	Writer      io.Writer
	EnableColor bool
}

func NewPrettyPrinter(config PrettyPrinterConfig) Printer {
	return &PrettyPrinter{
		writer:  config.Writer,
		aurora:  aurora.NewAurora(config.EnableColor),
		palette: &defaultBannerPalette,
	}
}

// PrintBody renders a JSON body pretty-printed with its top-level keys in
// codepoint order; anything else is printed verbatim with trailing
// whitespace trimmed.
func (p *PrettyPrinter) PrintBody(response *http.Response) error {
	body, err := ioutil.ReadAll(response.Body)
	if err != nil {
		return errors.Wrap(err, "reading response body")
	}

	if !json.Valid(body) {
		fmt.Fprintf(p.writer, "%s\n%s\n",
			p.aurora.Colorize("Response body:", p.palette.Banner),
			strings.TrimRightFunc(string(body), unicode.IsSpace))
		return nil
	}
	return p.printJSONBody(body)
}

func (p *PrettyPrinter) printJSONBody(body []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber() // keep numeric literals intact
	var v interface{}
	if err := decoder.Decode(&v); err != nil {
		return errors.Wrap(err, "parsing response body as JSON")
	}

	// Only a top-level object gets reordered; any other JSON value renders
	// as an empty object.
	object, ok := v.(map[string]interface{})
	if !ok {
		object = map[string]interface{}{}
	}

	fmt.Fprintf(p.writer, "%s\n",
		p.aurora.Colorize("Response body (JSON with sorted keys):", p.palette.Banner))

	// encoding/json emits map keys in sorted order.
	encoder := json.NewEncoder(p.writer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(object); err != nil {
		return input.Diagnosticf("Failed to format JSON: %v", err)
	}
	return nil
}
