package flags

import (
	"fmt"
	"io"
	"strings"

	"github.com/nojima/curl-go/input"
	"github.com/pborman/getopt"
	"github.com/pkg/errors"
)

type FlagSet interface {
	Args() []string
	PrintUsage(w io.Writer)
}

type OptionSet struct {
	Input        input.Options
	PrintVersion bool
	PrintLicense bool
}

type UsageError string

func (e *UsageError) Error() string {
	return string(*e)
}

func newUsageError(message string) error {
	u := UsageError(message)
	return errors.WithStack(&u)
}

// Parse maps the command line to an OptionSet and echoes the request summary
// to w. The echo lines precede any validation output.
func Parse(args []string, w io.Writer) (FlagSet, *OptionSet, error) {
	method := "GET"
	var data string
	var jsonBody string
	var printVersion bool
	var printLicense bool

	flagSet := getopt.New()
	flagSet.SetParameters("URL")
	flagSet.StringVarLong(&method, "request", 'X', "HTTP method to use")
	dataOpt := flagSet.StringVarLong(&data, "data", 'd', "form data to POST (k=v&k=v)")
	jsonOpt := flagSet.StringVarLong(&jsonBody, "json", 0, "raw JSON body to POST")
	flagSet.BoolVarLong(&printVersion, "version", 0, "print version and exit")
	flagSet.BoolVarLong(&printLicense, "license", 0, "print license information and exit")
	flagSet.Parse(args)

	optionSet := &OptionSet{
		PrintVersion: printVersion,
		PrintLicense: printLicense,
	}
	if printVersion || printLicense {
		return flagSet, optionSet, nil
	}

	positional := flagSet.Args()
	switch len(positional) {
	case 0:
		return flagSet, nil, newUsageError("URL is required")
	case 1:
		// ok
	default:
		return flagSet, nil, newUsageError("unexpected argument: " + positional[1])
	}

	options := input.Options{
		URL:     positional[0],
		Method:  strings.ToUpper(method),
		Data:    data,
		HasData: dataOpt.Seen(),
		JSON:    jsonBody,
		HasJSON: jsonOpt.Seen(),
	}
	// --json always sends a POST, whatever -X says.
	if options.HasJSON {
		options.Method = "POST"
	}

	fmt.Fprintf(w, "Requesting URL: %s\n", options.URL)
	fmt.Fprintf(w, "Method: %s\n", options.Method)
	if options.HasData {
		fmt.Fprintf(w, "Data: %s\n", options.Data)
	}
	if options.HasJSON {
		fmt.Fprintf(w, "JSON: %s\n", options.JSON)
	}

	optionSet.Input = options
	return flagSet, optionSet, nil
}
