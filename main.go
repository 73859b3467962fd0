package curl

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/nojima/curl-go/exchange"
	"github.com/nojima/curl-go/flags"
	"github.com/nojima/curl-go/input"
	"github.com/nojima/curl-go/output"
	"github.com/nojima/curl-go/version"
	"github.com/pkg/errors"
)

// Main runs a single request and returns the process exit status.
func Main(args []string) int {
	// Parse flags
	flagSet, optionSet, err := flags.Parse(args, os.Stdout)
	if err != nil {
		if _, ok := errors.Cause(err).(*flags.UsageError); ok {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			flagSet.PrintUsage(os.Stderr)
			return 2
		}
		return fail(err)
	}
	if optionSet.PrintVersion {
		fmt.Println(version.Current())
		return 0
	}
	if optionSet.PrintLicense {
		version.PrintLicenses(os.Stdout)
		return 0
	}

	// Validate the URL and plan the request
	request, err := input.PlanRequest(&optionSet.Input, input.DefaultResolver)
	if err != nil {
		return fail(err)
	}

	// Send request and receive response
	response, err := exchange.SendRequest(request, exchange.DefaultOptions())
	if err != nil {
		return fail(err)
	}
	defer response.Body.Close()

	// Print response
	writer := bufio.NewWriter(os.Stdout)
	defer writer.Flush()
	printer := output.NewPrettyPrinter(output.PrettyPrinterConfig{
		Writer:      writer,
		EnableColor: isatty.IsTerminal(os.Stdout.Fd()),
	})
	if err := printer.PrintBody(response); err != nil {
		writer.Flush()
		return fail(err)
	}

	return 0
}

// fail reports user-input diagnostics on stdout; anything else is surfaced
// on stderr with its stack.
func fail(err error) int {
	if d, ok := errors.Cause(err).(*input.Diagnostic); ok {
		fmt.Printf("Error: %s\n", d)
		return 1
	}
	fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
	return 1
}
