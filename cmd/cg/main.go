package main

import (
	"os"

	curl "github.com/nojima/curl-go"
)

func main() {
	os.Exit(curl.Main(os.Args))
}
