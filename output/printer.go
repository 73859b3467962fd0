package output

import (
	"net/http"
)

type Printer interface {
	PrintBody(response *http.Response) error
}
