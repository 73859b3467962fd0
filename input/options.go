package input

// Options is the option record produced by flag parsing. Method holds the
// effective method: "POST" whenever a JSON body is present.
type Options struct {
	URL     string
	Method  string
	Data    string
	HasData bool
	JSON    string
	HasJSON bool
}
