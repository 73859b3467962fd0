package input

type Request struct {
	URL  string
	Body Body
}

type BodyType int

const (
	EmptyBody BodyType = iota
	FormBody
	JSONBody
)

type Body struct {
	BodyType BodyType
	Fields   []Field // used only when BodyType == FormBody
	Raw      string  // used only when BodyType == JSONBody; byte-identical to the --json argument
}

type Field struct {
	Name  string
	Value string
}
