package piece

import "fmt"

// Label is read-only text padded to a width, used for headers
type Label struct {
	text  string
	width int
}

func NewLabel(text string, width int) Label {
	return Label{text: text, width: width}
}

func (l Label) Text() string {
	return l.text
}

func (l Label) Render() string {
	return fmt.Sprintf("%-*s", l.width, l.text)
}
