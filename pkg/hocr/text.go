package hocr

import (
	"strings"
)

// Text returns the textual content of the document body.
//
// For each element the concatenation is its own leading text, then each
// child's full text recursively, then the trailing text after the element's
// closing tag. Returns the empty string when no body element exists or no
// document was loaded.
func (d *Document) Text() string {
	if d == nil || d.root == nil {
		return ""
	}
	bodies, err := d.FindAll("body")
	if err != nil || len(bodies) == 0 {
		return ""
	}
	var builder strings.Builder
	collectText(bodies[0], &builder)
	return builder.String()
}

func collectText(e *Element, builder *strings.Builder) {
	builder.WriteString(e.Text)
	for _, c := range e.Children {
		collectText(c, builder)
	}
	builder.WriteString(e.Tail)
}
