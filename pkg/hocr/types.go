package hocr

import (
	"errors"
	"strings"
)

// ErrNoDocument is returned by lookups on a Document that holds no tree.
var ErrNoDocument = errors.New("hocr: no document loaded")

// Document is a parsed hOCR document.
// It exclusively owns its element tree; callers receive read-only views.
type Document struct {
	root  *Element
	xmlns string // "{uri}" prefix applied to tag lookups, or ""
}

// Namespace returns the namespace prefix inferred from the root tag,
// in the form "{uri}", or the empty string for unnamespaced documents.
func (d *Document) Namespace() string { return d.xmlns }

// Root returns the root element of the document, or nil if none was loaded.
func (d *Document) Root() *Element { return d.root }

// Element is a single node of a parsed hOCR document.
// Tag names are namespace-qualified as "{uri}local" when the source
// document declares a namespace.
type Element struct {
	Tag      string
	Attr     map[string]string
	Children []*Element
	Text     string // character data before the first child
	Tail     string // character data after the element's closing tag
}

// HasClass reports whether the element's class attribute contains name.
// hOCR class attributes may carry several whitespace-separated values.
func (e *Element) HasClass(name string) bool {
	return strings.Contains(e.Attr["class"], name)
}

// BoundingBox is a rectangle in source-pixel coordinates.
// X0,Y0 is the upper-left corner and X1,Y1 the lower-right corner,
// matching the hOCR 'bbox x0 y0 x1 y1' property.
type BoundingBox struct {
	X0, Y0, X1, Y1 int
}

// Width returns the horizontal extent of the box in pixels.
func (b BoundingBox) Width() int { return b.X1 - b.X0 }

// Height returns the vertical extent of the box in pixels.
func (b BoundingBox) Height() int { return b.Y1 - b.Y0 }

// IsZero reports whether the box is the zero rectangle, the fallback for
// elements whose title carries no bbox property.
func (b BoundingBox) IsZero() bool {
	return b.X0 == 0 && b.Y0 == 0 && b.X1 == 0 && b.Y1 == 0
}
