package hocr

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding/charmap"
)

var (
	xmlnsPattern = regexp.MustCompile(`^(\{.*\})html$`)
	bboxPattern  = regexp.MustCompile(`bbox((?:\s+\d+){4})`)
)

// Parse converts raw hOCR data into a Document.
//
// The data is first decoded as strict XML, which keeps namespace
// information on every tag. If that fails, the data is reparsed with a
// lenient HTML parser, in which case the document is unnamespaced.
// The namespace prefix is inferred exactly once, from the root tag.
func Parse(data []byte) (*Document, error) {
	root, xmlErr := parseXML(data)
	if xmlErr != nil {
		var htmlErr error
		root, htmlErr = parseHTML(data)
		if htmlErr != nil {
			return nil, fmt.Errorf("hocr: parse failed: %w", xmlErr)
		}
	}

	doc := &Document{root: root}
	if m := xmlnsPattern.FindStringSubmatch(root.Tag); m != nil {
		doc.xmlns = m[1]
	}
	return doc, nil
}

// FindAll returns every element whose namespace-qualified tag matches the
// given local tag name, in document order.
func (d *Document) FindAll(tag string) ([]*Element, error) {
	if d == nil || d.root == nil {
		return nil, ErrNoDocument
	}
	want := d.xmlns + tag
	var found []*Element
	var walk func(*Element)
	walk = func(e *Element) {
		if e.Tag == want {
			found = append(found, e)
		}
		for _, c := range e.Children {
			walk(c)
		}
	}
	walk(d.root)
	return found, nil
}

// BBox extracts the element's bounding box from its title attribute.
// Example title: "bbox 100 200 300 400; x_wconf 95".
// An absent title or one without a bbox property yields the zero box, so
// documents without coordinates still convert, just misplaced.
func (e *Element) BBox() BoundingBox {
	title, ok := e.Attr["title"]
	if !ok {
		return BoundingBox{}
	}
	m := bboxPattern.FindStringSubmatch(title)
	if m == nil {
		return BoundingBox{}
	}
	fields := strings.Fields(m[1])
	var coords [4]int
	for i, f := range fields {
		coords[i], _ = strconv.Atoi(f) // digits only, guaranteed by the pattern
	}
	return BoundingBox{X0: coords[0], Y0: coords[1], X1: coords[2], Y1: coords[3]}
}

// parseXML decodes well-formed XML/XHTML into an element tree.
// Tags are qualified as "{space}local" when the document declares a
// namespace, matching the form returned by xml.Name.
func parseXML(data []byte) (*Element, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charsetReader
	dec.Entity = xml.HTMLEntity

	var root *Element
	var stack []*Element
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Tag: qualifiedName(t.Name), Attr: make(map[string]string, len(t.Attr))}
			for _, a := range t.Attr {
				el.Attr[a.Name.Local] = a.Value
			}
			if len(stack) == 0 {
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			cur := stack[len(stack)-1]
			if n := len(cur.Children); n > 0 {
				cur.Children[n-1].Tail += string(t)
			} else {
				cur.Text += string(t)
			}
		}
	}
	if root == nil {
		return nil, errors.New("no root element")
	}
	return root, nil
}

func qualifiedName(n xml.Name) string {
	if n.Space != "" {
		return "{" + n.Space + "}" + n.Local
	}
	return n.Local
}

// charsetReader decodes the legacy charsets that appear in hOCR output.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "", "utf-8", "us-ascii":
		return input, nil
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1.NewDecoder().Reader(input), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder().Reader(input), nil
	}
	return nil, fmt.Errorf("unsupported charset %q", charset)
}

// parseHTML is the lenient fallback for hOCR that is not well-formed XML.
// The resulting tree is unnamespaced.
func parseHTML(data []byte) (*Element, error) {
	if enc := sniffCharset(data); enc != "" && enc != "utf-8" {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", enc, err)
		}
		data = decoded
	}

	node, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "html" {
			return fromHTMLNode(c), nil
		}
	}
	return nil, errors.New("no html element")
}

// sniffCharset looks for a charset= declaration in a meta tag.
func sniffCharset(data []byte) string {
	content := string(data)
	i := strings.Index(content, "charset=")
	if i < 0 {
		return ""
	}
	snippet := content[i+len("charset="):]
	if len(snippet) > 20 {
		snippet = snippet[:20]
	}
	fields := strings.FieldsFunc(snippet, func(r rune) bool {
		return r == '"' || r == ';' || r == '\'' || r == '>'
	})
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

// fromHTMLNode converts an html.Node subtree into the element tree,
// folding text nodes into the Text/Tail fields.
func fromHTMLNode(n *html.Node) *Element {
	el := &Element{Tag: n.Data, Attr: make(map[string]string, len(n.Attr))}
	for _, a := range n.Attr {
		el.Attr[a.Key] = a.Val
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			el.Children = append(el.Children, fromHTMLNode(c))
		case html.TextNode:
			if count := len(el.Children); count > 0 {
				el.Children[count-1].Tail += c.Data
			} else {
				el.Text += c.Data
			}
		}
	}
	return el
}
