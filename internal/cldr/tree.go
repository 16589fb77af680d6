package cldr

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// element is a parsed XML element with its attributes and child elements.
// Character data is dropped; the CLDR mapping lives entirely in attributes.
type element struct {
	name     string
	attrs    map[string]string
	children []*element
}

// attr returns the attribute value, or "" when absent.
func (e *element) attr(name string) string {
	return e.attrs[name]
}

// descendants returns every element below e named name, in document order.
func (e *element) descendants(name string) []*element {
	var out []*element

	var walk func(*element)
	walk = func(n *element) {
		for _, c := range n.children {
			if c.name == name {
				out = append(out, c)
			}

			walk(c)
		}
	}
	walk(e)

	return out
}

// all returns e itself (if it matches) followed by its matching descendants.
func (e *element) all(name string) []*element {
	var out []*element
	if e.name == name {
		out = append(out, e)
	}

	return append(out, e.descendants(name)...)
}

// parseTree reads data into an element tree rooted at the document element.
func parseTree(data []byte) (*element, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = true

	var (
		root  *element
		stack []*element
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &element{
				name:  t.Name.Local,
				attrs: make(map[string]string, len(t.Attr)),
			}
			for _, a := range t.Attr {
				el.attrs[a.Name.Local] = a.Value
			}

			switch {
			case len(stack) > 0:
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			case root == nil:
				root = el
			default:
				return nil, fmt.Errorf("second root element <%s>", el.name)
			}

			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}

	if root == nil {
		return nil, errors.New("no root element")
	}

	return root, nil
}
