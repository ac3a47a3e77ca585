// SPDX-License-Identifier: MIT
package docparse

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const xmlDoc = "Reads a single-rooted XML document into the canonical node tree: " +
	"element names become node names, attributes become node attributes, and " +
	"character data joins the node text."

type xmlParser struct{}

// Parse decodes src as XML. The document must contain exactly one root
// element; character data is trimmed and joined with single spaces.
func (xmlParser) Parse(src []byte) (*Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(src))

	var root *Node
	var stack []*Node
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("xml: %v: %w", err, ErrMalformed)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: el.Name.Local}
			if len(el.Attr) > 0 {
				n.Attr = make(map[string]string, len(el.Attr))
				for _, a := range el.Attr {
					n.Attr[a.Name.Local] = a.Value
				}
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("xml: more than one root element: %w", ErrMalformed)
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			text := strings.TrimSpace(string(el))
			if text == "" {
				continue
			}
			cur := stack[len(stack)-1]
			if cur.Text == "" {
				cur.Text = text
			} else {
				cur.Text += " " + text
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("xml: no root element: %w", ErrMalformed)
	}
	return root, nil
}
