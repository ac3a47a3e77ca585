// SPDX-License-Identifier: MIT
package docparse

// Node is one element of the canonical document tree. All formats parse
// into this shape, so consumers walk a single structure regardless of the
// source syntax.
//
// Attr is nil when the node carries no attributes; only the XML front-end
// produces attributes.
type Node struct {
	Name     string
	Text     string
	Attr     map[string]string
	Children []*Node
}

// Child returns the first child with the given name, in document order.
func (n *Node) Child(name string) (*Node, bool) {
	for _, c := range n.Children {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Attribute returns the value of the named attribute.
func (n *Node) Attribute(key string) (string, bool) {
	v, ok := n.Attr[key]
	return v, ok
}

// Find descends through the tree following a chain of child names and
// returns the node at the end of the path. An empty path returns n itself.
func (n *Node) Find(path ...string) (*Node, bool) {
	cur := n
	for _, name := range path {
		next, ok := cur.Child(name)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Parser turns one source document into the canonical node tree.
// Implementations must be safe for concurrent use or be freshly constructed
// per use by their factory.
type Parser interface {
	Parse(src []byte) (*Node, error)
}

// Factory constructs a parser instance. Load invokes the factory on every
// call, so stateful parsers get a fresh value each time.
type Factory func() Parser
