// SPDX-License-Identifier: MIT
package docparse

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const yamlDoc = "Reads a YAML document into the canonical node tree: mapping keys " +
	"become named children, sequences become repeated children named item, and " +
	"the root node is named document."

type yamlParser struct{}

// Parse decodes src as YAML. Aliases are resolved during conversion; an
// empty document is rejected.
func (yamlParser) Parse(src []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("yaml: %v: %w", err, ErrMalformed)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("yaml: empty document: %w", ErrMalformed)
	}
	return convertYAML("document", doc.Content[0]), nil
}

func convertYAML(name string, y *yaml.Node) *Node {
	switch y.Kind {
	case yaml.ScalarNode:
		return &Node{Name: name, Text: y.Value}
	case yaml.MappingNode:
		n := &Node{Name: name}
		for i := 0; i+1 < len(y.Content); i += 2 {
			n.Children = append(n.Children, convertYAML(y.Content[i].Value, y.Content[i+1]))
		}
		return n
	case yaml.SequenceNode:
		n := &Node{Name: name}
		for _, item := range y.Content {
			n.Children = append(n.Children, convertYAML("item", item))
		}
		return n
	case yaml.AliasNode:
		return convertYAML(name, y.Alias)
	default:
		return &Node{Name: name}
	}
}
