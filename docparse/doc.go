// Package docparse reads structured configuration documents (XML, YAML)
// into one canonical node tree, selecting the format parser by name from a
// registry.
//
// The registry decouples callers from concrete formats: tooling that loads
// matrix descriptions or solver configurations asks for a parser by name
// ("xml", "yaml") and walks the resulting *Node tree without caring which
// syntax produced it. Additional formats join by registering a factory:
//
//	r := docparse.NewRegistry(docparse.WithLogger(log))
//	err := r.Register("toml", newTomlParser, "TOML front-end")
//
// The package-level Default registry has the built-in formats registered
// and is ready to use:
//
//	p, err := docparse.Load("yaml")
//	tree, err := p.Parse(src)
//
// Canonical tree form: element/mapping names become Node.Name, scalar
// content becomes Node.Text, XML attributes become Node.Attr, and nested
// structures become Node.Children in document order. YAML sequences expand
// to repeated children named "item"; the root of a YAML document is named
// "document".
package docparse
