// SPDX-License-Identifier: MIT
package docparse

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

type registration struct {
	factory Factory
	doc     string
}

// Registry maps format names to parser factories. It is safe for concurrent
// use. The zero value is not usable; call NewRegistry.
type Registry struct {
	mu      sync.RWMutex
	log     *zap.Logger
	entries map[string]registration
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger attaches a structured logger. Without it the registry logs
// nowhere.
func WithLogger(log *zap.Logger) Option {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		log:     zap.NewNop(),
		entries: make(map[string]registration),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a format under a unique name together with a one-paragraph
// description for Doc. Fails with ErrInvalidName, ErrNilFactory or
// ErrDuplicateParser.
func (r *Registry) Register(name string, factory Factory, doc string) error {
	if name == "" {
		return fmt.Errorf("Register: %w", ErrInvalidName)
	}
	if factory == nil {
		return fmt.Errorf("Register(%q): %w", name, ErrNilFactory)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("Register(%q): %w", name, ErrDuplicateParser)
	}
	r.entries[name] = registration{factory: factory, doc: doc}
	r.log.Debug("format parser registered", zap.String("format", name))
	return nil
}

// Load constructs a parser for the named format. The factory runs on every
// call, so each Load returns an independent parser. Fails with
// ErrUnknownParser.
func (r *Registry) Load(name string) (Parser, error) {
	r.mu.RLock()
	reg, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("Load(%q): %w", name, ErrUnknownParser)
	}
	r.log.Debug("format parser loaded", zap.String("format", name))
	return reg.factory(), nil
}

// Doc returns the registered description of the named format. Fails with
// ErrUnknownParser.
func (r *Registry) Doc(name string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.entries[name]
	if !ok {
		return "", fmt.Errorf("Doc(%q): %w", name, ErrUnknownParser)
	}
	return reg.doc, nil
}

// Names lists the registered formats in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.entries))
	for name := range r.entries {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// defaultRegistry carries the built-in formats. Registration cannot fail:
// the names are distinct non-empty literals with non-nil factories.
var defaultRegistry = func() *Registry {
	r := NewRegistry()
	_ = r.Register("xml", func() Parser { return xmlParser{} }, xmlDoc)
	_ = r.Register("yaml", func() Parser { return yamlParser{} }, yamlDoc)
	return r
}()

// Default returns the shared registry with the built-in formats ("xml",
// "yaml") registered.
func Default() *Registry { return defaultRegistry }

// Load constructs a parser from the default registry.
func Load(name string) (Parser, error) { return defaultRegistry.Load(name) }

// Doc returns a format description from the default registry.
func Doc(name string) (string, error) { return defaultRegistry.Doc(name) }
