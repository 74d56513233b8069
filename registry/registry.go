// Package registry stores named JSON Schema documents and compiles each into
// a check function at registration time, so validation never re-walks the
// document. Documents arrive as structs, JSON bytes, or YAML bytes.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	json "github.com/goccy/go-json"
	yaml "gopkg.in/yaml.v3"

	"github.com/stdschema/valgo"
	"github.com/stdschema/valgo/jsonschema"
)

// ErrUnknownSchema is returned when a name has no registration.
var ErrUnknownSchema = errors.New("registry: unknown schema")

type entry struct {
	doc   *jsonschema.Schema
	check checkFunc
}

// Registry is a concurrency-safe name to compiled-schema map.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{entries: map[string]*entry{}}
}

// Register compiles doc and stores it under name, replacing any previous
// registration. Compilation errors leave the previous registration intact.
func (r *Registry) Register(name string, doc *jsonschema.Schema) error {
	if doc == nil {
		return fmt.Errorf("registry: nil schema for %q", name)
	}
	chk, err := compile(doc)
	if err != nil {
		return fmt.Errorf("registry: compile %q: %w", name, err)
	}
	r.mu.Lock()
	r.entries[name] = &entry{doc: doc, check: chk}
	r.mu.Unlock()
	return nil
}

// RegisterJSON parses a JSON document and registers it under name.
func (r *Registry) RegisterJSON(name string, b []byte) error {
	var doc jsonschema.Schema
	if err := json.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("registry: parse %q: %w", name, err)
	}
	return r.Register(name, &doc)
}

// RegisterYAML parses a YAML document and registers it under name. The
// document is routed through JSON so numeric values normalize to the types
// the compiled checks expect.
func (r *Registry) RegisterYAML(name string, b []byte) error {
	var raw any
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("registry: parse %q: %w", name, err)
	}
	jb, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("registry: parse %q: %w", name, err)
	}
	return r.RegisterJSON(name, jb)
}

// Unregister removes a registration. Removing an unknown name is a no-op.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	delete(r.entries, name)
	r.mu.Unlock()
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	_, ok := r.entries[name]
	r.mu.RUnlock()
	return ok
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// JSONSchema returns a copy of the registered document for name with the
// target's $schema URI stamped on it.
func (r *Registry) JSONSchema(name string, target jsonschema.Target) (*jsonschema.Schema, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("%w: %d", jsonschema.ErrUnsupportedTarget, int(target))
	}
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSchema, name)
	}
	doc := *e.doc
	doc.SchemaURI = target.SchemaURI()
	return &doc, nil
}

// Validate checks v against the schema registered under name.
func (r *Registry) Validate(name string, v any) (valgo.Result[any], error) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		return valgo.Result[any]{}, fmt.Errorf("%w: %q", ErrUnknownSchema, name)
	}
	if iss := e.check(v); len(iss) > 0 {
		return valgo.Fail[any](iss...), nil
	}
	return valgo.OK(v), nil
}

// Is reports whether v satisfies the schema registered under name, without
// materializing issues for the caller.
func (r *Registry) Is(name string, v any) (bool, error) {
	res, err := r.Validate(name, v)
	if err != nil {
		return false, err
	}
	return res.IsSuccess(), nil
}
